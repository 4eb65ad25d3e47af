package mdterm

// Document is the parsed form of one Markdown source. It is built once
// per render call and never mutated afterwards.
type Document struct {
	Blocks []Block
}

// Block is a top-level structural unit. The variant set is closed: every
// consumer switches exhaustively over the types below.
type Block interface {
	block()
}

// Heading is an ATX heading, level 1 through 6.
type Heading struct {
	Level  int
	Inline []InlineRun
}

// Paragraph is a run of consecutive plain lines merged into one
// reflowable unit.
type Paragraph struct {
	Inline []InlineRun
}

// Text is paragraph-like content in a tight context (list items, lazy
// quoted lines). It reflows like a paragraph but does not force blank
// line separation.
type Text struct {
	Inline []InlineRun
}

// CodeBlock holds the verbatim lines between code fences. Language is
// the word after the opening fence, empty when absent.
type CodeBlock struct {
	Language string
	Lines    []string
}

// Blockquote nests arbitrary blocks.
type Blockquote struct {
	Children []Block
}

// Table is a header row plus body rows of plain-text cells.
type Table struct {
	Header []Cell
	Rows   [][]Cell
}

// List holds items, each a sequence of blocks.
type List struct {
	Ordered bool
	Items   [][]Block
}

// Rule is a thematic break.
type Rule struct{}

// Cell is the plain text content of one table cell.
type Cell string

func (Heading) block()    {}
func (Paragraph) block()  {}
func (Text) block()       {}
func (CodeBlock) block()  {}
func (Blockquote) block() {}
func (Table) block()      {}
func (List) block()       {}
func (Rule) block()       {}

// InlineRun is a styled span within a block's text content. Link and
// InlineCode are leaves; Bold and Italic nest.
type InlineRun interface {
	inline()
}

// PlainText is an unstyled text span.
type PlainText string

// Bold is a strongly emphasized span.
type Bold struct {
	Children []InlineRun
}

// Italic is an emphasized span.
type Italic struct {
	Children []InlineRun
}

// InlineCode is a literal code span. Contents are taken verbatim.
type InlineCode string

// Link is a hyperlink with literal display text.
type Link struct {
	Text string
	URL  string
}

func (PlainText) inline()  {}
func (Bold) inline()       {}
func (Italic) inline()     {}
func (InlineCode) inline() {}
func (Link) inline()       {}
