package mdterm

import (
	"strconv"
	"strings"

	"github.com/muesli/reflow/ansi"
)

// Segment is one styled run within a display line. Link carries the
// OSC 8 hyperlink target when hyperlinks are enabled, empty otherwise.
type Segment struct {
	Text string
	Tag  StyleTag
	Link string
}

// DisplayLine is one terminal row's worth of styled segments after
// layout. A line with no segments renders as a blank row.
type DisplayLine struct {
	Segments []Segment
}

// minLayoutWidth is the documented clamp for non-positive widths: the
// layout engine never produces zero-width output, it clamps instead of
// failing.
const minLayoutWidth = 20

const (
	codeIndent  = "    "
	quoteBorder = "│ "
	bullet      = "• "
)

// LayoutDocument wraps a parsed document to the given width and returns
// the display lines to emit. A width of zero or less is clamped to
// minLayoutWidth; positive widths are honored as given. Verbatim code
// lines and single words wider than the width are the only lines that
// may exceed it.
func LayoutDocument(doc Document, width int, opts ...RenderOption) []DisplayLine {
	cfg := defaultRenderConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if width <= 0 {
		width = minLayoutWidth
	}
	l := layouter{osc8: cfg.osc8 && cfg.color}
	return l.blocks(doc.Blocks, width)
}

type layouter struct {
	osc8 bool
}

// blocks lays out a block sequence, inserting one blank line between
// blocks except between consecutive tight Text blocks.
func (l *layouter) blocks(blocks []Block, width int) []DisplayLine {
	var lines []DisplayLine
	var prev Block
	for _, b := range blocks {
		rendered := l.block(b, width)
		if len(rendered) == 0 {
			continue
		}
		if len(lines) > 0 && blockGap(prev, b) {
			lines = append(lines, DisplayLine{})
		}
		lines = append(lines, rendered...)
		prev = b
	}
	return lines
}

// Text blocks only come from tight list items; nothing after one gets a
// separating blank line, so nested lists hug their item text.
func blockGap(prev, cur Block) bool {
	if _, ok := prev.(Text); ok {
		return false
	}
	return true
}

func (l *layouter) block(b Block, width int) []DisplayLine {
	switch b := b.(type) {
	case Heading:
		return l.heading(b, width)
	case Paragraph:
		return wrapSegments(l.flatten(b.Inline, TagPlain), width)
	case Text:
		return wrapSegments(l.flatten(b.Inline, TagPlain), width)
	case CodeBlock:
		return l.codeBlock(b)
	case Blockquote:
		return l.quote(b, width)
	case Table:
		return l.table(b, width)
	case List:
		return l.list(b, width)
	case Rule:
		return []DisplayLine{{Segments: []Segment{{Text: strings.Repeat("─", width), Tag: TagRule}}}}
	default:
		return nil
	}
}

// heading wraps the heading text under its level tag and, following
// browser-like convention, underlines level 1 with ═ and level 2 with ─.
func (l *layouter) heading(h Heading, width int) []DisplayLine {
	tag := HeadingTag(h.Level)
	segs := l.flatten(h.Inline, tag)
	lines := wrapSegments(segs, width)
	if len(lines) == 0 {
		return nil
	}
	var glyph string
	switch h.Level {
	case 1:
		glyph = "═"
	case 2:
		glyph = "─"
	default:
		return lines
	}
	textWidth := 0
	for _, seg := range segs {
		textWidth += ansi.PrintableRuneWidth(seg.Text)
	}
	if textWidth > width {
		textWidth = width
	}
	if textWidth > 0 {
		lines = append(lines, DisplayLine{Segments: []Segment{{Text: strings.Repeat(glyph, textWidth), Tag: TagRule}}})
	}
	return lines
}

// codeBlock emits each source line verbatim behind a fixed indent.
// Code is never wrapped; wrapping would corrupt it.
func (l *layouter) codeBlock(cb CodeBlock) []DisplayLine {
	highlighted := highlightCode(cb.Lines, cb.Language)
	lines := make([]DisplayLine, 0, len(highlighted))
	for _, segs := range highlighted {
		if len(segs) == 0 {
			lines = append(lines, DisplayLine{})
			continue
		}
		row := make([]Segment, 0, len(segs)+1)
		row = append(row, Segment{Text: codeIndent, Tag: TagPlain})
		row = append(row, segs...)
		lines = append(lines, DisplayLine{Segments: row})
	}
	return lines
}

// quote lays the children out two columns narrower and prefixes every
// resulting line with the border glyph. Plain text inside a quote is
// retagged to the quote text role.
func (l *layouter) quote(q Blockquote, width int) []DisplayLine {
	inner := width - ansi.PrintableRuneWidth(quoteBorder)
	if inner < 1 {
		inner = 1
	}
	children := l.blocks(q.Children, inner)
	lines := make([]DisplayLine, 0, len(children))
	for _, line := range children {
		if len(line.Segments) == 0 {
			lines = append(lines, DisplayLine{Segments: []Segment{{Text: "│", Tag: TagQuoteBorder}}})
			continue
		}
		row := make([]Segment, 0, len(line.Segments)+1)
		row = append(row, Segment{Text: quoteBorder, Tag: TagQuoteBorder})
		for _, seg := range line.Segments {
			if seg.Tag == TagPlain {
				seg.Tag = TagQuoteText
			}
			row = append(row, seg)
		}
		lines = append(lines, DisplayLine{Segments: row})
	}
	return lines
}

// list renders each item behind its marker with a hanging indent equal
// to the marker's display width. Items are not separated by blank
// lines.
func (l *layouter) list(list List, width int) []DisplayLine {
	var lines []DisplayLine
	for idx, item := range list.Items {
		marker := bullet
		if list.Ordered {
			marker = strconv.Itoa(idx+1) + ". "
		}
		markerWidth := ansi.PrintableRuneWidth(marker)
		inner := width - markerWidth
		if inner < 1 {
			inner = 1
		}
		itemLines := l.blocks(item, inner)
		if len(itemLines) == 0 {
			lines = append(lines, DisplayLine{Segments: []Segment{{Text: strings.TrimRight(marker, " "), Tag: TagListMarker}}})
			continue
		}
		indent := strings.Repeat(" ", markerWidth)
		for k, line := range itemLines {
			row := make([]Segment, 0, len(line.Segments)+1)
			if k == 0 {
				row = append(row, Segment{Text: marker, Tag: TagListMarker})
			} else if len(line.Segments) > 0 {
				row = append(row, Segment{Text: indent, Tag: TagPlain})
			}
			row = append(row, line.Segments...)
			lines = append(lines, DisplayLine{Segments: row})
		}
	}
	return lines
}

// table computes natural column widths and shrinks them proportionally
// when the bordered row would exceed the layout width, truncating cell
// text with an ellipsis. Convention: top border, header, separator,
// body rows, and no bottom border, so a one-row table is exactly four
// lines.
func (l *layouter) table(t Table, width int) []DisplayLine {
	cols := len(t.Header)
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return nil
	}

	widths := make([]int, cols)
	measure := func(row []Cell) {
		for i, cell := range row {
			if w := ansi.PrintableRuneWidth(string(cell)); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(t.Header)
	for _, row := range t.Rows {
		measure(row)
	}

	total := 0
	for _, w := range widths {
		total += w
	}
	overhead := 3*cols + 1
	if total+overhead > width && total > 0 {
		usable := width - overhead
		if usable < cols {
			usable = cols
		}
		for i := range widths {
			w := widths[i] * usable / total
			if w < 1 {
				w = 1
			}
			widths[i] = w
		}
	}

	lines := []DisplayLine{
		tableBorderLine("┌", "┬", "┐", widths),
		tableRowLine(t.Header, widths, TagTableHeader),
		tableBorderLine("├", "┼", "┤", widths),
	}
	for _, row := range t.Rows {
		lines = append(lines, tableRowLine(row, widths, TagPlain))
	}
	return lines
}

func tableBorderLine(left, mid, right string, widths []int) DisplayLine {
	var b strings.Builder
	b.WriteString(left)
	for i, w := range widths {
		b.WriteString(strings.Repeat("─", w+2))
		if i < len(widths)-1 {
			b.WriteString(mid)
		}
	}
	b.WriteString(right)
	return DisplayLine{Segments: []Segment{{Text: b.String(), Tag: TagTableBorder}}}
}

func tableRowLine(cells []Cell, widths []int, tag StyleTag) DisplayLine {
	segs := make([]Segment, 0, 2*len(widths)+1)
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = string(cells[i])
		}
		cell = truncateWithEllipsis(cell, w)
		pad := w - ansi.PrintableRuneWidth(cell)
		if pad < 0 {
			pad = 0
		}
		segs = append(segs, Segment{Text: "│", Tag: TagTableBorder})
		segs = append(segs, Segment{Text: " " + cell + strings.Repeat(" ", pad) + " ", Tag: tag})
	}
	segs = append(segs, Segment{Text: "│", Tag: TagTableBorder})
	return DisplayLine{Segments: segs}
}

// flatten resolves an inline tree into a flat segment stream. Inside
// headings the heading tag wins over emphasis; elsewhere bold and
// italic map to their own tags and compose.
func (l *layouter) flatten(runs []InlineRun, base StyleTag) []Segment {
	var segs []Segment
	l.flattenInto(&segs, runs, base, false, false)
	return segs
}

func (l *layouter) flattenInto(segs *[]Segment, runs []InlineRun, base StyleTag, bold, italic bool) {
	for _, run := range runs {
		switch run := run.(type) {
		case PlainText:
			*segs = append(*segs, Segment{Text: string(run), Tag: inlineTag(base, bold, italic)})
		case Bold:
			l.flattenInto(segs, run.Children, base, true, italic)
		case Italic:
			l.flattenInto(segs, run.Children, base, bold, true)
		case InlineCode:
			*segs = append(*segs, Segment{Text: string(run), Tag: TagCodeInline})
		case Link:
			link := ""
			if l.osc8 {
				link = run.URL
			}
			*segs = append(*segs, Segment{Text: run.Text, Tag: TagLinkText, Link: link})
			if run.URL != "" && !l.osc8 {
				*segs = append(*segs, Segment{Text: " ", Tag: TagPlain})
				*segs = append(*segs, Segment{Text: "(" + run.URL + ")", Tag: TagLinkURL})
			}
		}
	}
}

func inlineTag(base StyleTag, bold, italic bool) StyleTag {
	if base != TagPlain {
		return base
	}
	switch {
	case bold && italic:
		return TagEmphasisStrong
	case bold:
		return TagStrong
	case italic:
		return TagEmphasis
	default:
		return base
	}
}

// wrapSegments greedily word-wraps a segment stream. Words never split
// mid-word; a word wider than the whole width lands alone on its own
// line and may exceed it, except link URLs which are shortened to fit.
func wrapSegments(segs []Segment, width int) []DisplayLine {
	var lines []DisplayLine
	var line []Segment
	lineWidth := 0
	var word []Segment
	wordWidth := 0

	commit := func() {
		if len(word) == 0 {
			return
		}
		if wordWidth > width && len(word) == 1 && word[0].Tag == TagLinkURL {
			word[0].Text = fitWrappedURL(word[0].Text, width)
			wordWidth = ansi.PrintableRuneWidth(word[0].Text)
		}
		if lineWidth > 0 && lineWidth+1+wordWidth > width {
			lines = append(lines, DisplayLine{Segments: line})
			line = nil
			lineWidth = 0
		} else if lineWidth > 0 {
			line = append(line, Segment{Text: " ", Tag: TagPlain})
			lineWidth++
		}
		line = append(line, word...)
		lineWidth += wordWidth
		word = nil
		wordWidth = 0
	}

	for _, seg := range segs {
		text := seg.Text
		for len(text) > 0 {
			cut := strings.IndexAny(text, " \t")
			if cut < 0 {
				word = append(word, Segment{Text: text, Tag: seg.Tag, Link: seg.Link})
				wordWidth += ansi.PrintableRuneWidth(text)
				break
			}
			if cut > 0 {
				chunk := text[:cut]
				word = append(word, Segment{Text: chunk, Tag: seg.Tag, Link: seg.Link})
				wordWidth += ansi.PrintableRuneWidth(chunk)
			}
			commit()
			text = text[cut+1:]
		}
	}
	commit()
	if len(line) > 0 {
		lines = append(lines, DisplayLine{Segments: line})
	}
	return lines
}
