package mdterm

import (
	"reflect"
	"testing"
)

func TestParseHeadings(t *testing.T) {
	doc := Parse("# One\n\n###### Six\n")
	if len(doc.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(doc.Blocks))
	}
	h1, ok := doc.Blocks[0].(Heading)
	if !ok || h1.Level != 1 {
		t.Fatalf("expected level 1 heading, got %#v", doc.Blocks[0])
	}
	h6, ok := doc.Blocks[1].(Heading)
	if !ok || h6.Level != 6 {
		t.Fatalf("expected level 6 heading, got %#v", doc.Blocks[1])
	}
}

func TestParseRejectsFalseHeadings(t *testing.T) {
	for _, src := range []string{"####### seven\n", "#nospace\n"} {
		doc := Parse(src)
		if len(doc.Blocks) != 1 {
			t.Fatalf("%q: expected 1 block, got %d", src, len(doc.Blocks))
		}
		if _, ok := doc.Blocks[0].(Paragraph); !ok {
			t.Fatalf("%q: expected paragraph fallback, got %#v", src, doc.Blocks[0])
		}
	}
}

func TestParseJoinsParagraphLines(t *testing.T) {
	doc := Parse("line one\nline two\n\nsecond para\n")
	if len(doc.Blocks) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(doc.Blocks))
	}
	p := doc.Blocks[0].(Paragraph)
	want := []InlineRun{PlainText("line one line two")}
	if !reflect.DeepEqual(p.Inline, want) {
		t.Fatalf("expected joined paragraph, got %#v", p.Inline)
	}
}

func TestParseFenceLanguageAndBody(t *testing.T) {
	doc := Parse("```go\nfmt.Println(\"x\")\n\ndone()\n```\nafter\n")
	cb, ok := doc.Blocks[0].(CodeBlock)
	if !ok {
		t.Fatalf("expected code block, got %#v", doc.Blocks[0])
	}
	if cb.Language != "go" {
		t.Fatalf("expected language go, got %q", cb.Language)
	}
	want := []string{"fmt.Println(\"x\")", "", "done()"}
	if !reflect.DeepEqual(cb.Lines, want) {
		t.Fatalf("unexpected code lines: %#v", cb.Lines)
	}
	if _, ok := doc.Blocks[1].(Paragraph); !ok {
		t.Fatalf("expected trailing paragraph, got %#v", doc.Blocks[1])
	}
}

func TestParseUnterminatedFenceRunsToEnd(t *testing.T) {
	doc := Parse("```\nstill code\nmore code")
	if len(doc.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(doc.Blocks))
	}
	cb := doc.Blocks[0].(CodeBlock)
	want := []string{"still code", "more code"}
	if !reflect.DeepEqual(cb.Lines, want) {
		t.Fatalf("unexpected code lines: %#v", cb.Lines)
	}
}

func TestParseNestedQuote(t *testing.T) {
	doc := Parse("> outer\n> > inner\n")
	q, ok := doc.Blocks[0].(Blockquote)
	if !ok {
		t.Fatalf("expected blockquote, got %#v", doc.Blocks[0])
	}
	if len(q.Children) != 2 {
		t.Fatalf("expected 2 children, got %#v", q.Children)
	}
	if _, ok := q.Children[0].(Paragraph); !ok {
		t.Fatalf("expected paragraph first, got %#v", q.Children[0])
	}
	if _, ok := q.Children[1].(Blockquote); !ok {
		t.Fatalf("expected nested quote, got %#v", q.Children[1])
	}
}

func TestParseRule(t *testing.T) {
	doc := Parse("---\n")
	if _, ok := doc.Blocks[0].(Rule); !ok {
		t.Fatalf("expected rule, got %#v", doc.Blocks[0])
	}
	doc = Parse("--\n")
	if _, ok := doc.Blocks[0].(Paragraph); !ok {
		t.Fatalf("two dashes should not be a rule: %#v", doc.Blocks[0])
	}
}

func TestParseTable(t *testing.T) {
	doc := Parse("| A | B |\n| --- | :-: |\n| 1 | 2 |\n| 3 | 4 |\n")
	tb, ok := doc.Blocks[0].(Table)
	if !ok {
		t.Fatalf("expected table, got %#v", doc.Blocks[0])
	}
	if !reflect.DeepEqual(tb.Header, []Cell{"A", "B"}) {
		t.Fatalf("unexpected header: %#v", tb.Header)
	}
	if len(tb.Rows) != 2 || !reflect.DeepEqual(tb.Rows[1], []Cell{"3", "4"}) {
		t.Fatalf("unexpected rows: %#v", tb.Rows)
	}
}

func TestParseMalformedTableFallsBackToParagraph(t *testing.T) {
	doc := Parse("| A | B |\nnot a separator\n")
	if _, ok := doc.Blocks[0].(Paragraph); !ok {
		t.Fatalf("expected paragraph fallback, got %#v", doc.Blocks[0])
	}
}

func TestParseUnorderedList(t *testing.T) {
	doc := Parse("- one\n- two\n")
	list, ok := doc.Blocks[0].(List)
	if !ok {
		t.Fatalf("expected list, got %#v", doc.Blocks[0])
	}
	if list.Ordered {
		t.Fatalf("expected unordered list")
	}
	if len(list.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(list.Items))
	}
}

func TestParseOrderedList(t *testing.T) {
	doc := Parse("1. one\n2. two\n10. ten\n")
	list := doc.Blocks[0].(List)
	if !list.Ordered {
		t.Fatalf("expected ordered list")
	}
	if len(list.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(list.Items))
	}
}

func TestParseNestedList(t *testing.T) {
	doc := Parse("- top\n  - nested one\n  - nested two\n- next\n")
	list := doc.Blocks[0].(List)
	if len(list.Items) != 2 {
		t.Fatalf("expected 2 top items, got %d", len(list.Items))
	}
	first := list.Items[0]
	if len(first) != 2 {
		t.Fatalf("expected text plus sublist in first item, got %#v", first)
	}
	if _, ok := first[0].(Text); !ok {
		t.Fatalf("expected tight text, got %#v", first[0])
	}
	sub, ok := first[1].(List)
	if !ok || len(sub.Items) != 2 {
		t.Fatalf("expected nested list of 2, got %#v", first[1])
	}
}

func TestParseListEndsOnBlankLine(t *testing.T) {
	doc := Parse("- one\n\nafter\n")
	if len(doc.Blocks) != 2 {
		t.Fatalf("expected list and paragraph, got %#v", doc.Blocks)
	}
	if _, ok := doc.Blocks[1].(Paragraph); !ok {
		t.Fatalf("expected paragraph after list, got %#v", doc.Blocks[1])
	}
}

func TestParseStripsControlCharacters(t *testing.T) {
	doc := Parse("hel\x07lo\n")
	p := doc.Blocks[0].(Paragraph)
	if !reflect.DeepEqual(p.Inline, []InlineRun{PlainText("hello")}) {
		t.Fatalf("control character survived: %#v", p.Inline)
	}
}

func TestParseNeverReturnsNilBlocksForContent(t *testing.T) {
	doc := Parse("")
	if len(doc.Blocks) != 0 {
		t.Fatalf("empty source should yield no blocks: %#v", doc.Blocks)
	}
}
