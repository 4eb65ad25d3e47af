package mdterm

import (
	"strings"
	"testing"
)

func joinSegments(segs []Segment) string {
	var b strings.Builder
	for _, seg := range segs {
		b.WriteString(seg.Text)
	}
	return b.String()
}

func TestHighlightCodeRoundTripsText(t *testing.T) {
	lines := []string{
		"package main",
		"",
		"func main() {",
		"\tprintln(\"hi\") // greet",
		"}",
	}
	out := highlightCode(lines, "go")
	if len(out) != len(lines) {
		t.Fatalf("expected %d lines, got %d", len(lines), len(out))
	}
	for i, segs := range out {
		if got := joinSegments(segs); got != lines[i] {
			t.Fatalf("line %d: got %q, want %q", i, got, lines[i])
		}
	}
}

func TestHighlightCodeTagsTokens(t *testing.T) {
	out := highlightCode([]string{`x := "str" // note`}, "go")
	tags := map[StyleTag]bool{}
	for _, seg := range out[0] {
		tags[seg.Tag] = true
	}
	if !tags[TagCodeString] {
		t.Fatalf("string literal not tagged: %#v", out[0])
	}
	if !tags[TagCodeComment] {
		t.Fatalf("comment not tagged: %#v", out[0])
	}
}

func TestHighlightCodeUnknownLanguageIsPlain(t *testing.T) {
	lines := []string{"whatever content", "more"}
	for _, lang := range []string{"", "no-such-language-xyz"} {
		out := highlightCode(lines, lang)
		if len(out) != len(lines) {
			t.Fatalf("%q: expected %d lines, got %d", lang, len(lines), len(out))
		}
		for i, segs := range out {
			for _, seg := range segs {
				if seg.Tag != TagPlain {
					t.Fatalf("%q: line %d tagged %d", lang, i, seg.Tag)
				}
			}
			if got := joinSegments(segs); got != lines[i] {
				t.Fatalf("%q: line %d altered: %q", lang, i, got)
			}
		}
	}
}

func TestHighlightCodeEmptyBlock(t *testing.T) {
	if out := highlightCode(nil, "go"); len(out) != 0 {
		t.Fatalf("expected no lines, got %#v", out)
	}
}
