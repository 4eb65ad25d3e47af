package mdterm

import (
	"io"
	"strings"
	"testing"
)

func benchmarkSource() string {
	section := strings.Join([]string{
		"## Section heading",
		"",
		"A paragraph with *emphasis*, **strong**, `code`, and a",
		"[link](https://example.com/docs) that wraps across lines.",
		"",
		"- first item",
		"- second item",
		"  - nested item",
		"",
		"| Name | Value |",
		"| --- | --- |",
		"| alpha | one |",
		"| beta | two |",
		"",
		"```go",
		"func add(a, b int) int {",
		"\treturn a + b",
		"}",
		"```",
		"",
	}, "\n")
	return "# Document\n\n" + strings.Repeat(section, 20)
}

func BenchmarkRender(b *testing.B) {
	src := benchmarkSource()
	theme := DefaultTheme()
	b.SetBytes(int64(len(src)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Render(RenderRequest{
			Source: src,
			Writer: io.Discard,
			Width:  100,
			Theme:  theme,
		}); err != nil {
			b.Fatalf("render: %v", err)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	src := benchmarkSource()
	b.SetBytes(int64(len(src)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		doc := Parse(src)
		if len(doc.Blocks) == 0 {
			b.Fatal("no blocks")
		}
	}
}

func BenchmarkLayout(b *testing.B) {
	doc := Parse(benchmarkSource())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lines := LayoutDocument(doc, 100)
		if len(lines) == 0 {
			b.Fatal("no lines")
		}
	}
}
