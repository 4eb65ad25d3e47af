package mdterm

import (
	"io"
	"strings"

	"pkt.systems/mdterm/internal/palette"
)

const ansiReset = palette.Reset

// emitLines writes display lines as ANSI-decorated text. Adjacent
// segments that resolve to the same attribute coalesce into a single
// escape pair, and any line that carried an escape ends with a final
// reset so attributes never bleed past the renderer's output. With
// color disabled no escape byte is written at all.
func emitLines(w io.Writer, lines []DisplayLine, res resolver, osc8 bool) error {
	var b strings.Builder
	for _, line := range lines {
		b.Reset()
		styled := false
		i := 0
		for i < len(line.Segments) {
			seg := line.Segments[i]
			prefix := res.resolve(seg.Tag).Prefix
			// Coalesce the run of segments sharing this attribute and
			// hyperlink target.
			j := i + 1
			for j < len(line.Segments) {
				next := line.Segments[j]
				if next.Link != seg.Link || res.resolve(next.Tag).Prefix != prefix {
					break
				}
				j++
			}
			hyperlink := osc8 && res.color && seg.Link != ""
			if hyperlink {
				b.WriteString(osc8Start + seg.Link + osc8Terminate)
				styled = true
			}
			if prefix != "" {
				b.WriteString(prefix)
				styled = true
			}
			for ; i < j; i++ {
				b.WriteString(line.Segments[i].Text)
			}
			if prefix != "" {
				b.WriteString(ansiReset)
			}
			if hyperlink {
				b.WriteString(osc8End)
			}
		}
		if styled {
			b.WriteString(ansiReset)
		}
		b.WriteString("\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}
