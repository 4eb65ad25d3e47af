package mdterm

import "strings"

// parseInline scans left to right and recognizes, in priority order at
// each position: inline code, links, bold, italic. Unmatched opening
// delimiters degrade to literal text; bold and italic contents are
// scanned recursively so nesting composes.
func parseInline(s string) []InlineRun {
	var runs []InlineRun
	var plain strings.Builder

	flushPlain := func() {
		if plain.Len() > 0 {
			runs = append(runs, PlainText(plain.String()))
			plain.Reset()
		}
	}

	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == '`':
			if end := strings.IndexByte(s[i+1:], '`'); end >= 0 {
				flushPlain()
				runs = append(runs, InlineCode(s[i+1:i+1+end]))
				i += end + 2
				continue
			}
		case c == '[':
			if text, url, size, ok := matchLink(s[i:]); ok {
				flushPlain()
				runs = append(runs, Link{Text: text, URL: url})
				i += size
				continue
			}
		case c == '*' || c == '_':
			// The longest delimiter wins at the same start position:
			// triple over double over single.
			if i+2 < len(s) && s[i+1] == c && s[i+2] == c {
				delim := s[i : i+3]
				if end := strings.Index(s[i+3:], delim); end > 0 {
					flushPlain()
					runs = append(runs, Bold{Children: []InlineRun{
						Italic{Children: parseInline(s[i+3 : i+3+end])},
					}})
					i += end + 6
					continue
				}
			}
			if i+1 < len(s) && s[i+1] == c {
				delim := s[i : i+2]
				if end := strings.Index(s[i+2:], delim); end > 0 {
					flushPlain()
					runs = append(runs, Bold{Children: parseInline(s[i+2 : i+2+end])})
					i += end + 4
					continue
				}
			}
			delim := s[i : i+1]
			if end := strings.Index(s[i+1:], delim); end > 0 {
				flushPlain()
				runs = append(runs, Italic{Children: parseInline(s[i+1 : i+1+end])})
				i += end + 2
				continue
			}
		}
		plain.WriteByte(c)
		i++
	}
	flushPlain()
	return runs
}

// matchLink matches [text](url) at the start of s. Link text is literal:
// no nested runs, no pipes through further inline scanning.
func matchLink(s string) (text, url string, size int, ok bool) {
	close := strings.IndexByte(s, ']')
	if close < 0 {
		return "", "", 0, false
	}
	if close+1 >= len(s) || s[close+1] != '(' {
		return "", "", 0, false
	}
	end := strings.IndexByte(s[close+2:], ')')
	if end < 0 {
		return "", "", 0, false
	}
	return s[1:close], s[close+2 : close+2+end], close + end + 3, true
}
