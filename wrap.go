package mdterm

import (
	"strings"

	"github.com/muesli/reflow/ansi"
)

// truncateWithEllipsis shortens text to at most limit display columns,
// replacing the tail with a single ellipsis. The cut counts display
// width, not runes, so wide characters cost their full two columns.
func truncateWithEllipsis(text string, limit int) string {
	if ansi.PrintableRuneWidth(text) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	if limit == 1 {
		return "…"
	}
	var b strings.Builder
	width := 0
	for _, r := range text {
		rw := ansi.PrintableRuneWidth(string(r))
		if width+rw > limit-1 {
			break
		}
		b.WriteRune(r)
		width += rw
	}
	return b.String() + "…"
}

// fitURL shortens a URL to the limit, dropping the scheme first and
// truncating with an ellipsis only as a last resort.
func fitURL(url string, limit int) string {
	if ansi.PrintableRuneWidth(url) <= limit {
		return url
	}
	if idx := strings.Index(url, "://"); idx != -1 {
		trimmed := url[idx+3:]
		if ansi.PrintableRuneWidth(trimmed) <= limit {
			return trimmed
		}
	}
	return truncateWithEllipsis(url, limit)
}

// fitWrappedURL fits a URL that may be wrapped in a single pair of
// brackets, preserving the wrapper.
func fitWrappedURL(text string, limit int) string {
	runes := []rune(text)
	if len(runes) >= 2 {
		open := runes[0]
		var want rune
		switch open {
		case '(':
			want = ')'
		case '[':
			want = ']'
		case '{':
			want = '}'
		case '<':
			want = '>'
		}
		if want != 0 && runes[len(runes)-1] == want {
			inner := limit - 2
			if inner > 0 {
				return string(open) + fitURL(string(runes[1:len(runes)-1]), inner) + string(want)
			}
		}
	}
	return fitURL(text, limit)
}
