// Package palette holds the raw SGR sequences behind the built-in themes.
package palette

// SGR attribute prefixes.
const (
	Reset     = "\x1b[0m"
	Bold      = "\x1b[1m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
)

// Palette names the foreground sequence for each semantic slot of a theme.
// Attribute-only slots (Strong, Emphasis) stay empty; the theme layer adds
// Bold/Italic/Underline on top of these.
type Palette struct {
	Text           string
	H1             string
	H2             string
	H3             string
	H4             string
	H5             string
	H6             string
	Emphasis       string
	Strong         string
	EmphasisStrong string
	CodeInline     string
	CodeBlock      string
	QuoteBorder    string
	QuoteText      string
	TableBorder    string
	TableHeader    string
	ListMarker     string
	LinkText       string
	LinkURL        string
	Rule           string

	CodeKeyword  string
	CodeString   string
	CodeComment  string
	CodeNumber   string
	CodeName     string
	CodeOperator string
}

// Foreground256 returns the SGR prefix selecting a 256-color foreground.
func Foreground256(n uint8) string {
	return "\x1b[38;5;" + itoa(n) + "m"
}

func itoa(n uint8) string {
	if n < 10 {
		return string([]byte{'0' + n})
	}
	if n < 100 {
		return string([]byte{'0' + n/10, '0' + n%10})
	}
	return string([]byte{'0' + n/100, '0' + n/10%10, '0' + n%10})
}

// PaletteLight matches browser-like rendering on light terminal
// backgrounds: blue headings, green links, red inline code, gray
// furniture.
var PaletteLight = Palette{
	H1:          Foreground256(33),
	H2:          Foreground256(33),
	H3:          Foreground256(33),
	H4:          Foreground256(33),
	H5:          Foreground256(33),
	H6:          Foreground256(33),
	CodeInline:  Foreground256(196),
	CodeBlock:   Foreground256(240),
	QuoteBorder: Foreground256(250),
	QuoteText:   Foreground256(244),
	TableBorder: Foreground256(250),
	ListMarker:  Foreground256(244),
	LinkText:    Foreground256(32),
	LinkURL:     Foreground256(244),
	Rule:        Foreground256(250),

	CodeKeyword:  Foreground256(27),
	CodeString:   Foreground256(28),
	CodeComment:  Foreground256(245),
	CodeNumber:   Foreground256(94),
	CodeName:     Foreground256(25),
	CodeOperator: Foreground256(240),
}

// PaletteDark shifts the same roles to brighter variants that stay
// readable on dark backgrounds.
var PaletteDark = Palette{
	H1:          Foreground256(75),
	H2:          Foreground256(75),
	H3:          Foreground256(75),
	H4:          Foreground256(75),
	H5:          Foreground256(75),
	H6:          Foreground256(75),
	CodeInline:  Foreground256(203),
	CodeBlock:   Foreground256(250),
	QuoteBorder: Foreground256(242),
	QuoteText:   Foreground256(248),
	TableBorder: Foreground256(242),
	ListMarker:  Foreground256(245),
	LinkText:    Foreground256(78),
	LinkURL:     Foreground256(245),
	Rule:        Foreground256(242),

	CodeKeyword:  Foreground256(81),
	CodeString:   Foreground256(114),
	CodeComment:  Foreground256(243),
	CodeNumber:   Foreground256(180),
	CodeName:     Foreground256(117),
	CodeOperator: Foreground256(250),
}
