package mdterm

import (
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/termenv"

	"pkt.systems/mdterm/internal/palette"
)

// StyleTag names the semantic role of a display segment. Tags carry no
// color; the theme resolver maps them to concrete attributes at emit
// time.
type StyleTag uint8

const (
	TagPlain StyleTag = iota
	TagHeading1
	TagHeading2
	TagHeading3
	TagHeading4
	TagHeading5
	TagHeading6
	TagEmphasis
	TagStrong
	TagEmphasisStrong
	TagCodeInline
	TagCodeBlock
	TagLinkText
	TagLinkURL
	TagQuoteBorder
	TagQuoteText
	TagTableBorder
	TagTableHeader
	TagListMarker
	TagRule
	TagCodeKeyword
	TagCodeString
	TagCodeComment
	TagCodeNumber
	TagCodeName
	TagCodeOperator
)

// HeadingTag returns the tag for a heading level. Levels outside 1..6
// clamp to the nearest valid level.
func HeadingTag(level int) StyleTag {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return TagHeading1 + StyleTag(level-1)
}

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the semantic styles used by the renderer.
type Styles struct {
	Text           Style
	Heading        [6]Style
	Emphasis       Style
	Strong         Style
	EmphasisStrong Style
	CodeInline     Style
	CodeBlock      Style
	LinkText       Style
	LinkURL        Style
	QuoteBorder    Style
	QuoteText      Style
	TableBorder    Style
	TableHeader    Style
	ListMarker     Style
	Rule           Style
	CodeKeyword    Style
	CodeString     Style
	CodeComment    Style
	CodeNumber     Style
	CodeName       Style
	CodeOperator   Style
}

// Theme provides named styles for Markdown rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return Style{Prefix: b.String()}
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Text: style(p.Text),
		Heading: [6]Style{
			style(palette.Bold, p.H1),
			style(palette.Bold, p.H2),
			style(palette.Bold, p.H3),
			style(palette.Bold, p.H4),
			style(palette.Bold, p.H5),
			style(palette.Bold, p.H6),
		},
		Emphasis:       style(palette.Italic, p.Emphasis),
		Strong:         style(palette.Bold, p.Strong),
		EmphasisStrong: style(palette.Bold, palette.Italic, p.EmphasisStrong),
		CodeInline:     style(p.CodeInline),
		CodeBlock:      style(p.CodeBlock),
		LinkText:       style(palette.Underline, p.LinkText),
		LinkURL:        style(p.LinkURL),
		QuoteBorder:    style(p.QuoteBorder),
		QuoteText:      style(p.QuoteText),
		TableBorder:    style(p.TableBorder),
		TableHeader:    style(palette.Bold, p.TableHeader),
		ListMarker:     style(p.ListMarker),
		Rule:           style(p.Rule),
		CodeKeyword:    style(p.CodeKeyword),
		CodeString:     style(p.CodeString),
		CodeComment:    style(palette.Italic, p.CodeComment),
		CodeNumber:     style(p.CodeNumber),
		CodeName:       style(p.CodeName),
		CodeOperator:   style(p.CodeOperator),
	}
}

var builtinThemes = map[string]Theme{
	"light": theme{name: "light", styles: stylesFromPalette(palette.PaletteLight)},
	"dark":  theme{name: "dark", styles: stylesFromPalette(palette.PaletteDark)},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["light"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["light"]
}

// resolver maps style tags to concrete ANSI prefixes for one render
// call. With color disabled every tag resolves to the empty style, so
// the emitter produces no escape sequences at all.
type resolver struct {
	styles Styles
	color  bool
}

func newResolver(t Theme, codeTheme string, color bool) resolver {
	if t == nil {
		t = DefaultTheme()
	}
	styles := t.Styles()
	if color {
		applyCodeTheme(&styles, codeTheme)
	}
	return resolver{styles: styles, color: color}
}

func (r resolver) resolve(tag StyleTag) Style {
	if !r.color {
		return Style{}
	}
	switch tag {
	case TagHeading1, TagHeading2, TagHeading3, TagHeading4, TagHeading5, TagHeading6:
		return r.styles.Heading[tag-TagHeading1]
	case TagEmphasis:
		return r.styles.Emphasis
	case TagStrong:
		return r.styles.Strong
	case TagEmphasisStrong:
		return r.styles.EmphasisStrong
	case TagCodeInline:
		return r.styles.CodeInline
	case TagCodeBlock:
		return r.styles.CodeBlock
	case TagLinkText:
		return r.styles.LinkText
	case TagLinkURL:
		return r.styles.LinkURL
	case TagQuoteBorder:
		return r.styles.QuoteBorder
	case TagQuoteText:
		return r.styles.QuoteText
	case TagTableBorder:
		return r.styles.TableBorder
	case TagTableHeader:
		return r.styles.TableHeader
	case TagListMarker:
		return r.styles.ListMarker
	case TagRule:
		return r.styles.Rule
	case TagCodeKeyword:
		return r.styles.CodeKeyword
	case TagCodeString:
		return r.styles.CodeString
	case TagCodeComment:
		return r.styles.CodeComment
	case TagCodeNumber:
		return r.styles.CodeNumber
	case TagCodeName:
		return r.styles.CodeName
	case TagCodeOperator:
		return r.styles.CodeOperator
	default:
		// Unknown tags degrade to plain rather than failing.
		return r.styles.Text
	}
}

// applyCodeTheme overrides the theme's code token styles with colors
// from the named chroma style (the advisory code_theme option, default
// monokai). Chroma styles are truecolor; termenv down-converts each
// color to the ANSI 256 palette the rest of the renderer speaks. An
// unknown name resolves to chroma's fallback style, so this never
// fails.
func applyCodeTheme(styles *Styles, name string) {
	if name == "" {
		return
	}
	cs := chromastyles.Get(name)
	if cs == nil {
		return
	}
	set := func(dst *Style, tt chroma.TokenType, italic bool) {
		entry := cs.Get(tt)
		var b strings.Builder
		if entry.Bold == chroma.Yes {
			b.WriteString(palette.Bold)
		}
		if italic || entry.Italic == chroma.Yes {
			b.WriteString(palette.Italic)
		}
		if entry.Colour.IsSet() {
			if c := termenv.ANSI256.Color(entry.Colour.String()); c != nil {
				b.WriteString("\x1b[" + c.Sequence(false) + "m")
			}
		}
		if b.Len() > 0 {
			*dst = Style{Prefix: b.String()}
		}
	}
	set(&styles.CodeKeyword, chroma.Keyword, false)
	set(&styles.CodeString, chroma.LiteralString, false)
	set(&styles.CodeComment, chroma.Comment, true)
	set(&styles.CodeNumber, chroma.LiteralNumber, false)
	set(&styles.CodeName, chroma.NameFunction, false)
	set(&styles.CodeOperator, chroma.Operator, false)
}
