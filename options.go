package mdterm

// DefaultCodeTheme is the advisory syntax highlighting style applied to
// fenced code when no other is requested.
const DefaultCodeTheme = "monokai"

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	color     bool
	codeTheme string
	osc8      bool
}

func defaultRenderConfig() renderConfig {
	return renderConfig{color: true, codeTheme: DefaultCodeTheme}
}

// WithColor enables or disables ANSI attributes. With color disabled
// the output contains no escape sequences; structure glyphs (borders,
// rules, bullets) still render.
func WithColor(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.color = enabled
	}
}

// WithCodeTheme selects the chroma style used to color fenced code.
// Unknown names fall back to a default style; they never fail.
func WithCodeTheme(name string) RenderOption {
	return func(cfg *renderConfig) {
		if name != "" {
			cfg.codeTheme = name
		}
	}
}

// WithOSC8 enables or disables OSC 8 hyperlinks. Hyperlinks are only
// emitted when color is enabled.
func WithOSC8(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.osc8 = enabled
	}
}
