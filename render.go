package mdterm

import (
	"bytes"
	"fmt"
	"io"
)

// RenderRequest configures Render.
type RenderRequest struct {
	Source  string
	Writer  io.Writer
	Width   int
	Theme   Theme
	Options []RenderOption
}

// Render parses, lays out, and emits one Markdown document. The output
// is buffered and written in a single call, so a failing writer never
// receives partial output. The only input the renderer rejects is text
// that is not valid UTF-8 or looks binary; every malformed Markdown
// construct degrades to plain text instead.
func Render(req RenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	out, err := renderToString(req.Source, req.Width, req.Theme, req.Options)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(req.Writer, out); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}
	return nil
}

// RenderString renders Markdown and returns the decorated text.
func RenderString(source string, width int, theme Theme, opts ...RenderOption) (string, error) {
	return renderToString(source, width, theme, opts)
}

func renderToString(source string, width int, theme Theme, opts []RenderOption) (string, error) {
	if err := ValidateInput([]byte(source)); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	cfg := defaultRenderConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	doc := Parse(source)
	lines := LayoutDocument(doc, width, opts...)
	res := newResolver(theme, cfg.codeTheme, cfg.color)

	var buf bytes.Buffer
	buf.Grow(len(source) * 2)
	if err := emitLines(&buf, lines, res, cfg.osc8); err != nil {
		return "", err
	}
	return buf.String(), nil
}
