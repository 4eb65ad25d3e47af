package mdterm

import (
	"regexp"
	"testing"
)

var ansiRegexp = regexp.MustCompile("\x1b\\[[0-9;]*[A-Za-z]")
var osc8Regexp = regexp.MustCompile("\x1b\\]8;;.*?\x1b\\\\")

func stripANSI(s string) string {
	s = ansiRegexp.ReplaceAllString(s, "")
	s = osc8Regexp.ReplaceAllString(s, "")
	return s
}

func renderPlain(t *testing.T, src string, width int) string {
	t.Helper()
	return stripANSI(renderWithOptions(t, src, width, WithOSC8(false)))
}

func renderWithOptions(t *testing.T, src string, width int, opts ...RenderOption) string {
	t.Helper()
	out, err := RenderString(src, width, DefaultTheme(), opts...)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out
}
