// Package mdterm renders Markdown to ANSI for terminal display.
//
// The renderer is a batch pipeline: the full source is parsed into a
// block tree, inline spans are resolved, fenced code is syntax
// highlighted, blocks are laid out into display lines at a fixed
// width, and the lines are emitted with ANSI escape sequences from the
// active theme. Output for a given source, width and theme is
// deterministic.
//
// Core properties:
//   - Wrapped lines never exceed the requested width
//   - Malformed markdown degrades to plain text, never errors
//   - Theme-driven styling via ANSI prefixes, with monochrome fallback
//   - Optional OSC 8 hyperlinks for supporting terminals
//
// Example:
//
//	err := mdterm.Render(mdterm.RenderRequest{
//		Source: "# Hello\n\nMarkdown in, ANSI out.\n",
//		Writer: os.Stdout,
//		Width:  80,
//		Theme:  mdterm.DefaultTheme(),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// The renderer can be customized using RenderOptions such as syntax
// highlighting themes and OSC 8 hyperlink support.
package mdterm
