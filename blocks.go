package mdterm

import (
	"regexp"
	"strings"
)

// tableSeparatorRe recognizes the delimiter row that must follow a table
// header: pipes around runs of dashes with optional alignment colons.
var tableSeparatorRe = regexp.MustCompile(`^\|?\s*:?-+:?\s*(\|\s*:?-+:?\s*)*\|?$`)

// Parse builds a Document from Markdown source. Control characters are
// stripped, leading front matter is skipped, and every construct the
// parser does not recognize degrades to plain paragraph text; Parse
// itself never fails.
func Parse(source string) Document {
	source = sanitizeSource(source)
	source = stripFrontMatter(source)
	return Document{Blocks: parseBlocks(source, false)}
}

// parseBlocks is the line-oriented block scanner. In tight mode (list
// item content) accumulated lines become Text blocks instead of
// Paragraphs, so items do not force blank-line separation.
func parseBlocks(src string, tight bool) []Block {
	lines := strings.Split(src, "\n")
	var blocks []Block
	var para []string

	flush := func() {
		if len(para) == 0 {
			return
		}
		inline := parseInline(strings.Join(para, " "))
		if tight {
			blocks = append(blocks, Text{Inline: inline})
		} else {
			blocks = append(blocks, Paragraph{Inline: inline})
		}
		para = para[:0]
	}

	i := 0
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			flush()
			i++
			continue
		}

		if strings.HasPrefix(trimmed, "```") {
			flush()
			block, next := parseFence(lines, i)
			blocks = append(blocks, block)
			i = next
			continue
		}

		if level, rest, ok := headingLine(trimmed); ok {
			flush()
			blocks = append(blocks, Heading{Level: level, Inline: parseInline(rest)})
			i++
			continue
		}

		if strings.HasPrefix(trimmed, ">") {
			flush()
			block, next := parseQuote(lines, i)
			blocks = append(blocks, block)
			i = next
			continue
		}

		if isRuleLine(trimmed) {
			flush()
			blocks = append(blocks, Rule{})
			i++
			continue
		}

		if table, next, ok := parseTable(lines, i); ok {
			flush()
			blocks = append(blocks, table)
			i = next
			continue
		}

		if _, _, _, _, ok := listMarker(line); ok {
			flush()
			block, next := parseList(lines, i)
			blocks = append(blocks, block)
			i = next
			continue
		}

		para = append(para, trimmed)
		i++
	}
	flush()
	return blocks
}

// headingLine matches ATX headings: one to six hashes followed by a
// space. A longer hash run or a missing space is not a heading.
func headingLine(trimmed string) (level int, rest string, ok bool) {
	n := 0
	for n < len(trimmed) && trimmed[n] == '#' {
		n++
	}
	if n < 1 || n > 6 {
		return 0, "", false
	}
	if n == len(trimmed) {
		return n, "", true
	}
	if trimmed[n] != ' ' {
		return 0, "", false
	}
	return n, strings.TrimSpace(trimmed[n:]), true
}

// parseFence captures verbatim lines between code fences. An
// unterminated fence consumes to end of document.
func parseFence(lines []string, i int) (Block, int) {
	opening := strings.TrimSpace(lines[i])
	language := ""
	if fields := strings.Fields(strings.TrimPrefix(opening, "```")); len(fields) > 0 {
		language = fields[0]
	}
	var body []string
	i++
	for i < len(lines) {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
			i++
			return CodeBlock{Language: language, Lines: body}, i
		}
		body = append(body, lines[i])
		i++
	}
	return CodeBlock{Language: language, Lines: body}, i
}

// parseQuote strips one level of "> " from consecutive quote lines and
// feeds the result back through the block parser, so nested quotes and
// quoted blocks of any kind compose.
func parseQuote(lines []string, i int) (Block, int) {
	var inner []string
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(trimmed, ">") {
			break
		}
		rest := trimmed[1:]
		rest = strings.TrimPrefix(rest, " ")
		inner = append(inner, rest)
		i++
	}
	return Blockquote{Children: parseBlocks(strings.Join(inner, "\n"), false)}, i
}

func isRuleLine(trimmed string) bool {
	if len(trimmed) < 3 {
		return false
	}
	marker := trimmed[0]
	if marker != '-' && marker != '*' {
		return false
	}
	for j := 0; j < len(trimmed); j++ {
		if trimmed[j] != marker {
			return false
		}
	}
	return true
}

// parseTable requires a header row immediately followed by a separator
// row; body rows run until the first blank or pipe-less line. Anything
// that fails those checks is left for the paragraph accumulator.
func parseTable(lines []string, i int) (Table, int, bool) {
	if !strings.Contains(lines[i], "|") {
		return Table{}, i, false
	}
	if i+1 >= len(lines) {
		return Table{}, i, false
	}
	sep := strings.TrimSpace(lines[i+1])
	if !strings.Contains(sep, "-") || !tableSeparatorRe.MatchString(sep) {
		return Table{}, i, false
	}
	header := splitRow(lines[i])
	if len(header) == 0 {
		return Table{}, i, false
	}
	var rows [][]Cell
	j := i + 2
	for j < len(lines) {
		trimmed := strings.TrimSpace(lines[j])
		if trimmed == "" || !strings.Contains(trimmed, "|") {
			break
		}
		rows = append(rows, splitRow(lines[j]))
		j++
	}
	return Table{Header: header, Rows: rows}, j, true
}

func splitRow(line string) []Cell {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")
	parts := strings.Split(trimmed, "|")
	cells := make([]Cell, 0, len(parts))
	for _, part := range parts {
		cells = append(cells, Cell(strings.TrimSpace(part)))
	}
	return cells
}

// listMarker reports whether a line opens a list item: optional indent,
// then "-", "*", or digits followed by ".", then a space. Returns the
// indent, the content after the marker, and the marker's display width
// including its trailing space.
func listMarker(line string) (indent int, ordered bool, rest string, markerWidth int, ok bool) {
	indent = 0
	for indent < len(line) && line[indent] == ' ' {
		indent++
	}
	j := indent
	if j >= len(line) {
		return 0, false, "", 0, false
	}
	switch {
	case line[j] == '-' || line[j] == '*':
		j++
	case line[j] >= '0' && line[j] <= '9':
		for j < len(line) && line[j] >= '0' && line[j] <= '9' {
			j++
		}
		if j >= len(line) || line[j] != '.' {
			return 0, false, "", 0, false
		}
		ordered = true
		j++
	default:
		return 0, false, "", 0, false
	}
	if j >= len(line) || line[j] != ' ' {
		return 0, false, "", 0, false
	}
	j++
	return indent, ordered, line[j:], j - indent, true
}

// parseList gathers sibling items at the opening marker's indent.
// Deeper-indented lines (continuations and nested lists) are dedented
// into the item's content and parsed recursively in tight mode. A blank
// line or a shallower construct ends the list.
func parseList(lines []string, i int) (Block, int) {
	indent0, ordered0, _, _, _ := listMarker(lines[i])
	var items [][]Block
	for i < len(lines) {
		ind, ord, rest, markerWidth, ok := listMarker(lines[i])
		if !ok || ind != indent0 || ord != ordered0 {
			break
		}
		contentIndent := ind + markerWidth
		content := []string{rest}
		i++
		for i < len(lines) {
			line := lines[i]
			if strings.TrimSpace(line) == "" {
				break
			}
			ind2, _, _, _, ok2 := listMarker(line)
			if ok2 && ind2 <= indent0 {
				break
			}
			if leadingSpaces(line) >= contentIndent {
				content = append(content, line[contentIndent:])
			} else if ok2 {
				content = append(content, strings.TrimLeft(line, " "))
			} else {
				break
			}
			i++
		}
		items = append(items, parseBlocks(strings.Join(content, "\n"), true))
	}
	return List{Ordered: ordered0, Items: items}, i
}

func leadingSpaces(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}
