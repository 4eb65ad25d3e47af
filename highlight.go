package mdterm

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// highlightCode tokenizes fenced code and returns one segment slice per
// source line, tagged by token kind. An absent or unrecognized language,
// or any tokenizer failure, yields Plain-tagged verbatim lines: the
// highlighter fails open and never errors.
func highlightCode(lines []string, language string) [][]Segment {
	if language == "" {
		return plainCodeLines(lines, TagPlain)
	}
	lexer := lexers.Get(language)
	if lexer == nil {
		return plainCodeLines(lines, TagPlain)
	}
	lexer = chroma.Coalesce(lexer)
	iterator, err := lexer.Tokenise(nil, strings.Join(lines, "\n"))
	if err != nil {
		return plainCodeLines(lines, TagPlain)
	}

	var out [][]Segment
	var cur []Segment
	for _, token := range iterator.Tokens() {
		tag := codeTokenTag(token.Type)
		parts := strings.Split(token.Value, "\n")
		for k, part := range parts {
			if part != "" {
				cur = append(cur, Segment{Text: part, Tag: tag})
			}
			if k < len(parts)-1 {
				out = append(out, cur)
				cur = nil
			}
		}
	}
	out = append(out, cur)
	// Lexers with EnsureNL append a newline to the source; drop the
	// phantom empty line it produces.
	if len(out) == len(lines)+1 && len(out[len(out)-1]) == 0 {
		out = out[:len(out)-1]
	}
	if len(out) != len(lines) {
		// Tokenization did not round-trip the input; render verbatim.
		return plainCodeLines(lines, TagPlain)
	}
	return out
}

func plainCodeLines(lines []string, tag StyleTag) [][]Segment {
	out := make([][]Segment, len(lines))
	for i, line := range lines {
		if line != "" {
			out[i] = []Segment{{Text: line, Tag: tag}}
		}
	}
	return out
}

// codeTokenTag maps chroma token categories onto the renderer's token
// kinds. Anything unmapped keeps the code block's base tag so the theme
// resolver can still color it as code.
func codeTokenTag(t chroma.TokenType) StyleTag {
	switch {
	case t.InCategory(chroma.Comment):
		return TagCodeComment
	case t.InCategory(chroma.Keyword):
		return TagCodeKeyword
	case t.InSubCategory(chroma.LiteralString):
		return TagCodeString
	case t.InSubCategory(chroma.LiteralNumber):
		return TagCodeNumber
	case t.InCategory(chroma.Operator), t.InCategory(chroma.Punctuation):
		return TagCodeOperator
	case t.InCategory(chroma.Name):
		return TagCodeName
	default:
		return TagCodeBlock
	}
}
