package mdterm

import "strings"

var frontMatterDelimiters = []string{"---", "+++", ";;;"}

// stripFrontMatter removes a leading front matter block delimited by
// ---, +++ or ;;; fences. The block is only treated as front matter
// when its second line looks like metadata; an unterminated block is
// rendered as regular markdown.
func stripFrontMatter(src string) string {
	lines := strings.SplitAfter(src, "\n")
	if len(lines) < 2 {
		return src
	}
	delim, ok := openingFrontMatterDelimiter(lines[0])
	if !ok {
		return src
	}
	if !frontMatterMetadataLikely(lines[1]) {
		return src
	}
	for i := 2; i < len(lines); i++ {
		if strings.TrimSpace(strings.TrimSuffix(lines[i], "\n")) == delim {
			return strings.Join(lines[i+1:], "")
		}
	}
	return src
}

func openingFrontMatterDelimiter(line string) (string, bool) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(line, "\ufeff"))
	for _, d := range frontMatterDelimiters {
		if trimmed == d {
			return d, true
		}
	}
	return "", false
}

func frontMatterMetadataLikely(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return true
	}
	return strings.ContainsAny(trimmed, ":=")
}
