package pipeline

import (
	"regexp"
	"strings"
)

var (
	crlfOrCR           = regexp.MustCompile(`\r\n?`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// byteOrderMark is stripped from the start of Markdown sources.
const byteOrderMark = "\uFEFF"

// normalizeMarkdown prepares Markdown for goldmark: it drops a leading byte
// order mark, converts \r\n and \r to \n, and limits runs of blank lines
// to one.
func normalizeMarkdown(content string) string {
	content = strings.TrimPrefix(content, byteOrderMark)
	content = crlfOrCR.ReplaceAllString(content, "\n")
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}
