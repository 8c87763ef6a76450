package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	stdhtml "html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrMarkdownConversion indicates Markdown to HTML conversion failed.
var ErrMarkdownConversion = errors.New("markdown conversion failed")

// htmlTemplate wraps Goldmark's fragment output in a complete HTML5 document.
// The first verb receives the head metadata, the second the body.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
%s</head>
<body>
%s
</body>
</html>`

// DocumentMeta is written into the head of generated HTML.
type DocumentMeta struct {
	Title  string
	Author string
}

// MarkdownConverter converts Markdown to a full HTML document using goldmark.
type MarkdownConverter struct {
	md goldmark.Markdown
}

// NewMarkdownConverter creates a MarkdownConverter with GFM extensions.
func NewMarkdownConverter() *MarkdownConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &MarkdownConverter{md: md}
}

// ToHTML converts Markdown content to a standalone HTML5 document whose head
// carries meta tags for the non-empty fields of meta. Line endings are
// normalized first.
// Goldmark has no context support, so conversion runs in a goroutine and
// the caller returns early on cancellation.
func (c *MarkdownConverter) ToHTML(ctx context.Context, content string, meta DocumentMeta) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(normalizeMarkdown(content)), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrMarkdownConversion, err)}
			return
		}
		done <- result{html: fmt.Sprintf(htmlTemplate, headMeta(meta), buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// headMeta renders meta tags for the non-empty metadata fields.
func headMeta(meta DocumentMeta) string {
	var sb strings.Builder
	for _, field := range []struct{ name, value string }{
		{"title", meta.Title},
		{"author", meta.Author},
	} {
		if field.value == "" {
			continue
		}
		fmt.Fprintf(&sb, "<meta name=%q content=\"%s\">\n", field.name, stdhtml.EscapeString(field.value))
	}
	return sb.String()
}
