package html2tex

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/alnah/go-html2tex/hast"
	"github.com/alnah/go-html2tex/internal/pipeline"
	"github.com/alnah/go-html2tex/latex"
)

// Compile-time interface implementation check.
var _ markdownConverter = (*pipeline.MarkdownConverter)(nil)

// markdownConverter abstracts the Markdown front end.
type markdownConverter interface {
	ToHTML(ctx context.Context, content string, meta pipeline.DocumentMeta) (string, error)
}

// Converter orchestrates the HTML-to-LaTeX pipeline:
// HTML text -> element tree -> LaTeX tree -> LaTeX text.
//
// A Converter holds no per-conversion state and is safe for concurrent use.
type Converter struct {
	cfg      converterConfig
	logger   *slog.Logger
	markdown markdownConverter
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithDocumentClass, WithLogger).
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		cfg:    converterConfig{class: DefaultDocumentClass, timeout: defaultTimeout},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	// Create Markdown converter if not injected (e.g., by tests)
	if c.markdown == nil {
		c.markdown = pipeline.NewMarkdownConverter()
	}

	return c
}

// withMarkdownConverter replaces the Markdown front end (for testing).
func withMarkdownConverter(m markdownConverter) Option {
	return func(c *Converter) {
		c.markdown = m
	}
}

// Convert runs the full pipeline and returns every intermediate stage.
// The context is used for cancellation and timeout.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.HTML == "" && input.Markdown == "" {
		return nil, ErrEmptyInput
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	htmlContent := input.HTML
	if htmlContent == "" {
		htmlContent, err = c.markdown.ToHTML(ctx, input.Markdown, pipeline.DocumentMeta{
			Title:  input.Title,
			Author: input.Author,
		})
		if err != nil {
			return nil, fmt.Errorf("converting markdown: %w", err)
		}
		c.logger.Debug("markdown converted", "stage", "md2html", "bytes", len(htmlContent))
	}

	tree, err := c.parse(ctx, htmlContent)
	if err != nil {
		return nil, err
	}

	doc := c.toLatex(tree, input.DocumentClass)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	tex, err := render(doc)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("latex rendered", "stage", "render", "bytes", len(tex))

	return &ConvertResult{
		HTML:  htmlContent,
		Tree:  tree,
		Latex: doc,
		TeX:   tex,
	}, nil
}

// parse converts HTML text to an element tree.
func (c *Converter) parse(ctx context.Context, htmlContent string) (*hast.Root, error) {
	tree, err := pipeline.ParseHTML(ctx, htmlContent)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	c.logger.Debug("html parsed", "stage", "html2hast", "bytes", len(htmlContent), "nodes", len(tree.Children))
	return tree, nil
}

// toLatex converts an element tree, resolving the document class from the
// per-call override, then the converter default.
func (c *Converter) toLatex(tree *hast.Root, class string) *latex.Root {
	if class == "" {
		class = c.cfg.class
	}
	doc := pipeline.ToLatex(tree, class)
	c.logger.Debug("latex tree built", "stage", "hast2latex", "class", class, "nodes", len(doc.Content))
	return doc
}

// render stringifies a LaTeX tree.
func render(doc *latex.Root) ([]byte, error) {
	var buf bytes.Buffer
	if err := latex.Render(&buf, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}
