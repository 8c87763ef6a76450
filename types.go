package html2tex

import (
	"log/slog"
	"slices"
	"time"

	"github.com/alnah/go-html2tex/hast"
	"github.com/alnah/go-html2tex/latex"
)

// Document class constants.
const (
	ClassBook    = "book"
	ClassArticle = "article"
	ClassReport  = "report"
)

// DefaultDocumentClass is used when neither the converter nor the input
// names a class.
const DefaultDocumentClass = ClassBook

// KnownClasses returns the recognized document classes.
func KnownClasses() []string {
	return []string{ClassBook, ClassArticle, ClassReport}
}

// IsKnownClass reports whether class is one of KnownClasses.
// Unknown classes are still accepted and passed through verbatim.
func IsKnownClass(class string) bool {
	return slices.Contains(KnownClasses(), class)
}

// Input contains conversion parameters.
type Input struct {
	HTML          string // HTML document (takes precedence over Markdown)
	Markdown      string // Markdown source, converted to HTML first
	Title         string // Markdown only: emitted as <meta name="title">
	Author        string // Markdown only: emitted as <meta name="author">
	DocumentClass string // Overrides the converter's class (optional)
}

// ConvertResult holds every stage of a conversion.
type ConvertResult struct {
	HTML  string      // HTML that was parsed (generated for Markdown input)
	Tree  *hast.Root  // Element tree
	Latex *latex.Root // LaTeX document tree
	TeX   []byte      // Rendered LaTeX source
}

// Output selects what a stage transformer does with its result.
type Output int

const (
	// OutputReturnToCaller returns the result in StageResult.Data.
	OutputReturnToCaller Output = iota
	// OutputSaveToDisk writes the result next to SourceFilePath and returns
	// the written path in StageResult.FilePath.
	OutputSaveToDisk
)

// String returns the output mode name.
func (o Output) String() string {
	switch o {
	case OutputReturnToCaller:
		return "returnToCaller"
	case OutputSaveToDisk:
		return "saveToDisk"
	default:
		return "unknown"
	}
}

// StageOptions configures a single stage transformer call.
type StageOptions struct {
	Output         Output
	SourceFilePath string // Required with OutputSaveToDisk
}

// StageResult holds the outcome of a stage transformer.
// Exactly one of Data or FilePath is set, depending on the output mode.
type StageResult[T any] struct {
	Data     T
	FilePath string
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	class   string
	timeout time.Duration
}

// defaultTimeout bounds a single Convert call.
const defaultTimeout = 30 * time.Second

// WithDocumentClass sets the default document class.
// The value is not validated: unknown classes are passed through.
func WithDocumentClass(class string) Option {
	return func(c *Converter) {
		c.cfg.class = class
	}
}

// WithTimeout sets the conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("html2tex: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithLogger sets the logger for stage diagnostics.
// A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}
