package html2tex

import (
	"errors"

	"github.com/alnah/go-html2tex/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyInput         = errors.New("input content cannot be empty")
	ErrHTMLParse          = pipeline.ErrHTMLParse
	ErrMarkdownConversion = pipeline.ErrMarkdownConversion
	ErrRender             = errors.New("LaTeX rendering failed")
	ErrNilTree            = errors.New("tree cannot be nil")

	// Stage persistence errors.
	ErrSourcePathRequired = errors.New("source file path must be provided when saving to disk")
	ErrDecodeTree         = errors.New("failed to decode element tree")
	ErrWriteArtifact      = errors.New("failed to write artifact")
)
