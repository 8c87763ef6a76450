package html2tex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/alnah/go-html2tex/hast"
	"github.com/alnah/go-html2tex/internal/fileutil"
	"github.com/alnah/go-html2tex/latex"
)

// HTMLToTree parses HTML into an element tree.
// With OutputSaveToDisk the tree is written as JSON to the source path with
// its .html/.htm extension replaced by .hast.json.
func (c *Converter) HTMLToTree(ctx context.Context, htmlContent string, opts StageOptions) (*StageResult[*hast.Root], error) {
	if htmlContent == "" {
		return nil, ErrEmptyInput
	}

	tree, err := c.parse(ctx, htmlContent)
	if err != nil {
		return nil, err
	}

	return finishStage(tree, opts, fileutil.HastPath, marshalTree[*hast.Root], c)
}

// TreeToLatex converts an element tree into a LaTeX tree using the
// converter's document class.
// With OutputSaveToDisk the tree is written as JSON to the source path with
// its .hast.json extension replaced by .latex.json.
func (c *Converter) TreeToLatex(ctx context.Context, tree *hast.Root, opts StageOptions) (*StageResult[*latex.Root], error) {
	if tree == nil {
		return nil, ErrNilTree
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := c.toLatex(tree, "")

	return finishStage(doc, opts, fileutil.LatexASTPath, marshalTree[*latex.Root], c)
}

// LatexToTeX renders a LaTeX tree to LaTeX source.
// With OutputSaveToDisk the source is written to the source path with its
// .latex.json extension replaced by .tex.
func (c *Converter) LatexToTeX(ctx context.Context, doc *latex.Root, opts StageOptions) (*StageResult[[]byte], error) {
	if doc == nil {
		return nil, ErrNilTree
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tex, err := render(doc)
	if err != nil {
		return nil, err
	}

	return finishStage(tex, opts, fileutil.TeXPath, func(b []byte) ([]byte, error) { return b, nil }, c)
}

// SaveTree writes an already parsed element tree the way HTMLToTree does
// with OutputSaveToDisk and returns the artifact path.
func (c *Converter) SaveTree(tree *hast.Root, sourceFilePath string) (string, error) {
	if tree == nil {
		return "", ErrNilTree
	}
	res, err := finishStage(tree, saveOptions(sourceFilePath), fileutil.HastPath, marshalTree[*hast.Root], c)
	if err != nil {
		return "", err
	}
	return res.FilePath, nil
}

// SaveLatex writes an already built LaTeX tree the way TreeToLatex does
// with OutputSaveToDisk. sourceFilePath names the .hast.json source.
func (c *Converter) SaveLatex(doc *latex.Root, sourceFilePath string) (string, error) {
	if doc == nil {
		return "", ErrNilTree
	}
	res, err := finishStage(doc, saveOptions(sourceFilePath), fileutil.LatexASTPath, marshalTree[*latex.Root], c)
	if err != nil {
		return "", err
	}
	return res.FilePath, nil
}

func saveOptions(sourceFilePath string) StageOptions {
	return StageOptions{Output: OutputSaveToDisk, SourceFilePath: sourceFilePath}
}

// DecodeTree reads an element tree saved by HTMLToTree.
func DecodeTree(r io.Reader) (*hast.Root, error) {
	tree, err := hast.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeTree, err)
	}
	return tree, nil
}

// finishStage returns data to the caller or saves it next to the source.
func finishStage[T any](
	data T,
	opts StageOptions,
	derive func(string) (string, error),
	encode func(T) ([]byte, error),
	c *Converter,
) (*StageResult[T], error) {
	if opts.Output != OutputSaveToDisk {
		return &StageResult[T]{Data: data}, nil
	}

	if opts.SourceFilePath == "" {
		return nil, ErrSourcePathRequired
	}

	path, err := derive(opts.SourceFilePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteArtifact, err)
	}

	content, err := encode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding %s: %v", ErrWriteArtifact, path, err)
	}

	if err := fileutil.WriteFile(path, content); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteArtifact, err)
	}
	c.logger.Debug("artifact saved", "path", path, "bytes", len(content))

	return &StageResult[T]{FilePath: path}, nil
}

// marshalTree encodes a tree as indented JSON.
func marshalTree[T json.Marshaler](tree T) ([]byte, error) {
	data, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
