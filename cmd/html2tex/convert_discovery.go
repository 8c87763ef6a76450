package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-html2tex/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("unsupported input extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// MaxWorkers bounds --workers.
const MaxWorkers = 32

// inputKind tells convertFile how to read a discovered file.
type inputKind int

const (
	kindHTML inputKind = iota
	kindMarkdown
	kindTree
)

// inputExtensions lists accepted input extensions. The element tree
// extension comes first so "x.hast.json" is never mistaken for plain JSON.
var inputExtensions = slices.Concat(
	[]string{fileutil.ExtHast},
	fileutil.HTMLExtensions,
	fileutil.MarkdownExtensions,
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
	Kind       inputKind
}

// hasInputExtension reports whether path carries an accepted extension.
func hasInputExtension(path string) bool {
	return fileutil.HasExtension(path, inputExtensions...)
}

// kindOf classifies path by extension. ok is false for unsupported files.
func kindOf(path string) (kind inputKind, ok bool) {
	switch {
	case fileutil.HasExtension(path, fileutil.ExtHast):
		return kindTree, true
	case fileutil.HasExtension(path, fileutil.HTMLExtensions...):
		return kindHTML, true
	case fileutil.HasExtension(path, fileutil.MarkdownExtensions...):
		return kindMarkdown, true
	}
	return 0, false
}

// discoverFiles finds all convertible files under inputPath.
// A single file must have an accepted extension; directories are walked
// recursively and unsupported files skipped.
func discoverFiles(inputPath, outputDir string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		kind, ok := kindOf(inputPath)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidExtension, filepath.Base(inputPath))
		}
		outPath := resolveOutputPath(inputPath, outputDir, "")
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath, Kind: kind}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		kind, ok := kindOf(path)
		if !ok {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath, Kind: kind})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the .tex output path for an input file.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	base := fileutil.TrimExtension(filepath.Base(inputPath), inputExtensions...)

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base+fileutil.ExtTeX)
	}

	if strings.HasSuffix(strings.ToLower(outputDir), fileutil.ExtTeX) {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			relDir := filepath.Dir(relPath)
			return filepath.Join(outputDir, relDir, base+fileutil.ExtTeX)
		}
	}

	return filepath.Join(outputDir, base+fileutil.ExtTeX)
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, MaxWorkers)
	}
	return nil
}
