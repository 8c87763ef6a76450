// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnexpectedExtension is returned when a path does not carry the
// extension a derivation expects.
var ErrUnexpectedExtension = errors.New("unexpected file extension")

// File permission constants.
const (
	DirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	FilePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Artifact extensions, in pipeline order.
const (
	ExtHast     = ".hast.json"
	ExtLatexAST = ".latex.json"
	ExtTeX      = ".tex"
)

// HTMLExtensions are the recognized HTML source extensions.
var HTMLExtensions = []string{".html", ".htm"}

// MarkdownExtensions are the recognized Markdown source extensions.
var MarkdownExtensions = []string{".md", ".markdown"}

// HastPath derives the element tree artifact path for an HTML source:
// "chapter.html" -> "chapter.hast.json".
func HastPath(sourcePath string) (string, error) {
	return ReplaceExtension(sourcePath, HTMLExtensions, ExtHast)
}

// LatexASTPath derives the LaTeX tree artifact path for an element tree
// artifact: "chapter.hast.json" -> "chapter.latex.json".
func LatexASTPath(hastPath string) (string, error) {
	return ReplaceExtension(hastPath, []string{ExtHast}, ExtLatexAST)
}

// TeXPath derives the LaTeX source path for a LaTeX tree artifact:
// "chapter.latex.json" -> "chapter.tex".
func TeXPath(latexASTPath string) (string, error) {
	return ReplaceExtension(latexASTPath, []string{ExtLatexAST}, ExtTeX)
}

// ReplaceExtension swaps the first matching extension in from (compared
// case-insensitively) for to. Fails instead of returning the path unchanged,
// so a derived path never overwrites its source.
func ReplaceExtension(path string, from []string, to string) (string, error) {
	lower := strings.ToLower(path)
	for _, ext := range from {
		if strings.HasSuffix(lower, ext) {
			return path[:len(path)-len(ext)] + to, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want %s)", ErrUnexpectedExtension, filepath.Base(path), strings.Join(from, ", "))
}

// HasExtension reports whether path ends with one of exts, ignoring case.
func HasExtension(path string, exts ...string) bool {
	lower := strings.ToLower(path)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// TrimExtension removes the first matching extension in exts.
// Returns path unchanged when none match.
func TrimExtension(path string, exts ...string) string {
	lower := strings.ToLower(path)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return path[:len(path)-len(ext)]
		}
	}
	return path
}

// WriteFile writes data to path, creating parent directories as needed.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, DirPermissions); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	// #nosec G306 -- generated documents are meant to be readable
	if err := os.WriteFile(path, data, FilePermissions); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "book" -> false (name)
//   - "./html2tex.yaml" -> true (relative path)
//   - "/etc/html2tex.yaml" -> true (absolute)
//   - "C:\config\html2tex.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
