package main

// Notes:
// - Shared fixtures for the CLI tests: an injectable Environment with
//   captured output and a fake process environment, plus a temp tree builder.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// testEnv is an Environment with captured output.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestEnv returns an Environment whose variables come from vars only.
func newTestEnv(vars map[string]string) *testEnv {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &testEnv{
		Environment: &Environment{
			Now:    func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
			Stdout: stdout,
			Stderr: stderr,
			Getenv: func(k string) string { return vars[k] },
			Environ: func() []string {
				out := make([]string, 0, len(vars))
				for k, v := range vars {
					out = append(out, k+"="+v)
				}
				return out
			},
		},
		stdout: stdout,
		stderr: stderr,
	}
}

// setupTestDir creates a temp directory with the given file structure.
// Files map paths to content. Returns the temp directory path.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	tempDir := t.TempDir()

	for path, content := range files {
		fullPath := filepath.Join(tempDir, path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}

	return tempDir
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

const (
	sampleHTML = `<html><head><meta name="title" content="Notes"></head>` +
		`<body><h1>Hi</h1><p>A b</p></body></html>`

	sampleTeX = "\\documentclass{book}\n\\title{Notes}\n\\begin{document}\n" +
		"\\section{Hi}\nA b\n\\end{document}\n"
)
