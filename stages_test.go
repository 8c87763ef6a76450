package html2tex

// Notes:
// - Save-to-disk tests write into t.TempDir(); write failures are forced
//   with a source path whose parent is a regular file.

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-html2tex/hast"
	"github.com/alnah/go-html2tex/latex"
)

const stageHTML = `<html><head><meta name="author" content="Ada"></head><body><h1 class="starred">Top</h1><p>one</p><p>two</p></body></html>`

var saveTo = func(path string) StageOptions {
	return StageOptions{Output: OutputSaveToDisk, SourceFilePath: path}
}

// ---------------------------------------------------------------------------
// TestHTMLToTree
// ---------------------------------------------------------------------------

func TestHTMLToTree_ReturnToCaller(t *testing.T) {
	t.Parallel()

	res, err := NewConverter().HTMLToTree(context.Background(), stageHTML, StageOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.FilePath != "" {
		t.Errorf("FilePath = %q, want empty", res.FilePath)
	}
	if res.Data == nil || len(res.Data.Children) == 0 {
		t.Fatal("Data should hold the parsed tree")
	}
}

func TestHTMLToTree_SaveToDisk(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	res, err := NewConverter().HTMLToTree(context.Background(), stageHTML, saveTo(filepath.Join(dir, "page.HTML")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := filepath.Join(dir, "page.hast.json")
	if res.FilePath != want {
		t.Errorf("FilePath = %q, want %q", res.FilePath, want)
	}
	if res.Data != nil {
		t.Error("Data should be empty when saving to disk")
	}

	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "{\n  \"type\": \"root\",") {
		t.Errorf("artifact should be two-space indented JSON:\n%s", data[:min(len(data), 80)])
	}
	if !json.Valid(data) {
		t.Error("artifact is not valid JSON")
	}
}

func TestHTMLToTree_Errors(t *testing.T) {
	t.Parallel()

	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		html    string
		opts    StageOptions
		wantErr error
	}{
		{"empty html", "", StageOptions{}, ErrEmptyInput},
		{"missing source path", "<p>x</p>", StageOptions{Output: OutputSaveToDisk}, ErrSourcePathRequired},
		{"wrong extension", "<p>x</p>", saveTo("page.md"), ErrWriteArtifact},
		{"unwritable", "<p>x</p>", saveTo(filepath.Join(blocker, "page.html")), ErrWriteArtifact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewConverter().HTMLToTree(context.Background(), tt.html, tt.opts)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestTreeToLatex / TestLatexToTeX
// ---------------------------------------------------------------------------

func TestStageChain_MatchesConvert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	conv := NewConverter(WithDocumentClass(ClassReport))

	tree, err := conv.HTMLToTree(ctx, stageHTML, StageOptions{})
	if err != nil {
		t.Fatal(err)
	}
	doc, err := conv.TreeToLatex(ctx, tree.Data, StageOptions{})
	if err != nil {
		t.Fatal(err)
	}
	tex, err := conv.LatexToTeX(ctx, doc.Data, StageOptions{})
	if err != nil {
		t.Fatal(err)
	}

	full, err := conv.Convert(ctx, Input{HTML: stageHTML})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(string(full.TeX), string(tex.Data)); diff != "" {
		t.Errorf("stage chain differs from Convert (-want +got):\n%s", diff)
	}
}

func TestStageChain_SaveToDisk(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	conv := NewConverter()

	saved, err := conv.HTMLToTree(ctx, stageHTML, saveTo(filepath.Join(dir, "ch.html")))
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(saved.FilePath)
	if err != nil {
		t.Fatal(err)
	}
	tree, err := DecodeTree(f)
	_ = f.Close()
	if err != nil {
		t.Fatalf("DecodeTree() error = %v", err)
	}

	latexSaved, err := conv.TreeToLatex(ctx, tree, saveTo(saved.FilePath))
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "ch.latex.json"); latexSaved.FilePath != want {
		t.Errorf("latex artifact = %q, want %q", latexSaved.FilePath, want)
	}

	doc, err := conv.TreeToLatex(ctx, tree, StageOptions{})
	if err != nil {
		t.Fatal(err)
	}
	texSaved, err := conv.LatexToTeX(ctx, doc.Data, saveTo(latexSaved.FilePath))
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "ch.tex"); texSaved.FilePath != want {
		t.Errorf("tex artifact = %q, want %q", texSaved.FilePath, want)
	}

	want := "\\documentclass{book}\n\\author{Ada}\n\\begin{document}\n\\section*{Top}\none\n\ntwo\n\\end{document}\n"
	got, err := os.ReadFile(texSaved.FilePath)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != want {
		t.Errorf("tex:\n%s\nwant:\n%s", got, want)
	}
}

func TestTreeToLatex_Errors(t *testing.T) {
	t.Parallel()

	conv := NewConverter()
	tree := &hast.Root{}

	if _, err := conv.TreeToLatex(context.Background(), nil, StageOptions{}); !errors.Is(err, ErrNilTree) {
		t.Errorf("nil tree: error = %v, want ErrNilTree", err)
	}
	if _, err := conv.TreeToLatex(context.Background(), tree, StageOptions{Output: OutputSaveToDisk}); !errors.Is(err, ErrSourcePathRequired) {
		t.Errorf("no source: error = %v, want ErrSourcePathRequired", err)
	}
	if _, err := conv.TreeToLatex(context.Background(), tree, saveTo("page.html")); !errors.Is(err, ErrWriteArtifact) {
		t.Errorf("html source: error = %v, want ErrWriteArtifact", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := conv.TreeToLatex(ctx, tree, StageOptions{}); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled: error = %v, want context.Canceled", err)
	}
}

func TestTreeToLatex_EmptyTree(t *testing.T) {
	t.Parallel()

	res, err := NewConverter().TreeToLatex(context.Background(), &hast.Root{}, StageOptions{})
	if err != nil {
		t.Fatal(err)
	}
	begin, end := latex.Environment("document")
	want := &latex.Root{Content: []latex.Node{
		latex.NewMacro("documentclass", latex.Group(latex.Text("book"))),
		begin,
		end,
	}}
	if diff := cmp.Diff(want, res.Data); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLatexToTeX_Errors(t *testing.T) {
	t.Parallel()

	conv := NewConverter()

	if _, err := conv.LatexToTeX(context.Background(), nil, StageOptions{}); !errors.Is(err, ErrNilTree) {
		t.Errorf("nil tree: error = %v, want ErrNilTree", err)
	}
	if _, err := conv.LatexToTeX(context.Background(), &latex.Root{}, saveTo("x.hast.json")); !errors.Is(err, ErrWriteArtifact) {
		t.Errorf("wrong source: error = %v, want ErrWriteArtifact", err)
	}
}

// ---------------------------------------------------------------------------
// TestDecodeTree
// ---------------------------------------------------------------------------

func TestDecodeTree(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"root", `{"type":"root","children":[{"type":"text","value":"x"}]}`, false},
		{"unknown type", `{"type":"root","children":[{"type":"widget"}]}`, true},
		{"not a root", `{"type":"text","value":"x"}`, true},
		{"malformed", `{"type":`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree, err := DecodeTree(strings.NewReader(tt.input))
			if tt.wantErr {
				if !errors.Is(err, ErrDecodeTree) {
					t.Errorf("error = %v, want ErrDecodeTree", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tree.Children) != 1 {
				t.Errorf("children = %v", tree.Children)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestSaveTree / TestSaveLatex
// ---------------------------------------------------------------------------

func TestSaveTree_MatchesHTMLToTree(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	conv := NewConverter()
	dir := t.TempDir()

	res, err := conv.Convert(ctx, Input{HTML: stageHTML})
	if err != nil {
		t.Fatal(err)
	}

	path, err := conv.SaveTree(res.Tree, filepath.Join(dir, "a.html"))
	if err != nil {
		t.Fatalf("SaveTree() error = %v", err)
	}
	if want := filepath.Join(dir, "a.hast.json"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	staged, err := conv.HTMLToTree(ctx, stageHTML, saveTo(filepath.Join(dir, "b.html")))
	if err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want, err := os.ReadFile(staged.FilePath)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		t.Errorf("saved tree differs from HTMLToTree artifact (-want +got):\n%s", diff)
	}
}

func TestSaveLatex(t *testing.T) {
	t.Parallel()

	conv := NewConverter()
	dir := t.TempDir()

	res, err := conv.Convert(context.Background(), Input{HTML: stageHTML})
	if err != nil {
		t.Fatal(err)
	}

	path, err := conv.SaveLatex(res.Latex, filepath.Join(dir, "a.hast.json"))
	if err != nil {
		t.Fatalf("SaveLatex() error = %v", err)
	}
	if want := filepath.Join(dir, "a.latex.json"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	if data, err := os.ReadFile(path); err != nil || !json.Valid(data) {
		t.Errorf("artifact unreadable or invalid JSON: %v", err)
	}
}

func TestSaveTree_Errors(t *testing.T) {
	t.Parallel()

	conv := NewConverter()

	if _, err := conv.SaveTree(nil, "a.html"); !errors.Is(err, ErrNilTree) {
		t.Errorf("nil tree: error = %v, want ErrNilTree", err)
	}
	if _, err := conv.SaveTree(&hast.Root{}, ""); !errors.Is(err, ErrSourcePathRequired) {
		t.Errorf("no source: error = %v, want ErrSourcePathRequired", err)
	}
	if _, err := conv.SaveLatex(nil, "a.hast.json"); !errors.Is(err, ErrNilTree) {
		t.Errorf("nil latex tree: error = %v, want ErrNilTree", err)
	}
	if _, err := conv.SaveLatex(&latex.Root{}, "a.html"); !errors.Is(err, ErrWriteArtifact) {
		t.Errorf("html source: error = %v, want ErrWriteArtifact", err)
	}
}
