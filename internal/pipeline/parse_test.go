package pipeline

// Notes:
// - ParseHTML relies on golang.org/x/net/html, which synthesizes html, head
//   and body. Tests assert the mapping into hast, not the parser's own rules.
// - The HTML-level round trip lives here because it needs the parser.

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-html2tex/hast"
	"github.com/alnah/go-html2tex/latex"
)

// ---------------------------------------------------------------------------
// TestParseHTML - HTML text to element tree
// ---------------------------------------------------------------------------

func TestParseHTML(t *testing.T) {
	t.Parallel()

	root, err := ParseHTML(context.Background(),
		`<!DOCTYPE html><html><head><meta name="title" content="T"></head>`+
			`<body><!-- note --><h1 class="starred  big" id="x">Intro</h1></body></html>`)
	if err != nil {
		t.Fatalf("ParseHTML() error = %v", err)
	}

	want := &hast.Root{Children: []hast.Node{
		&hast.Doctype{},
		el("html", hast.Properties{},
			el("head", hast.Properties{}, meta("title", "T")),
			el("body", hast.Properties{},
				&hast.Comment{Value: " note "},
				el("h1", hast.Properties{"className": []string{"starred", "big"}, "id": "x"}, txt("Intro")),
			),
		),
	}}
	if diff := cmp.Diff(want, root); diff != "" {
		t.Errorf("ParseHTML mismatch (-want +got):\n%s", diff)
	}
}

func TestParseHTML_SynthesizesStructure(t *testing.T) {
	t.Parallel()

	root, err := ParseHTML(context.Background(), "<p>bare</p>")
	if err != nil {
		t.Fatalf("ParseHTML() error = %v", err)
	}

	b := findBody(root)
	if b == nil {
		t.Fatal("expected synthesized body")
	}
	if len(b.Children) != 1 || !isParagraph(b.Children[0]) {
		t.Errorf("body children = %#v, want one paragraph", b.Children)
	}
	if findHead(root) == nil {
		t.Error("expected synthesized head")
	}
}

func TestParseHTML_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ParseHTML(ctx, "<p>x</p>")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ParseHTML() error = %v, want context.Canceled", err)
	}
}

// ---------------------------------------------------------------------------
// TestParseAndConvert - HTML text through the core
// ---------------------------------------------------------------------------

func TestParseAndConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "title, starred heading and paragraph",
			html: `<html><head><meta name="title" content="T"></head><body>` +
				`<h1 class="starred">Intro</h1><p>Hello, world!</p></body></html>`,
			want: "\\documentclass{book}\n\\title{T}\n\\begin{document}\n" +
				"\\section*{Intro}\nHello, world!\n\\end{document}\n",
		},
		{
			name: "paragraphs separated by blank line",
			html: "<body>\n<p>A</p>\n<p>B</p>\n</body>",
			want: "\\documentclass{book}\n\\begin{document}\nA\n\nB\n\\end{document}\n",
		},
		{
			name: "typographic apostrophe and inline markup",
			html: "<p>It’s <em>very</em> <b>good</b></p>",
			want: "\\documentclass{book}\n\\begin{document}\nIt's \n\\end{document}\n",
		},
		{
			name: "special characters escaped",
			html: "<p>100% & more_stuff</p>",
			want: "\\documentclass{book}\n\\begin{document}\n100\\% \\& more\\_stuff\n\\end{document}\n",
		},
		{
			name: "unsupported structures dropped",
			html: "<ul><li>x</li></ul><table><tr><td>1</td></tr></table><img src=a.png>",
			want: "\\documentclass{book}\n\\begin{document}\n\\end{document}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root, err := ParseHTML(context.Background(), tt.html)
			if err != nil {
				t.Fatalf("ParseHTML() error = %v", err)
			}

			got, err := latex.Sprint(ToLatex(root, ""))
			if err != nil {
				t.Fatalf("latex.Sprint() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", got, tt.want)
			}
			if strings.Count(got, `\begin{document}`) != 1 {
				t.Errorf("expected exactly one \\begin{document}, got:\n%s", got)
			}
		})
	}
}
