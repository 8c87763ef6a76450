package pipeline

import (
	"testing"

	"github.com/alnah/go-html2tex/hast"
)

func TestFindBody(t *testing.T) {
	t.Parallel()

	b := body(p(txt("x")))

	tests := []struct {
		name string
		root *hast.Root
		want *hast.Element
	}{
		{"nil root", nil, nil},
		{"empty root", &hast.Root{}, nil},
		{"html without body", doc(head(), nil), nil},
		{"body found", doc(head(), b), b},
		{
			name: "body at root level is not searched",
			root: &hast.Root{Children: []hast.Node{body()}},
		},
		{
			name: "body nested deeper is not searched",
			root: &hast.Root{Children: []hast.Node{el("html", nil, el("main", nil, body()))}},
		},
		{
			name: "first html wins",
			root: &hast.Root{Children: []hast.Node{el("html", nil), el("html", nil, b)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := findBody(tt.root); got != tt.want {
				t.Errorf("findBody() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindHead(t *testing.T) {
	t.Parallel()

	h := head(meta("title", "T"))
	if got := findHead(doc(h, body())); got != h {
		t.Errorf("findHead() = %v, want %v", got, h)
	}
	if got := findHead(doc(nil, body())); got != nil {
		t.Errorf("findHead() without head = %v, want nil", got)
	}
}
