package pipeline

import (
	"strings"

	"github.com/alnah/go-html2tex/hast"
	"github.com/alnah/go-html2tex/latex"
)

// metadataMacros maps a lower-cased meta name to the LaTeX macro it becomes.
var metadataMacros = map[string]string{
	"author": "author",
	"title":  "title",
}

// extractMetadata turns recognized meta tags in the head into \author and
// \title macros, in document order. A missing head yields nothing.
func extractMetadata(root *hast.Root) []latex.Node {
	head := findHead(root)
	if head == nil {
		return nil
	}

	var macros []latex.Node
	for _, child := range head.Children {
		el, ok := child.(*hast.Element)
		if !ok || el.TagName != "meta" {
			continue
		}

		name, hasName := el.Property("name")
		content, hasContent := el.Property("content")
		if !hasName || !hasContent {
			continue
		}

		macro, known := metadataMacros[strings.ToLower(name)]
		if !known {
			continue
		}
		macros = append(macros, latex.NewMacro(macro, latex.Group(latex.Text(content))))
	}
	return macros
}
