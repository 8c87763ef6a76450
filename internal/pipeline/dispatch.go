package pipeline

import (
	"github.com/alnah/go-html2tex/hast"
	"github.com/alnah/go-html2tex/latex"
)

// convertNode maps one input node to zero or more output nodes.
//
// Only text, headings and paragraphs produce output. Every other element is
// dropped together with its descendants, so a div wrapping a paragraph
// contributes nothing.
func convertNode(node hast.Node) []latex.Node {
	switch n := node.(type) {
	case *hast.Text:
		return tokenize(n.Value)
	case *hast.Element:
		switch n.TagName {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			return []latex.Node{convertHeading(n)}
		case "p":
			return convertParagraph(n)
		default:
			return nil
		}
	default:
		return nil
	}
}

// convertParagraph inlines the converted children of a paragraph.
// Paragraph separation is added by the assembler, not here.
func convertParagraph(el *hast.Element) []latex.Node {
	var out []latex.Node
	for _, child := range el.Children {
		out = append(out, convertNode(child)...)
	}
	return out
}

// isParagraph reports whether node is a p element.
func isParagraph(node hast.Node) bool {
	return hast.IsElement(node, "p")
}

// hasFollowingParagraph reports whether the first element at or after
// start is a paragraph. Text, comments and doctypes in between are skipped;
// any other element ends the search.
func hasFollowingParagraph(nodes []hast.Node, start int) bool {
	for i := start; i < len(nodes); i++ {
		if el, ok := nodes[i].(*hast.Element); ok {
			return el.TagName == "p"
		}
	}
	return false
}
