package pipeline

import (
	"github.com/alnah/go-html2tex/hast"
	"github.com/alnah/go-html2tex/latex"
)

// DefaultDocumentClass is used when no class is configured.
const DefaultDocumentClass = "book"

// ToLatex converts an element tree into a LaTeX document tree.
//
// The result is the concatenation of three segments: the \documentclass
// preamble, metadata macros from the head, and the body wrapped in the
// document environment. A missing body produces an empty document and a
// missing head produces no metadata. The class is used verbatim; empty
// selects DefaultDocumentClass.
func ToLatex(root *hast.Root, class string) *latex.Root {
	if class == "" {
		class = DefaultDocumentClass
	}

	preamble := []latex.Node{latex.NewMacro("documentclass", latex.Group(latex.Text(class)))}
	metadata := extractMetadata(root)
	document := wrapDocument(convertBody(findBody(root)))

	content := make([]latex.Node, 0, len(preamble)+len(metadata)+len(document))
	content = append(content, preamble...)
	content = append(content, metadata...)
	content = append(content, document...)

	return &latex.Root{Content: content}
}

// convertBody converts the body's direct children in one forward pass,
// adding a parbreak between consecutive paragraphs.
func convertBody(body *hast.Element) []latex.Node {
	var children []hast.Node
	if body != nil {
		children = body.Children
	}

	var content []latex.Node
	for i, child := range children {
		content = append(content, convertNode(child)...)
		if isParagraph(child) && hasFollowingParagraph(children, i+1) {
			content = append(content, &latex.Parbreak{})
		}
	}
	return content
}

// wrapDocument surrounds content with \begin{document} and \end{document}.
func wrapDocument(content []latex.Node) []latex.Node {
	begin, end := latex.Environment("document")

	wrapped := make([]latex.Node, 0, len(content)+2)
	wrapped = append(wrapped, begin)
	wrapped = append(wrapped, content...)
	return append(wrapped, end)
}
