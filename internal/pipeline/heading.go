package pipeline

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alnah/go-html2tex/hast"
	"github.com/alnah/go-html2tex/latex"
)

// sectionMacro is the macro every heading level maps to.
// Heading depth is not carried into the output.
const sectionMacro = "section"

// starredClass marks a heading as unnumbered.
const starredClass = "starred"

// headingRenderInfo labels the four section argument slots.
var headingRenderInfo = latex.RenderInfo{
	BreakAround:    true,
	NamedArguments: []string{"starred", "", "tocTitle", "title"},
}

// convertHeading builds \section with its four fixed arguments:
// starred marker, an unused slot, the short title slot, and the title.
func convertHeading(el *hast.Element) *latex.Macro {
	starred := latex.Bare()
	if slices.Contains(classList(el), starredClass) {
		starred = latex.Bare(latex.Text("*"))
	}

	info := headingRenderInfo
	info.NamedArguments = slices.Clone(headingRenderInfo.NamedArguments)

	return &latex.Macro{
		Name:       sectionMacro,
		RenderInfo: &info,
		Args: []*latex.Argument{
			starred,
			latex.Bare(),
			latex.Bare(),
			latex.Group(flattenText(el.Children)...),
		},
	}
}

// flattenText tokenizes every text descendant in document order.
// Elements are traversed whatever their tag; other nodes are ignored.
func flattenText(children []hast.Node) []latex.Node {
	var out []latex.Node
	for _, child := range children {
		switch n := child.(type) {
		case *hast.Text:
			out = append(out, tokenize(n.Value)...)
		case *hast.Element:
			out = append(out, flattenText(n.Children)...)
		}
	}
	return out
}

// hasClassList reports whether the element's className property is a
// non-empty list or a non-blank string.
func hasClassList(el *hast.Element) bool {
	switch v := el.Properties["className"].(type) {
	case []string:
		return len(v) > 0
	case []any:
		return len(v) > 0
	case string:
		return strings.TrimSpace(v) != ""
	default:
		return false
	}
}

// classList resolves the element's classes. Unexpected shapes yield an
// empty list rather than an error.
func classList(el *hast.Element) []string {
	if !hasClassList(el) {
		return nil
	}

	switch v := el.Properties["className"].(type) {
	case []string:
		return v
	case []any:
		classes := make([]string, len(v))
		for i, c := range v {
			classes[i] = fmt.Sprint(c)
		}
		return classes
	case string:
		return strings.Fields(v)
	default:
		return nil
	}
}
