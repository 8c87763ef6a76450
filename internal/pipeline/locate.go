package pipeline

import "github.com/alnah/go-html2tex/hast"

// findBody returns the body element of the first root-level html element.
// Returns nil when either element is missing.
func findBody(root *hast.Root) *hast.Element {
	return findSection(root, "body")
}

// findHead returns the head element of the first root-level html element.
// Returns nil when either element is missing.
func findHead(root *hast.Root) *hast.Element {
	return findSection(root, "head")
}

// findSection searches exactly two levels deep: root -> html -> tagName.
func findSection(root *hast.Root, tagName string) *hast.Element {
	if root == nil {
		return nil
	}
	html := hast.ChildElement(root.Children, "html")
	if html == nil {
		return nil
	}
	return hast.ChildElement(html.Children, tagName)
}
