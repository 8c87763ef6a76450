package pipeline

import "github.com/alnah/go-html2tex/hast"

// ---------------------------------------------------------------------------
// Element tree builders shared by the package tests
// ---------------------------------------------------------------------------

func el(tag string, props hast.Properties, children ...hast.Node) *hast.Element {
	return &hast.Element{TagName: tag, Properties: props, Children: children}
}

func txt(s string) *hast.Text { return &hast.Text{Value: s} }

func doc(head, body *hast.Element) *hast.Root {
	html := el("html", hast.Properties{})
	if head != nil {
		html.Children = append(html.Children, head)
	}
	if body != nil {
		html.Children = append(html.Children, body)
	}
	return &hast.Root{Children: []hast.Node{&hast.Doctype{}, html}}
}

func body(children ...hast.Node) *hast.Element {
	return el("body", hast.Properties{}, children...)
}

func head(children ...hast.Node) *hast.Element {
	return el("head", hast.Properties{}, children...)
}

func meta(name, content string) *hast.Element {
	return el("meta", hast.Properties{"name": name, "content": content})
}

func p(children ...hast.Node) *hast.Element {
	return el("p", hast.Properties{}, children...)
}
