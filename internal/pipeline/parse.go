package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/alnah/go-html2tex/hast"
)

// ErrHTMLParse indicates the HTML parser rejected its input.
var ErrHTMLParse = errors.New("HTML parsing failed")

// ParseHTML parses a complete HTML document into an element tree.
//
// The parser always produces a full document: html, head and body elements
// are synthesized when the source omits them, as browsers do.
func ParseHTML(ctx context.Context, content string) (*hast.Root, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTMLParse, err)
	}

	root := &hast.Root{}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if n := fromHTMLNode(c); n != nil {
			root.Children = append(root.Children, n)
		}
	}
	return root, nil
}

// fromHTMLNode converts one parser node and its subtree.
// Returns nil for node types the element tree has no place for.
func fromHTMLNode(n *html.Node) hast.Node {
	switch n.Type {
	case html.ElementNode:
		el := &hast.Element{
			TagName:    strings.ToLower(n.Data),
			Properties: properties(n.Attr),
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := fromHTMLNode(c); child != nil {
				el.Children = append(el.Children, child)
			}
		}
		return el
	case html.TextNode:
		return &hast.Text{Value: n.Data}
	case html.CommentNode:
		return &hast.Comment{Value: n.Data}
	case html.DoctypeNode:
		return &hast.Doctype{}
	default:
		return nil
	}
}

// properties converts attributes. The class attribute becomes a className
// list; every other attribute keeps its key and string value.
func properties(attrs []html.Attribute) hast.Properties {
	props := make(hast.Properties, len(attrs))
	for _, a := range attrs {
		key := a.Key
		if a.Namespace != "" {
			key = a.Namespace + ":" + a.Key
		}
		if key == "class" {
			props["className"] = strings.Fields(a.Val)
			continue
		}
		props[key] = a.Val
	}
	return props
}
