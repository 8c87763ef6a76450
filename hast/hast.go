// Package hast models a parsed HTML document as a tree of root, element,
// text, comment and doctype nodes.
//
// The shape follows the hast format used by the unified ecosystem, so trees
// saved with MarshalJSON can be exchanged with tools that speak hast.
package hast

// Node is implemented by every node kind in the tree.
// The set is closed: only the types in this package satisfy it.
type Node interface {
	hastNode()
}

// Properties holds element attributes.
// A nil map means the element carries no attribute map at all.
type Properties map[string]any

// Root is the top of a document tree.
type Root struct {
	Children []Node
}

// Element is an HTML element with a lower-case tag name.
type Element struct {
	TagName    string
	Properties Properties
	Children   []Node
}

// Text is a run of character data.
type Text struct {
	Value string
}

// Comment is an HTML comment.
type Comment struct {
	Value string
}

// Doctype is the document type declaration.
type Doctype struct{}

func (*Root) hastNode()    {}
func (*Element) hastNode() {}
func (*Text) hastNode()    {}
func (*Comment) hastNode() {}
func (*Doctype) hastNode() {}

// Property returns the named property as a string.
// ok is false when the property is missing or not a string.
func (e *Element) Property(name string) (value string, ok bool) {
	if e == nil || e.Properties == nil {
		return "", false
	}
	value, ok = e.Properties[name].(string)
	return value, ok
}

// IsElement reports whether n is an element with the given tag name.
func IsElement(n Node, tagName string) bool {
	el, ok := n.(*Element)
	return ok && el.TagName == tagName
}

// ChildElement returns the first direct child element of children with the
// given tag name, or nil.
func ChildElement(children []Node, tagName string) *Element {
	for _, child := range children {
		if el, ok := child.(*Element); ok && el.TagName == tagName {
			return el
		}
	}
	return nil
}
