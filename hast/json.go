package hast

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrUnknownNodeType is returned by Decode for a node whose "type" field is
// not one of root, element, text, comment or doctype.
var ErrUnknownNodeType = errors.New("hast: unknown node type")

// wireNode is the JSON shape shared by every node kind.
type wireNode struct {
	Type       string            `json:"type"`
	TagName    string            `json:"tagName,omitempty"`
	Properties Properties        `json:"properties,omitempty"`
	Children   []json.RawMessage `json:"children,omitempty"`
	Value      *string           `json:"value,omitempty"`
}

func (r *Root) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string `json:"type"`
		Children []Node `json:"children"`
	}{"root", nonNil(r.Children)})
}

func (e *Element) MarshalJSON() ([]byte, error) {
	props := e.Properties
	if props == nil {
		props = Properties{}
	}
	return json.Marshal(struct {
		Type       string     `json:"type"`
		TagName    string     `json:"tagName"`
		Properties Properties `json:"properties"`
		Children   []Node     `json:"children"`
	}{"element", e.TagName, props, nonNil(e.Children)})
}

func (t *Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	}{"text", t.Value})
}

func (c *Comment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	}{"comment", c.Value})
}

func (*Doctype) MarshalJSON() ([]byte, error) {
	return []byte(`{"type":"doctype"}`), nil
}

func nonNil(children []Node) []Node {
	if children == nil {
		return []Node{}
	}
	return children
}

// Decode reads a hast document in JSON form.
// The top-level value must be a root node.
func Decode(r io.Reader) (*Root, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("hast: decoding: %w", err)
	}

	node, err := decodeNode(raw)
	if err != nil {
		return nil, err
	}

	root, ok := node.(*Root)
	if !ok {
		return nil, fmt.Errorf("%w: top-level node must be root, got %T", ErrUnknownNodeType, node)
	}
	return root, nil
}

func decodeNode(raw json.RawMessage) (Node, error) {
	var w wireNode
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("hast: decoding node: %w", err)
	}

	switch w.Type {
	case "root":
		children, err := decodeChildren(w.Children)
		if err != nil {
			return nil, err
		}
		return &Root{Children: children}, nil
	case "element":
		children, err := decodeChildren(w.Children)
		if err != nil {
			return nil, err
		}
		return &Element{TagName: w.TagName, Properties: w.Properties, Children: children}, nil
	case "text":
		return &Text{Value: deref(w.Value)}, nil
	case "comment":
		return &Comment{Value: deref(w.Value)}, nil
	case "doctype":
		return &Doctype{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNodeType, w.Type)
	}
}

func decodeChildren(raws []json.RawMessage) ([]Node, error) {
	if len(raws) == 0 {
		return nil, nil
	}
	children := make([]Node, 0, len(raws))
	for _, raw := range raws {
		child, err := decodeNode(raw)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
