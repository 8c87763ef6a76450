package latex

import "encoding/json"

func (r *Root) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string `json:"type"`
		Content []Node `json:"content"`
	}{"root", nonNil(r.Content)})
}

func (m *Macro) MarshalJSON() ([]byte, error) {
	args := m.Args
	if args == nil {
		args = []*Argument{}
	}
	return json.Marshal(struct {
		Type       string      `json:"type"`
		Content    string      `json:"content"`
		RenderInfo *RenderInfo `json:"_renderInfo,omitempty"`
		Args       []*Argument `json:"args"`
	}{"macro", m.Name, m.RenderInfo, args})
}

func (ri *RenderInfo) MarshalJSON() ([]byte, error) {
	// Unnamed slots are null, as unified-latex expects.
	var names []*string
	if ri.NamedArguments != nil {
		names = make([]*string, len(ri.NamedArguments))
		for i := range ri.NamedArguments {
			if ri.NamedArguments[i] != "" {
				names[i] = &ri.NamedArguments[i]
			}
		}
	}
	return json.Marshal(struct {
		BreakAround    bool      `json:"breakAround,omitempty"`
		NamedArguments []*string `json:"namedArguments,omitempty"`
	}{ri.BreakAround, names})
}

func (a *Argument) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      string `json:"type"`
		Content   []Node `json:"content"`
		OpenMark  string `json:"openMark"`
		CloseMark string `json:"closeMark"`
	}{"argument", nonNil(a.Content), a.OpenMark, a.CloseMark})
}

func (s *String) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string `json:"type"`
		Content string `json:"content"`
	}{"string", s.Content})
}

func (*Whitespace) MarshalJSON() ([]byte, error) {
	return []byte(`{"type":"whitespace"}`), nil
}

func (*Parbreak) MarshalJSON() ([]byte, error) {
	return []byte(`{"type":"parbreak"}`), nil
}

func nonNil(content []Node) []Node {
	if content == nil {
		return []Node{}
	}
	return content
}
