// Package latex models LaTeX source as a tree of macros, arguments, strings
// and layout markers, and renders that tree back to LaTeX text.
//
// The node kinds mirror the unified-latex AST so trees can be saved as JSON
// and read by other unified-latex tooling.
package latex

// Node is implemented by every node kind in the tree.
// The set is closed: only the types in this package satisfy it.
type Node interface {
	latexNode()
}

// Root is the top of a LaTeX document tree.
type Root struct {
	Content []Node
}

// Macro is a control sequence such as \section or \begin.
// Args are fixed at construction; their count and order carry meaning.
type Macro struct {
	Name       string
	Args       []*Argument
	RenderInfo *RenderInfo
}

// RenderInfo carries hints for renderers and other downstream tooling.
type RenderInfo struct {
	// BreakAround forces a line break before and after the macro.
	BreakAround bool
	// NamedArguments labels each argument slot. An empty string marks an
	// unnamed slot.
	NamedArguments []string
}

// Argument is one macro argument with its delimiters.
// Empty marks mean the argument has no visible delimiter.
type Argument struct {
	OpenMark  string
	CloseMark string
	Content   []Node
}

// String is a literal text fragment.
type String struct {
	Content string
}

// Whitespace marks an inter-word space.
type Whitespace struct{}

// Parbreak marks a paragraph boundary.
type Parbreak struct{}

func (*Root) latexNode()       {}
func (*Macro) latexNode()      {}
func (*Argument) latexNode()   {}
func (*String) latexNode()     {}
func (*Whitespace) latexNode() {}
func (*Parbreak) latexNode()   {}

// Group returns a brace-delimited argument.
func Group(content ...Node) *Argument {
	return &Argument{OpenMark: "{", CloseMark: "}", Content: content}
}

// Bare returns an argument with no visible delimiters.
func Bare(content ...Node) *Argument {
	return &Argument{Content: content}
}

// Text returns a string node.
func Text(s string) *String {
	return &String{Content: s}
}

// NewMacro returns a macro with the given name and arguments.
func NewMacro(name string, args ...*Argument) *Macro {
	return &Macro{Name: name, Args: args}
}

// Environment returns the \begin{name} and \end{name} macros.
func Environment(name string) (begin, end *Macro) {
	return NewMacro("begin", Group(Text(name))), NewMacro("end", Group(Text(name)))
}

// IsBegin reports whether n is \begin{name}.
func IsBegin(n Node, name string) bool {
	m, ok := n.(*Macro)
	if !ok || m.Name != "begin" || len(m.Args) == 0 {
		return false
	}
	content := m.Args[0].Content
	if len(content) != 1 {
		return false
	}
	s, ok := content[0].(*String)
	return ok && s.Content == name
}
