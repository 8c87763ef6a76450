package latex

import (
	"fmt"
	"io"
	"strings"
)

// specials escapes characters that LaTeX treats as syntax.
var specials = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// Render writes node as LaTeX source to w.
//
// Macros placed directly under the root, and macros whose RenderInfo asks
// for it, are written on their own line. Parbreaks become a blank line and
// whitespace a single space. String content is escaped.
func Render(w io.Writer, node Node) error {
	r := &renderer{w: w, lineStart: true}
	r.render(node, node)
	if r.err == nil && !r.lineStart {
		r.write("\n")
	}
	return r.err
}

// Sprint renders node and returns the result.
func Sprint(node Node) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, node); err != nil {
		return "", err
	}
	return sb.String(), nil
}

type renderer struct {
	w         io.Writer
	lineStart bool
	err       error
}

func (r *renderer) write(s string) {
	if r.err != nil || s == "" {
		return
	}
	if _, err := io.WriteString(r.w, s); err != nil {
		r.err = fmt.Errorf("latex: rendering: %w", err)
		return
	}
	r.lineStart = strings.HasSuffix(s, "\n")
}

func (r *renderer) newline() {
	if !r.lineStart {
		r.write("\n")
	}
}

func (r *renderer) render(node, parent Node) {
	switch n := node.(type) {
	case *Root:
		for _, child := range n.Content {
			r.render(child, n)
		}
	case *Macro:
		_, topLevel := parent.(*Root)
		breakAround := topLevel || (n.RenderInfo != nil && n.RenderInfo.BreakAround)
		if breakAround {
			r.newline()
		}
		r.write(`\` + n.Name)
		for _, arg := range n.Args {
			r.render(arg, n)
		}
		if breakAround {
			r.write("\n")
		}
	case *Argument:
		r.write(n.OpenMark)
		for _, child := range n.Content {
			r.render(child, n)
		}
		r.write(n.CloseMark)
	case *String:
		r.write(specials.Replace(n.Content))
	case *Whitespace:
		if !r.lineStart {
			r.write(" ")
		}
	case *Parbreak:
		r.newline()
		r.write("\n")
	}
}
