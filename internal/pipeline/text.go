package pipeline

import (
	"regexp"
	"strings"

	"github.com/alnah/go-html2tex/latex"
)

// space covers ASCII and Unicode whitespace, including no-break space and
// the byte order mark. U+0085 is not whitespace here.
const space = `[\s\v\p{Z}\x{FEFF}]`

var (
	// tokenBoundary matches the separators kept as their own fragments:
	// whitespace runs, an apostrophe, and single sentence punctuation.
	tokenBoundary = regexp.MustCompile(space + `+|'|[.,!?;:]`)

	whitespaceRun = regexp.MustCompile(`^` + space + `+$`)
)

// tokenize splits text into string and whitespace nodes.
// Whitespace-only text yields nothing. The typographic apostrophe is
// normalized to ' and whitespace runs collapse to a single marker.
func tokenize(value string) []latex.Node {
	if value == "" || whitespaceRun.MatchString(value) {
		return nil
	}

	normalized := strings.ReplaceAll(value, "’", "'")

	var nodes []latex.Node
	emit := func(part string) {
		switch {
		case part == "":
		case whitespaceRun.MatchString(part):
			nodes = append(nodes, &latex.Whitespace{})
		default:
			nodes = append(nodes, latex.Text(part))
		}
	}

	last := 0
	for _, loc := range tokenBoundary.FindAllStringIndex(normalized, -1) {
		emit(normalized[last:loc[0]])
		emit(normalized[loc[0]:loc[1]])
		last = loc[1]
	}
	emit(normalized[last:])

	return nodes
}
