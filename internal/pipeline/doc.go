// Package pipeline implements the HTML-to-LaTeX conversion stages.
//
// This package handles:
//   - Markdown to HTML conversion via Goldmark (optional front end)
//   - HTML parsing into a hast element tree via golang.org/x/net/html
//   - Element tree to LaTeX tree conversion (ToLatex)
//
// ToLatex is pure: it performs no I/O, keeps no state between calls and
// never fails. Missing head or body elements degrade to an empty result.
// Rendering the LaTeX tree to text is handled by the latex package, and
// persisting intermediate trees by the root html2tex package.
package pipeline
