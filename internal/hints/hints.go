// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when one was searched, the user config path to create.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	userDir := filepath.Join(".config", "go-html2tex")
	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), filepath.ToSlash(userDir)) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForNoInput returns hints when no input was given and no default exists.
func ForNoInput() string {
	return format("pass a file or directory, or set input.defaultDir in the config")
}

// ForUnsupportedInput lists the accepted input extensions.
func ForUnsupportedInput(accepted []string) string {
	if len(accepted) == 0 {
		return ""
	}
	return format("accepted: " + strings.Join(accepted, ", "))
}

// ForUnknownClass lists the well-known document classes.
// Unknown classes still convert; the hint only flags likely typos.
func ForUnknownClass(known []string) string {
	if len(known) == 0 {
		return ""
	}
	return format("known classes: " + strings.Join(known, ", "))
}

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("for large documents, use --timeout flag")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
