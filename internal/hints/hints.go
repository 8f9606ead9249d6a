// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/mdsite/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/site.yaml"

	// Find a user config path (contains .config/mdsite) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/mdsite") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForUnknownTheme returns a hint listing how to discover valid theme names.
func ForUnknownTheme() string {
	return format("theme names follow the Chroma style gallery (e.g. github, monokai, dracula)")
}

// ForGrammarDir returns a hint for grammar directory errors.
func ForGrammarDir() string {
	return format("the grammar directory must contain Chroma XML lexer files (*.xml)")
}

// format renders a single hint line.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
