package assets

import (
	"embed"
	"io/fs"
	"path"
	"strings"
)

// embeddedFS holds the built-in grammar definitions.
//
//go:embed grammars/*.xml
var embeddedFS embed.FS

// embeddedGrammarDir is the root of grammar files inside embeddedFS.
const embeddedGrammarDir = "grammars"

// embeddedSources returns one GrammarSource per embedded definition.
func embeddedSources() ([]GrammarSource, error) {
	entries, err := fs.ReadDir(embeddedFS, embeddedGrammarDir)
	if err != nil {
		return nil, err
	}

	sources := make([]GrammarSource, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".xml") {
			continue
		}
		sources = append(sources, GrammarSource{
			Name: strings.TrimSuffix(e.Name(), ".xml"),
			FS:   embeddedFS,
			Path: path.Join(embeddedGrammarDir, e.Name()),
		})
	}
	return sources, nil
}
