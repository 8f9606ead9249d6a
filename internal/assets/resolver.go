package assets

import (
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// GrammarSource identifies one grammar definition file.
type GrammarSource struct {
	Name string // identifier (file name without .xml)
	FS   fs.FS  // filesystem holding the definition
	Path string // path of the XML file within FS
}

// GrammarResolver resolves grammar definitions from a custom directory with
// fallback to the embedded defaults. Custom definitions shadow embedded ones
// with the same name.
type GrammarResolver struct {
	basePath string
}

// NewGrammarResolver creates a resolver for the given base directory.
// If basePath is empty, only embedded grammars are resolved.
// Returns ErrInvalidBasePath if basePath is set but not a readable directory.
func NewGrammarResolver(basePath string) (*GrammarResolver, error) {
	if basePath != "" {
		info, err := os.Stat(basePath)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidBasePath, basePath, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidBasePath, basePath)
		}
	}
	return &GrammarResolver{basePath: basePath}, nil
}

// Sources returns all resolvable grammar definitions, customs first, sorted
// by name within each group. Embedded grammars shadowed by a custom file of
// the same name are omitted.
func (r *GrammarResolver) Sources() ([]GrammarSource, error) {
	embedded, err := embeddedSources()
	if err != nil {
		return nil, err
	}

	if r.basePath == "" {
		return embedded, nil
	}

	customFS := os.DirFS(r.basePath)
	entries, err := fs.ReadDir(customFS, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidBasePath, r.basePath, err)
	}

	var customs []GrammarSource
	seen := make(map[string]bool)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".xml") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".xml")
		customs = append(customs, GrammarSource{Name: name, FS: customFS, Path: e.Name()})
		seen[name] = true
	}
	sort.Slice(customs, func(i, j int) bool { return customs[i].Name < customs[j].Name })

	sources := customs
	for _, s := range embedded {
		if !seen[s.Name] {
			sources = append(sources, s)
		}
	}
	return sources, nil
}

// Lookup returns the grammar definition with the given name.
// Returns ErrInvalidGrammarName for names containing path separators and
// ErrGrammarNotFound when no definition matches.
func (r *GrammarResolver) Lookup(name string) (GrammarSource, error) {
	if name == "" || strings.ContainsAny(name, "/\\") {
		return GrammarSource{}, fmt.Errorf("%w: %q", ErrInvalidGrammarName, name)
	}

	sources, err := r.Sources()
	if err != nil {
		return GrammarSource{}, err
	}
	for _, s := range sources {
		if s.Name == name {
			return s, nil
		}
	}
	return GrammarSource{}, fmt.Errorf("%w: %q", ErrGrammarNotFound, name)
}
