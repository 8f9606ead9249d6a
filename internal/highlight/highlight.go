// Package highlight assembles the syntax-highlighting extension: theme
// resolution, custom grammar registration, and stylesheet generation.
package highlight

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"

	"github.com/alnah/go-mdsite/internal/assets"
)

// Sentinel errors for highlighter initialization.
var (
	ErrUnknownTheme = errors.New("highlight: unknown theme")
	ErrGrammarParse = errors.New("highlight: grammar definition invalid")
	ErrNilGrammars  = errors.New("highlight: nil grammar resolver")
)

// Config holds highlighter construction parameters.
type Config struct {
	Theme    string                  // Chroma style name, must exist
	Grammars *assets.GrammarResolver // grammar definitions to register
}

// Engine is an initialized highlighter: an immutable handle over the
// resolved theme and registered grammars. Construction is the expensive,
// one-time phase; the extension and stylesheet accessors are cheap.
type Engine struct {
	style      *chroma.Style
	extension  goldmark.Extender
	stylesheet string
}

// NewEngine resolves the theme, registers grammar definitions with the
// Chroma lexer registry, and builds the goldmark extension.
//
// Unknown themes fail construction: the alternative (Chroma's silent
// fallback style) would violate the contract that output matches the
// configured theme. Grammar files that do not parse also fail construction.
// Unrecognized language tags at render time are NOT errors; those blocks
// degrade to plain preformatted text because language guessing is disabled.
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.Grammars == nil {
		return nil, ErrNilGrammars
	}

	style, ok := styles.Registry[cfg.Theme]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, cfg.Theme)
	}

	if err := registerGrammars(cfg.Grammars); err != nil {
		return nil, err
	}

	ext := highlighting.NewHighlighting(
		highlighting.WithCustomStyle(style),
		highlighting.WithFormatOptions(
			chromahtml.WithClasses(true), // CSS classes for deterministic markup and external stylesheet control
		),
	)

	css, err := stylesheetFor(style)
	if err != nil {
		return nil, err
	}

	return &Engine{style: style, extension: ext, stylesheet: css}, nil
}

// Extension returns the goldmark extension wired to the engine's theme.
func (e *Engine) Extension() goldmark.Extender {
	return e.extension
}

// Stylesheet returns the CSS rules for the engine's theme in classes mode.
func (e *Engine) Stylesheet() string {
	return e.stylesheet
}

// Style returns the resolved Chroma style.
func (e *Engine) Style() *chroma.Style {
	return e.style
}

// registryMu serializes access to Chroma's global lexer registry, which has
// no synchronization of its own. Pool renderers initialize concurrently.
var registryMu sync.Mutex

// registerGrammars loads each grammar definition and adds it to the global
// Chroma registry. A name already present in the registry is skipped, so
// repeated initialization (e.g., a renderer pool) registers each grammar
// once and built-in languages are never shadowed accidentally.
func registerGrammars(resolver *assets.GrammarResolver) error {
	sources, err := resolver.Sources()
	if err != nil {
		return err
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	for _, src := range sources {
		lexer, err := chroma.NewXMLLexer(src.FS, src.Path)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrGrammarParse, src.Name, err)
		}
		if lexers.Get(lexer.Config().Name) != nil {
			continue
		}
		lexers.Register(lexer)
	}
	return nil
}

// stylesheetFor renders the CSS for a style using the HTML formatter in
// classes mode, matching the markup emitted for highlighted code blocks.
func stylesheetFor(style *chroma.Style) (string, error) {
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	var buf strings.Builder
	if err := formatter.WriteCSS(&buf, style); err != nil {
		return "", fmt.Errorf("writing theme stylesheet: %w", err)
	}
	return buf.String(), nil
}
