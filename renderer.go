package mdsite

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/highlight"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.TOCInjector          = (*pipeline.TOCInjection)(nil)
)

// Renderer transforms markdown source into HTML fragments, applying the
// configured extensions in a fixed order.
//
// A Renderer has two lifecycle states: configured (after New) and ready
// (after Init). Render calls before Init return ErrNotInitialized. Once
// ready, a Renderer is immutable and safe for concurrent use.
type Renderer struct {
	cfg          rendererConfig
	preprocessor pipeline.MarkdownPreprocessor
	converter    pipeline.HTMLConverter
	tocInjector  pipeline.TOCInjector
	stylesheet   string
	ready        atomic.Bool
}

// New creates a Renderer with the given configuration.
// The configuration is immutable after New returns; call Init before Render.
// Returns error if the configuration is invalid.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		preprocessor: &pipeline.CommonMarkPreprocessor{},
	}

	for _, opt := range opts {
		opt(r)
	}

	if err := r.cfg.toc.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// Init performs the one-time setup phase: loading the highlighting theme,
// registering custom grammars, and building the markdown converter.
// It must complete before the first Render call and runs exactly once;
// calling Init on a ready Renderer returns ErrAlreadyInitialized.
func (r *Renderer) Init(ctx context.Context) error {
	if r.ready.Load() {
		return ErrAlreadyInitialized
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	popts := pipeline.Options{
		Footnotes:   r.cfg.footnotes,
		Typographer: r.cfg.typographer,
		Emoji:       r.cfg.emoji,
	}

	if r.cfg.highlight != nil {
		resolver, err := assets.NewGrammarResolver(r.cfg.highlight.GrammarDir)
		if err != nil {
			return convertInitError(err)
		}

		engine, err := highlight.NewEngine(highlight.Config{
			Theme:    r.cfg.highlight.theme(),
			Grammars: resolver,
		})
		if err != nil {
			return convertInitError(err)
		}

		popts.Highlighting = engine.Extension()
		r.stylesheet = engine.Stylesheet()
	}

	r.converter = pipeline.NewGoldmarkConverter(popts)

	if r.cfg.toc != nil {
		min, max := r.cfg.toc.levels()
		r.tocInjector = pipeline.NewTOCInjection(pipeline.TOCConfig{
			Ordered:  r.cfg.toc.ordered(),
			MinLevel: min,
			MaxLevel: max,
		})
	}

	r.ready.Store(true)
	return nil
}

// Render converts markdown source to an HTML fragment.
// The context is used for cancellation. Returns ErrNotInitialized if Init
// has not completed, so a render can never silently skip highlighting.
func (r *Renderer) Render(ctx context.Context, source string) (string, error) {
	if !r.ready.Load() {
		return "", ErrNotInitialized
	}
	if source == "" {
		return "", ErrEmptyMarkdown
	}

	content := r.preprocessor.PreprocessMarkdown(ctx, source)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	htmlContent, err := r.converter.ToHTML(ctx, content)
	if err != nil {
		if errors.Is(err, pipeline.ErrHTMLConversion) {
			return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
		}
		return "", fmt.Errorf("converting to HTML: %w", err)
	}

	if r.tocInjector != nil {
		htmlContent, err = r.tocInjector.InjectTOC(ctx, htmlContent)
		if err != nil {
			return "", fmt.Errorf("injecting TOC: %w", err)
		}
	}

	return htmlContent, nil
}

// Stylesheet returns the CSS for the configured highlighting theme.
// Returns ErrNotInitialized before Init completes. The result is empty
// when highlighting is not configured.
func (r *Renderer) Stylesheet() (string, error) {
	if !r.ready.Load() {
		return "", ErrNotInitialized
	}
	return r.stylesheet, nil
}

// Ready reports whether Init has completed.
func (r *Renderer) Ready() bool {
	return r.ready.Load()
}

// convertInitError maps internal initialization errors to public sentinels.
// The original message is preserved; errors.Is matches the public sentinel.
func convertInitError(err error) error {
	switch {
	case errors.Is(err, highlight.ErrUnknownTheme):
		return fmt.Errorf("%w: %v", ErrThemeNotFound, err)
	case errors.Is(err, highlight.ErrGrammarParse):
		return fmt.Errorf("%w: %v", ErrGrammarLoad, err)
	case errors.Is(err, assets.ErrInvalidBasePath):
		return fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	case errors.Is(err, assets.ErrGrammarNotFound):
		return fmt.Errorf("%w: %v", ErrGrammarNotFound, err)
	default:
		return err
	}
}
