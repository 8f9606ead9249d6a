package mdsite

import "fmt"

// TOC list style constants.
const (
	ListOrdered   = "ordered"
	ListUnordered = "unordered"
)

// TOC depth bounds and defaults.
const (
	MinTOCLevel        = 1
	MaxTOCLevel        = 6
	DefaultTOCMinLevel = 1
	DefaultTOCMaxLevel = 4
)

// DefaultTheme is the highlighting theme used when none is configured.
const DefaultTheme = "github"

// TOCPlaceholder is the token that marks where the table of contents is
// emitted. It must appear on its own line in the markdown source.
const TOCPlaceholder = "[[toc]]"

// TOC configures table-of-contents generation.
type TOC struct {
	ListStyle string // "ordered" or "unordered" (default: "unordered")
	MinLevel  int    // Minimum heading level included (default: 1)
	MaxLevel  int    // Maximum heading level included (default: 4)
}

// Validate checks that TOC settings are valid.
// Returns nil if t is nil (nil means TOC disabled).
func (t *TOC) Validate() error {
	if t == nil {
		return nil
	}

	switch t.ListStyle {
	case "", ListOrdered, ListUnordered:
	default:
		return fmt.Errorf("%w: %q (must be ordered or unordered)", ErrInvalidTOCListStyle, t.ListStyle)
	}

	min, max := t.levels()
	if min < MinTOCLevel || min > MaxTOCLevel {
		return fmt.Errorf("%w: min level %d (must be 1-6)", ErrInvalidTOCDepth, min)
	}
	if max < MinTOCLevel || max > MaxTOCLevel {
		return fmt.Errorf("%w: max level %d (must be 1-6)", ErrInvalidTOCDepth, max)
	}
	if min > max {
		return fmt.Errorf("%w: min level %d exceeds max level %d", ErrInvalidTOCDepth, min, max)
	}
	return nil
}

// levels returns the effective level range with defaults applied.
func (t *TOC) levels() (min, max int) {
	min, max = t.MinLevel, t.MaxLevel
	if min == 0 {
		min = DefaultTOCMinLevel
	}
	if max == 0 {
		max = DefaultTOCMaxLevel
	}
	return min, max
}

// ordered reports whether the TOC should render as an ordered list.
func (t *TOC) ordered() bool {
	return t.ListStyle == ListOrdered
}

// Highlight configures syntax highlighting for fenced code blocks.
type Highlight struct {
	Theme      string // Chroma theme name (default: "github")
	GrammarDir string // Directory with custom grammar XML files (empty = embedded only)
}

// theme returns the effective theme name with the default applied.
func (h *Highlight) theme() string {
	if h == nil || h.Theme == "" {
		return DefaultTheme
	}
	return h.Theme
}

// Option configures a Renderer at construction time.
type Option func(*Renderer)

// rendererConfig holds internal configuration for Renderer.
// Immutable after New returns.
type rendererConfig struct {
	footnotes   bool
	typographer bool
	emoji       bool
	toc         *TOC
	highlight   *Highlight
}

// WithFootnotes enables [^1] footnote references and definitions.
func WithFootnotes() Option {
	return func(r *Renderer) {
		r.cfg.footnotes = true
	}
}

// WithTypographer enables smart quotes and dashes.
func WithTypographer() Option {
	return func(r *Renderer) {
		r.cfg.typographer = true
	}
}

// WithEmoji enables :emoji: shortcode substitution.
func WithEmoji() Option {
	return func(r *Renderer) {
		r.cfg.emoji = true
	}
}

// WithTOC enables table-of-contents generation at the [[toc]] placeholder.
func WithTOC(t TOC) Option {
	return func(r *Renderer) {
		r.cfg.toc = &t
	}
}

// WithHighlighting enables syntax highlighting for fenced code blocks.
func WithHighlighting(h Highlight) Option {
	return func(r *Renderer) {
		r.cfg.highlight = &h
	}
}
