package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// Options selects the extensions wired into the goldmark converter.
// The zero value yields a plain GFM converter.
type Options struct {
	Footnotes   bool
	Typographer bool
	Emoji       bool

	// Highlighting is the assembled syntax-highlighting extension,
	// or nil when highlighting is disabled.
	Highlighting goldmark.Extender
}

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// GoldmarkConverter converts Markdown to HTML fragments using goldmark.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with the selected
// extensions. Extension registration order is fixed: GFM, footnotes,
// typographer, emoji, highlighting. Footnote rewriting therefore completes
// before any later stage observes document structure, and the highlighter
// resolves language identifiers before code blocks are emitted.
func NewGoldmarkConverter(opts Options) *GoldmarkConverter {
	exts := []goldmark.Extender{
		extension.GFM, // Tables, strikethrough, autolinks, task lists
	}
	if opts.Footnotes {
		exts = append(exts, extension.Footnote) // [^1] footnotes
	}
	if opts.Typographer {
		exts = append(exts, extension.Typographer) // Smart quotes and dashes
	}
	if opts.Emoji {
		exts = append(exts, emoji.Emoji) // :shortcode: emoji
	}
	if opts.Highlighting != nil {
		exts = append(exts, opts.Highlighting)
	}

	md := goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // Generate IDs for headings (required for TOC)
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(), // Self-closing tags
			// Note: WithUnsafe() intentionally NOT used. Raw HTML in blog
			// sources is omitted rather than passed through.
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
