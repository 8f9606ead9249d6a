// Package mdsite renders markdown documents to HTML fragments through a
// configurable extension pipeline, and powers the mdsite static blog builder.
//
// # Quick Start
//
// Create a renderer, initialize it once, then render documents:
//
//	r, err := mdsite.New(
//	    mdsite.WithFootnotes(),
//	    mdsite.WithTOC(mdsite.TOC{ListStyle: mdsite.ListUnordered, MaxLevel: 4}),
//	    mdsite.WithHighlighting(mdsite.Highlight{Theme: "github"}),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := r.Init(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	html, err := r.Render(ctx, "# Hello\n\nWorld")
//
// # Lifecycle
//
// A Renderer is built in two phases. New registers the configuration, which
// is immutable afterwards. Init performs the one-time setup that may touch
// the filesystem: resolving the highlighting theme, loading grammar
// definitions, and assembling the converter. Render calls made before Init
// completes fail with ErrNotInitialized rather than silently rendering
// without highlighting.
//
// Once initialized, Render is safe for concurrent use: every call reads
// only the immutable configuration and allocates its own output buffer.
//
// # Extensions
//
// Extension selection is a construction-time decision. The pipeline applies
// extensions in a fixed order: GFM, footnotes, typographer, emoji, syntax
// highlighting, then table-of-contents substitution at the [[toc]]
// placeholder. A fenced code block with an unrecognized language tag
// degrades to plain preformatted text; the rest of the document renders
// normally.
//
// # Custom Grammars
//
// The highlighter ships an embedded JSONPath grammar and accepts additional
// Chroma XML grammar definitions from a directory:
//
//	mdsite.WithHighlighting(mdsite.Highlight{
//	    Theme:      "monokai",
//	    GrammarDir: "grammars",
//	})
//
// Custom definitions take precedence over embedded ones with the same name.
//
// # Parallel Rendering
//
// For batch builds, RendererPool manages a set of identically configured
// renderers:
//
//	pool := mdsite.NewRendererPool(4, opts...)
//	defer pool.Close()
//
//	r, err := pool.Acquire(ctx)
//	defer pool.Release(r)
package mdsite
