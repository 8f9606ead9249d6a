package site

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sync"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/fileutil"
)

// Build renders every page through the pool, executes layouts, and writes
// the output tree: pages, static files, RSS feed, and sitemap.
// Page-level failures are warned and skipped; only infrastructure failures
// (templates, output directory, feeds) abort the build.
func (s *Site) Build(ctx context.Context, pool *mdsite.RendererPool) error {
	templates, err := template.ParseFS(os.DirFS(s.TemplatesDir()), "*.html")
	if err != nil {
		return fmt.Errorf("reading templates: %w", err)
	}

	if err := s.ReadContent(); err != nil {
		return err
	}

	// Force one renderer through initialization before any output is
	// written. Configuration mistakes (unknown theme, bad grammar dir) are
	// fatal to the whole build; only per-page failures degrade.
	r, err := pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}
	pool.Release(r)

	if err := os.MkdirAll(s.opts.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var wg sync.WaitGroup
	wg.Add(len(s.pages))
	for _, p := range s.pages {
		go func(p *Page) {
			defer wg.Done()

			if err := s.buildPage(ctx, pool, templates, p); err != nil {
				s.opts.Warnf("building %s: %v", p.FilePath, err)
			}
		}(p)
	}
	wg.Wait()

	if err := s.writeFeed(); err != nil {
		return fmt.Errorf("writing RSS feed: %w", err)
	}
	if err := s.writeSitemap(); err != nil {
		return fmt.Errorf("writing sitemap: %w", err)
	}

	if fileutil.DirExists(s.PublicDir()) {
		if err := fileutil.CopyDir(s.PublicDir(), s.opts.OutputDir); err != nil {
			return fmt.Errorf("copying static files: %w", err)
		}
	}

	return nil
}

// buildPage renders one page and executes its layout template.
func (s *Site) buildPage(ctx context.Context, pool *mdsite.RendererPool, templates *template.Template, p *Page) error {
	r, err := pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer pool.Release(r)

	content, err := r.Render(ctx, p.Body())
	if err != nil {
		return err
	}

	stylesheet, err := r.Stylesheet()
	if err != nil {
		return err
	}

	tmpl := templates.Lookup(p.Template)
	if tmpl == nil {
		return fmt.Errorf("unknown template %q", p.Template)
	}

	dest := filepath.Join(s.opts.OutputDir, filepath.FromSlash(p.URLPath), "index.html")
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	out, err := os.Create(dest) // #nosec G304 -- destination derives from the output dir
	if err != nil {
		return err
	}
	defer out.Close()

	// Content is renderer output (raw HTML in sources is omitted) and
	// Stylesheet is generated theme CSS, so both are safe to mark trusted.
	err = tmpl.Execute(out, map[string]any{
		"Page":       p,
		"Posts":      s.posts,
		"Pages":      s.pages,
		"SiteURL":    s.opts.BaseURL,
		"SiteTitle":  s.opts.Title,
		"Title":      p.Title,
		"Content":    template.HTML(content),   // #nosec G203
		"Stylesheet": template.CSS(stylesheet), // #nosec G203
	})
	if err != nil {
		return err
	}

	s.opts.Infof("rendered %s -> %s", p.FilePath, p.URLPath)
	return nil
}
