// Package site implements the static blog host around the rendering
// pipeline: content discovery, front matter, page builds, feeds.
package site

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Options configures a Site build.
type Options struct {
	RootDir     string // project root (content/, templates/, public/ live here)
	OutputDir   string // output tree (default: "build" under RootDir)
	BaseURL     string // absolute site URL for permalinks and feeds
	Title       string // site title for feeds
	Description string // site description for the RSS channel
	Drafts      bool   // include pages marked draft: true

	// Warnf receives per-page warnings during a build. Nil discards them.
	// Per-page failures never abort the build; a single document's issue
	// must not block generation of the rest of the site.
	Warnf func(format string, args ...any)

	// Infof receives per-page progress lines during a build. Nil discards
	// them. May be called from concurrent page builds.
	Infof func(format string, args ...any)
}

// Site holds the discovered content set for one build.
type Site struct {
	opts  Options
	pages []*Page
	posts []*Page
}

// New creates a Site with the given options.
func New(opts Options) *Site {
	if opts.OutputDir == "" {
		opts.OutputDir = filepath.Join(opts.RootDir, "build")
	}
	if opts.Warnf == nil {
		opts.Warnf = func(string, ...any) {}
	}
	if opts.Infof == nil {
		opts.Infof = func(string, ...any) {}
	}
	return &Site{opts: opts}
}

// Pages returns all discovered pages in content order.
func (s *Site) Pages() []*Page {
	return s.pages
}

// Posts returns dated pages, most recent first.
func (s *Site) Posts() []*Page {
	return s.posts
}

// ContentDir returns the content root.
func (s *Site) ContentDir() string {
	return filepath.Join(s.opts.RootDir, "content")
}

// TemplatesDir returns the templates root.
func (s *Site) TemplatesDir() string {
	return filepath.Join(s.opts.RootDir, "templates")
}

// PublicDir returns the static files root.
func (s *Site) PublicDir() string {
	return filepath.Join(s.opts.RootDir, "public")
}

// OutputDir returns the build output root.
func (s *Site) OutputDir() string {
	return s.opts.OutputDir
}

// ReadContent walks the content directory and builds the page set.
// Pages failing front matter parsing are skipped with a warning; posts are
// sorted by publication date, most recent first.
func (s *Site) ReadContent() error {
	contentDir := s.ContentDir()
	s.pages = nil
	s.posts = nil

	err := filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}

		p, perr := NewPageFromFile(path, contentDir, s.opts.BaseURL)
		if perr != nil {
			s.opts.Warnf("skipping %s: %v", path, perr)
			return nil
		}
		if p.Draft && !s.opts.Drafts {
			return nil
		}

		s.pages = append(s.pages, p)
		if p.IsPost() {
			s.posts = append(s.posts, p)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.New("content directory not found: " + contentDir)
		}
		return err
	}

	sort.SliceStable(s.posts, func(i, j int) bool {
		return s.posts[i].DatePublished.After(s.posts[j].DatePublished)
	})

	return nil
}
