package site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/alnah/go-mdsite/internal/dateutil"
)

// Page is one content file: front matter metadata plus the markdown body
// handed to the renderer at build time.
type Page struct {
	Title         string
	Summary       string
	Template      string
	Tags          []string
	Draft         bool
	DatePublished time.Time
	DateModified  time.Time
	URLPath       string
	Permalink     string
	FilePath      string

	body []byte
}

// pageMeta is the YAML front matter envelope.
type pageMeta struct {
	Title    string   `yaml:"title"`
	Summary  string   `yaml:"summary"`
	Template string   `yaml:"template"`
	Tags     []string `yaml:"tags"`
	Date     string   `yaml:"date"`
	Draft    bool     `yaml:"draft"`
}

// NewPageFromFile reads a markdown file and builds a Page.
// The URL path derives from the file path relative to contentDir, with the
// date prefix stripped; the publication date comes from front matter when
// present, else from the filename prefix.
func NewPageFromFile(path, contentDir, baseURL string) (*Page, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	source, err := os.ReadFile(path) // #nosec G304 -- content paths come from a directory walk
	if err != nil {
		return nil, err
	}

	var meta pageMeta
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, fmt.Errorf("parsing front matter of %s: %w", path, err)
	}

	p := &Page{
		Title:        meta.Title,
		Summary:      meta.Summary,
		Template:     meta.Template,
		Tags:         meta.Tags,
		Draft:        meta.Draft,
		DateModified: info.ModTime(),
		FilePath:     path,
		body:         body,
	}
	if p.Template == "" {
		p.Template = "default.html"
	}

	if t, ok := dateutil.ParseFlexible(meta.Date); ok {
		p.DatePublished = t
	} else {
		p.DatePublished = dateutil.FromFilename(path)
	}

	p.URLPath = urlPath(path, contentDir)
	p.Permalink = strings.TrimSuffix(baseURL, "/") + p.URLPath

	return p, nil
}

// Body returns the markdown source without front matter.
func (p *Page) Body() string {
	return string(p.body)
}

// IsPost reports whether the page is a dated blog post.
func (p *Page) IsPost() bool {
	return !p.DatePublished.IsZero()
}

// urlPath converts a content file path to its output URL path.
// "content/2024-03-01-json-semantics.md" -> "/json-semantics/"
// "content/about.md" -> "/about/"
// "content/index.md" -> "/"
func urlPath(path, contentDir string) string {
	rel, err := filepath.Rel(contentDir, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	rel = filepath.ToSlash(dateutil.StripDatePrefix(rel))
	rel = strings.TrimSuffix(rel, ".md")
	rel = strings.TrimSuffix(rel, "index")
	rel = strings.Trim(rel, "/")

	if rel == "" {
		return "/"
	}
	return "/" + rel + "/"
}
