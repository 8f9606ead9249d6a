package pipeline

import (
	"context"
	"html"
	"regexp"
	"strconv"
	"strings"
)

// placeholderPattern matches the [[toc]] token rendered by goldmark as a
// standalone paragraph.
var placeholderPattern = regexp.MustCompile(`(?i)<p>\s*\[\[toc\]\]\s*</p>`)

// headingPattern matches h1-h6 tags with an id attribute.
// Captures: 1=level, 2=id, 3=inner HTML (may contain inline tags)
var headingPattern = regexp.MustCompile(`(?is)<h([1-6])[^>]*\bid="([^"]*)"[^>]*>(.*?)</h[1-6]>`)

// htmlTagPattern matches HTML tags for stripping from heading text.
var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// TOCConfig controls table-of-contents generation.
type TOCConfig struct {
	Ordered  bool // emit <ol> instead of <ul>
	MinLevel int  // minimum heading level included (1-6)
	MaxLevel int  // maximum heading level included (1-6)
}

// TOCInjector defines the contract for TOC substitution in HTML.
type TOCInjector interface {
	InjectTOC(ctx context.Context, htmlContent string) (string, error)
}

// headingInfo represents an extracted heading from HTML.
type headingInfo struct {
	Level int    // 1-6
	ID    string // anchor ID
	Text  string // heading text content
}

// stripHTMLTags removes HTML tags from a string, decodes HTML entities,
// and trims whitespace. Decoding entities is essential to avoid double-encoding
// when the text is escaped again for the generated list.
func stripHTMLTags(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.TrimSpace(s)
}

// extractHeadings parses HTML and returns headings between minLevel and
// maxLevel in document order. Headings without IDs are skipped.
func extractHeadings(htmlContent string, minLevel, maxLevel int) []headingInfo {
	matches := headingPattern.FindAllStringSubmatch(htmlContent, -1)
	if len(matches) == 0 {
		return nil
	}

	var headings []headingInfo
	for _, m := range matches {
		level, _ := strconv.Atoi(m[1])
		if level < minLevel || level > maxLevel {
			continue
		}
		headings = append(headings, headingInfo{
			Level: level,
			ID:    m[2],
			Text:  stripHTMLTags(m[3]),
		})
	}
	return headings
}

// effectiveDepths converts heading levels to nesting depths.
// The first heading becomes depth 1 regardless of its level, and level gaps
// are clamped so a jump (H1 -> H3) nests one step, not two.
func effectiveDepths(headings []headingInfo) []int {
	depths := make([]int, len(headings))
	minSeen := 0
	last := 0
	for i, h := range headings {
		if minSeen == 0 || h.Level < minSeen {
			minSeen = h.Level
		}
		d := h.Level - minSeen + 1
		if d < 1 {
			d = 1
		}
		if last > 0 && d > last+1 {
			d = last + 1
		}
		depths[i] = d
		last = d
	}
	return depths
}

// buildNestedList renders headings as a nested <ul> or <ol> wrapped in a
// <nav class="toc"> element. Output is deterministic for identical input.
func buildNestedList(headings []headingInfo, ordered bool) string {
	if len(headings) == 0 {
		return ""
	}

	tag := "ul"
	if ordered {
		tag = "ol"
	}

	depths := effectiveDepths(headings)

	var buf strings.Builder
	buf.WriteString(`<nav class="toc">`)

	prev := 0
	for i, h := range headings {
		d := depths[i]
		if d > prev {
			for j := prev; j < d; j++ {
				buf.WriteString("<" + tag + ">")
			}
		} else {
			buf.WriteString("</li>")
			for j := d; j < prev; j++ {
				buf.WriteString("</" + tag + "></li>")
			}
		}
		buf.WriteString(`<li><a href="#`)
		buf.WriteString(html.EscapeString(h.ID))
		buf.WriteString(`">`)
		buf.WriteString(html.EscapeString(h.Text))
		buf.WriteString(`</a>`)
		prev = d
	}

	buf.WriteString("</li>")
	for j := 1; j < prev; j++ {
		buf.WriteString("</" + tag + "></li>")
	}
	buf.WriteString("</" + tag + ">")

	buf.WriteString(`</nav>`)
	return buf.String()
}

// TOCInjection replaces the [[toc]] placeholder with a generated list.
type TOCInjection struct {
	cfg TOCConfig
}

// NewTOCInjection creates a TOC injector for the given configuration.
func NewTOCInjection(cfg TOCConfig) *TOCInjection {
	return &TOCInjection{cfg: cfg}
}

// InjectTOC scans headings within the configured level range and replaces
// every [[toc]] placeholder paragraph with a nested list linking to them in
// document order. Content without a placeholder is returned unchanged; a
// placeholder with no headings in range is removed.
func (t *TOCInjection) InjectTOC(ctx context.Context, htmlContent string) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	if !placeholderPattern.MatchString(htmlContent) {
		return htmlContent, nil
	}

	headings := extractHeadings(htmlContent, t.cfg.MinLevel, t.cfg.MaxLevel)
	tocHTML := buildNestedList(headings, t.cfg.Ordered)

	return placeholderPattern.ReplaceAllLiteralString(htmlContent, tocHTML), nil
}
