package site

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"time"
)

// feedItemLimit caps the number of posts in the RSS feed.
const feedItemLimit = 10

// writeFeed generates an RSS 2.0 feed from the most recent posts.
func (s *Site) writeFeed() error {
	type item struct {
		Title       string `xml:"title"`
		Link        string `xml:"link"`
		Description string `xml:"description"`
		PubDate     string `xml:"pubDate"`
		GUID        string `xml:"guid"`
	}

	type channel struct {
		Title         string `xml:"title"`
		Link          string `xml:"link"`
		Description   string `xml:"description"`
		Generator     string `xml:"generator"`
		LastBuildDate string `xml:"lastBuildDate"`
		Items         []item `xml:"item"`
	}

	type feed struct {
		XMLName xml.Name `xml:"rss"`
		Version string   `xml:"version,attr"`
		Atom    string   `xml:"xmlns:atom,attr"`
		Channel channel  `xml:"channel"`
	}

	n := len(s.posts)
	if n > feedItemLimit {
		n = feedItemLimit
	}
	items := make([]item, 0, n)
	for _, p := range s.posts[:n] {
		items = append(items, item{
			Title:       p.Title,
			Link:        p.Permalink,
			Description: p.Summary,
			PubDate:     p.DatePublished.Format(time.RFC1123Z),
			GUID:        p.Permalink,
		})
	}

	f := feed{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: channel{
			Title:         s.opts.Title,
			Link:          s.opts.BaseURL,
			Description:   s.opts.Description,
			Generator:     "mdsite",
			LastBuildDate: time.Now().Format(time.RFC1123Z),
			Items:         items,
		},
	}

	out, err := os.Create(filepath.Join(s.opts.OutputDir, "feed.xml"))
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.WriteString(xml.Header); err != nil {
		return err
	}
	return xml.NewEncoder(out).Encode(f)
}

// writeSitemap generates an XML sitemap covering every page.
func (s *Site) writeSitemap() error {
	type entry struct {
		XMLName xml.Name `xml:"url"`
		Loc     string   `xml:"loc"`
		LastMod string   `xml:"lastmod"`
	}

	type urlset struct {
		XMLName xml.Name `xml:"urlset"`
		XMLNS   string   `xml:"xmlns,attr"`
		Urls    []entry
	}

	urls := make([]entry, 0, len(s.pages))
	for _, p := range s.pages {
		urls = append(urls, entry{
			Loc:     p.Permalink,
			LastMod: p.DateModified.Format(time.RFC3339),
		})
	}

	env := urlset{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		Urls:  urls,
	}

	out, err := os.Create(filepath.Join(s.opts.OutputDir, "sitemap.xml"))
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.WriteString(xml.Header); err != nil {
		return err
	}
	return xml.NewEncoder(out).Encode(env)
}
