// Package seo provides SEO utilities for building the locale-aware
// sitemap and robots.txt.
package seo

import (
	"encoding/xml"
	"time"
)

// XMLNamespace is the sitemap XML namespace.
const XMLNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// ChangeFreq represents the change frequency of a URL.
type ChangeFreq string

// Valid change frequency values.
const (
	ChangeFreqAlways  ChangeFreq = "always"
	ChangeFreqHourly  ChangeFreq = "hourly"
	ChangeFreqDaily   ChangeFreq = "daily"
	ChangeFreqWeekly  ChangeFreq = "weekly"
	ChangeFreqMonthly ChangeFreq = "monthly"
	ChangeFreqYearly  ChangeFreq = "yearly"
	ChangeFreqNever   ChangeFreq = "never"
)

// Priority/change-frequency per content class.
const (
	priorityHome   = "0.9"
	priorityStatic = "0.7"
	priorityCity   = "0.8"
	priorityCounty = "0.8"
	priorityBlog   = "0.6"
)

// StaticPages is the fixed set of static page slugs listed per locale.
var StaticPages = []string{"contact", "blog", "cities", "counties"}

// SitemapURL represents a single URL entry in the sitemap.
type SitemapURL struct {
	Loc        string     `xml:"loc"`
	LastMod    string     `xml:"lastmod,omitempty"`
	ChangeFreq ChangeFreq `xml:"changefreq,omitempty"`
	Priority   string     `xml:"priority,omitempty"`
}

// Sitemap represents the complete sitemap document.
type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// Entry contains the data needed to add one content document to the
// sitemap: its slug and modification timestamps.
type Entry struct {
	Slug      string
	UpdatedAt time.Time
	CreatedAt time.Time
}

// Builder builds the sitemap XML by cross-producting the locale set
// with every content class.
type Builder struct {
	siteURL string
	locales []string
	now     time.Time
	urls    []SitemapURL
}

// NewBuilder creates a sitemap builder. now is used as lastmod for
// entries that carry no timestamps of their own.
func NewBuilder(siteURL string, locales []string, now time.Time) *Builder {
	return &Builder{
		siteURL: siteURL,
		locales: locales,
		now:     now,
		urls:    make([]SitemapURL, 0),
	}
}

// lastMod picks the entry's updatedAt, else createdAt, else generation time.
func (b *Builder) lastMod(e Entry) string {
	switch {
	case !e.UpdatedAt.IsZero():
		return e.UpdatedAt.Format(time.RFC3339)
	case !e.CreatedAt.IsZero():
		return e.CreatedAt.Format(time.RFC3339)
	default:
		return b.now.Format(time.RFC3339)
	}
}

func (b *Builder) add(path, lastmod, priority string, freq ChangeFreq) {
	b.urls = append(b.urls, SitemapURL{
		Loc:        b.siteURL + path,
		LastMod:    lastmod,
		ChangeFreq: freq,
		Priority:   priority,
	})
}

// AddHomePages adds one home URL per locale.
func (b *Builder) AddHomePages() {
	for _, locale := range b.locales {
		b.add("/"+locale, b.now.Format(time.RFC3339), priorityHome, ChangeFreqWeekly)
	}
}

// AddStaticPages adds one URL per (locale, static page).
func (b *Builder) AddStaticPages() {
	for _, page := range StaticPages {
		for _, locale := range b.locales {
			b.add("/"+locale+"/"+page, b.now.Format(time.RFC3339), priorityStatic, ChangeFreqWeekly)
		}
	}
}

// AddCities adds one URL per (locale, city).
func (b *Builder) AddCities(cities []Entry) {
	for _, c := range cities {
		for _, locale := range b.locales {
			b.add("/"+locale+"/cities/"+c.Slug, b.lastMod(c), priorityCity, ChangeFreqWeekly)
		}
	}
}

// AddBlogs adds one URL per (locale, blog). Callers must pass Published
// blogs only; the builder has no status knowledge of its own.
func (b *Builder) AddBlogs(blogs []Entry) {
	for _, bl := range blogs {
		for _, locale := range b.locales {
			b.add("/"+locale+"/blog/"+bl.Slug, b.lastMod(bl), priorityBlog, ChangeFreqMonthly)
		}
	}
}

// AddCounties adds one URL per (locale, county).
func (b *Builder) AddCounties(counties []Entry) {
	for _, c := range counties {
		for _, locale := range b.locales {
			b.add("/"+locale+"/county/"+c.Slug, b.lastMod(c), priorityCounty, ChangeFreqWeekly)
		}
	}
}

// Len returns the number of URLs added so far.
func (b *Builder) Len() int {
	return len(b.urls)
}

// Build generates the sitemap XML.
func (b *Builder) Build() ([]byte, error) {
	sitemap := Sitemap{
		XMLNS: XMLNamespace,
		URLs:  b.urls,
	}

	output := []byte(xml.Header)
	xmlBytes, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(output, xmlBytes...), nil
}

// FallbackSitemap returns the minimal single-URL sitemap served when
// the store is unavailable: sitemap availability is prioritized over
// completeness.
func FallbackSitemap(siteURL, defaultLocale string, now time.Time) ([]byte, error) {
	sitemap := Sitemap{
		XMLNS: XMLNamespace,
		URLs: []SitemapURL{{
			Loc:        siteURL + "/" + defaultLocale,
			LastMod:    now.Format(time.RFC3339),
			ChangeFreq: ChangeFreqWeekly,
			Priority:   priorityStatic,
		}},
	}

	output := []byte(xml.Header)
	xmlBytes, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(output, xmlBytes...), nil
}
