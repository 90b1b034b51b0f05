// Package seo generates robots.txt and sitemap.xml for the site.
package seo

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Route is one public page of the site.
type Route struct {
	Path       string
	ChangeFreq string
	Priority   float64
}

// Routes lists the public pages in sitemap order. The home page is "".
func Routes() []Route {
	return []Route{
		{Path: "", ChangeFreq: "weekly", Priority: 1.0},
		{Path: "/projects", ChangeFreq: "monthly", Priority: 0.8},
		{Path: "/about", ChangeFreq: "monthly", Priority: 0.8},
		{Path: "/contact", ChangeFreq: "monthly", Priority: 0.8},
		{Path: "/privacy", ChangeFreq: "monthly", Priority: 0.8},
	}
}

// DisallowedPrefix is kept out of crawlers' reach.
const DisallowedPrefix = "/api/"

// Robots renders robots.txt for origin.
func Robots(origin string) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: " + DisallowedPrefix + "\n")
	b.WriteString("\n")
	b.WriteString("Sitemap: " + trimOrigin(origin) + "/sitemap.xml\n")
	return b.String()
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	XMLNS   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Entry is a sitemap row, exposed for callers that want the data rather than
// the XML.
type Entry struct {
	URL        string
	LastMod    time.Time
	ChangeFreq string
	Priority   float64
}

// Entries builds one sitemap row per route with an absolute URL.
func Entries(origin string, now time.Time) []Entry {
	base := trimOrigin(origin)
	routes := Routes()
	out := make([]Entry, 0, len(routes))
	for _, r := range routes {
		out = append(out, Entry{
			URL:        base + r.Path,
			LastMod:    now,
			ChangeFreq: r.ChangeFreq,
			Priority:   r.Priority,
		})
	}
	return out
}

// Sitemap renders sitemap.xml for origin.
func Sitemap(origin string, now time.Time) (out []byte, err error) {
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, e := range Entries(origin, now) {
		set.URLs = append(set.URLs, urlEntry{
			Loc:        e.URL,
			LastMod:    e.LastMod.UTC().Format("2006-01-02"),
			ChangeFreq: e.ChangeFreq,
			Priority:   fmt.Sprintf("%.1f", e.Priority),
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to encode sitemap")
		return nil, err
	}

	out = append([]byte(xml.Header), body...)
	out = append(out, '\n')
	return out, err
}

func trimOrigin(origin string) string {
	return strings.TrimRight(strings.TrimSpace(origin), "/")
}
