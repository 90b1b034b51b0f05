package server

import (
	"fmt"
	"html/template"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/shival-gupta/portfolio/internal/content"
	"github.com/shival-gupta/portfolio/internal/theme"
	"github.com/shival-gupta/portfolio/web"
)

// PageMeta is the per-page <head> data.
type PageMeta struct {
	Title       string
	Description string
	URL         string
	Image       string
}

// Page is what every template receives. Data carries the page-specific bits.
type Page struct {
	Meta  PageMeta
	Site  *content.Site
	Theme theme.Theme
	Path  string
	Year  int
	Data  gin.H
}

type navLink struct {
	Href  string
	Label string
}

var (
	navLinks = []navLink{
		{Href: "/", Label: "Home"},
		{Href: "/projects", Label: "Projects"},
		{Href: "/about", Label: "About"},
		{Href: "/contact", Label: "Contact"},
	}
	footerLinks = append(append([]navLink{}, navLinks...), navLink{Href: "/privacy", Label: "Privacy"})
)

var iconName = regexp.MustCompile(`^[a-z][a-z-]*$`)

func icon(name string) template.HTML {
	if !iconName.MatchString(name) {
		name = "activity"
	}
	return template.HTML(fmt.Sprintf( //nolint:gosec // name is restricted to [a-z-]
		`<svg class="icon" aria-hidden="true"><use href="/static/img/icons.svg#%s"></use></svg>`, name))
}

func isExternal(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"icon":         icon,
		"badgeClass":   content.BadgeClass,
		"activityIcon": content.ActivityIcon,
		"categories":   content.Categories,
		"external":     isExternal,
		"join":         strings.Join,
		"navLinks":     func() []navLink { return navLinks },
		"footerLinks":  func() []navLink { return footerLinks },
		"trimScheme": func(s string) string {
			s = strings.TrimPrefix(strings.TrimPrefix(s, "https://"), "http://")
			return strings.TrimSuffix(strings.TrimPrefix(s, "www."), "/")
		},
		"lastSegment": func(s string) string {
			s = strings.TrimSuffix(s, "/")
			return s[strings.LastIndex(s, "/")+1:]
		},
		"longDate": func(t time.Time) string { return t.Format("January 2, 2006") },
	}
}

func loadTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(web.Templates(), "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse templates")
	}
	return tmpl, nil
}

// page assembles the layout data for a request.
func (s *Server) page(c *gin.Context, meta PageMeta, data gin.H) Page {
	site := s.content.Current()

	if meta.Title == "" {
		meta.Title = site.Metadata.Title
	} else {
		meta.Title = meta.Title + " | " + site.Contact.Name
	}
	if meta.Description == "" {
		meta.Description = site.Metadata.Description
	}
	meta.URL = s.origin() + c.Request.URL.Path
	if site.Metadata.OGImage != "" {
		meta.Image = s.origin() + site.Metadata.OGImage
	}

	return Page{
		Meta:  meta,
		Site:  site,
		Theme: theme.FromContext(c),
		Path:  c.Request.URL.Path,
		Year:  s.now().Year(),
		Data:  data,
	}
}

// origin is the absolute base URL of the site without a trailing slash.
func (s *Server) origin() string {
	origin := s.cfg.Site.Origin
	if origin == "" {
		origin = s.content.Current().Metadata.SiteURL
	}
	return strings.TrimRight(origin, "/")
}
