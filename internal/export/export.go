// Package export writes the site out as plain files for static hosting.
package export

import (
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/shival-gupta/portfolio/internal/content"
	"github.com/shival-gupta/portfolio/internal/seo"
)

// Exporter renders routes through an http.Handler and saves the responses.
type Exporter struct {
	handler http.Handler
	static  fs.FS
	out     string
	log     *slog.Logger
}

func New(handler http.Handler, static fs.FS, out string, log *slog.Logger) *Exporter {
	return &Exporter{handler: handler, static: static, out: out, log: log}
}

// Result summarizes an export.
type Result struct {
	Pages  int
	Assets int
}

// page maps a request path onto the file it is saved as.
type page struct {
	route  string
	file   string
	status int
}

// pagesFor lists everything rendered from the handler: the public routes,
// discovery files, the scene data and one video fragment per project.
func pagesFor(site *content.Site) []page {
	var out []page
	for _, r := range seo.Routes() {
		route := r.Path
		if route == "" {
			route = "/"
		}
		out = append(out, page{route: route, file: htmlFile(route), status: http.StatusOK})
	}

	out = append(out,
		page{route: "/robots.txt", file: "robots.txt", status: http.StatusOK},
		page{route: "/sitemap.xml", file: "sitemap.xml", status: http.StatusOK},
		page{route: "/api/scene.json", file: "api/scene.json", status: http.StatusOK},
		page{route: "/404", file: "404.html", status: http.StatusNotFound},
	)

	for _, p := range site.Projects {
		if p.VideoURL == "" {
			continue
		}
		route := "/projects/" + p.ID + "/video"
		out = append(out, page{route: route, file: htmlFile(route), status: http.StatusOK})
	}
	return out
}

func htmlFile(route string) string {
	if route == "/" {
		return "index.html"
	}
	return path.Join(strings.TrimPrefix(route, "/"), "index.html")
}

// Run writes every page and static asset below the output directory.
func (e *Exporter) Run(site *content.Site) (res Result, err error) {
	for _, p := range pagesFor(site) {
		err = e.render(p)
		if err != nil {
			return res, err
		}
		res.Pages++
	}

	res.Assets, err = e.copyStatic()
	if err != nil {
		return res, err
	}

	e.log.Info("site exported", slog.String("dir", e.out), slog.Int("pages", res.Pages), slog.Int("assets", res.Assets))
	return res, err
}

func (e *Exporter) render(p page) error {
	req := httptest.NewRequest(http.MethodGet, p.route, nil)
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)

	if w.Code != p.status {
		return errors.Errorf("rendering %s: expected status %d, got %d", p.route, p.status, w.Code)
	}

	e.log.Debug("rendered", slog.String("route", p.route), slog.String("file", p.file))
	return e.write(p.file, w.Body.Bytes())
}

func (e *Exporter) write(name string, data []byte) error {
	dst := filepath.Join(e.out, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", name)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", name)
	}
	return nil
}

func (e *Exporter) copyStatic() (int, error) {
	n := 0
	err := fs.WalkDir(e.static, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		f, err := e.static.Open(name)
		if err != nil {
			return errors.Wrapf(err, "failed to open asset %s", name)
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return errors.Wrapf(err, "failed to read asset %s", name)
		}
		n++
		return e.write(path.Join("static", name), data)
	})
	return n, err
}
