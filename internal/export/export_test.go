package export

import (
	"io"
	"log/slog"
	"net/http"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/shival-gupta/portfolio/internal/content"
	"github.com/shival-gupta/portfolio/web"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// echoHandler answers every known route with its own path.
func echoHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/404" {
			w.WriteHeader(http.StatusNotFound)
		}
		_, _ = io.WriteString(w, r.URL.Path)
	})
}

func testSite() *content.Site {
	return &content.Site{
		Projects: []content.Project{
			{ID: "with-video", VideoURL: "https://youtu.be/abc"},
			{ID: "without-video"},
		},
	}
}

func TestRunWritesEveryPage(t *testing.T) {
	out := t.TempDir()
	static := fstest.MapFS{
		"css/site.css":  {Data: []byte("body{}")},
		"img/icons.svg": {Data: []byte("<svg/>")},
	}

	res, err := New(echoHandler(), static, out, discardLogger()).Run(testSite())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Assets != 2 {
		t.Errorf("Expected 2 assets, got %d", res.Assets)
	}

	files := map[string]string{
		"index.html":                           "/",
		"projects/index.html":                  "/projects",
		"about/index.html":                     "/about",
		"contact/index.html":                   "/contact",
		"privacy/index.html":                   "/privacy",
		"robots.txt":                           "/robots.txt",
		"sitemap.xml":                          "/sitemap.xml",
		"api/scene.json":                       "/api/scene.json",
		"404.html":                             "/404",
		"projects/with-video/video/index.html": "/projects/with-video/video",
		"static/css/site.css":                  "body{}",
		"static/img/icons.svg":                 "<svg/>",
	}
	for name, want := range files {
		data, err := os.ReadFile(filepath.Join(out, filepath.FromSlash(name)))
		if err != nil {
			t.Errorf("Expected %s to be written: %v", name, err)
			continue
		}
		if string(data) != want {
			t.Errorf("%s: expected %q, got %q", name, want, data)
		}
	}

	if _, err := os.Stat(filepath.Join(out, "projects", "without-video")); !os.IsNotExist(err) {
		t.Error("Expected no video page for a project without a video")
	}
	if res.Pages != len(files)-2 {
		t.Errorf("Expected %d pages, got %d", len(files)-2, res.Pages)
	}
}

func TestRunFailsOnUnexpectedStatus(t *testing.T) {
	broken := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := New(broken, fstest.MapFS{}, t.TempDir(), discardLogger()).Run(testSite())
	if err == nil {
		t.Fatal("Expected an error when a page fails to render")
	}
}

var fetchCall = regexp.MustCompile(`fetch\("([^"]+)"\)`)

func TestScriptFetchesExportedFiles(t *testing.T) {
	script, err := fs.ReadFile(web.Static(), "js/site.js")
	if err != nil {
		t.Fatalf("Failed to read site.js: %v", err)
	}

	calls := fetchCall.FindAllStringSubmatch(string(script), -1)
	if len(calls) == 0 {
		t.Fatal("Expected site.js to fetch something")
	}

	pages := pagesFor(testSite())
	for _, m := range calls {
		found := false
		for _, p := range pages {
			if p.route == m[1] && p.file == strings.TrimPrefix(m[1], "/") {
				found = true
			}
		}
		if !found {
			t.Errorf("site.js fetches %s but the export does not write it at that path", m[1])
		}
	}
}
