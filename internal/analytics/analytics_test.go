package analytics

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// setupTestStore creates an in-memory store with migrations applied.
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func setupTracker(t *testing.T) *Tracker {
	t.Helper()
	tracker, err := NewTracker(setupTestStore(t), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("Failed to create tracker: %v", err)
	}
	return tracker
}

func TestRecordAndStats(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	visits := []Visit{
		{HashedIP: "a", Path: "/", Timestamp: now.Add(-time.Hour)},
		{HashedIP: "a", Path: "/projects", Timestamp: now.Add(-2 * time.Hour)},
		{HashedIP: "b", Path: "/", Timestamp: now.Add(-3 * 24 * time.Hour)},
		{HashedIP: "c", Path: "/about", Timestamp: now.Add(-30 * 24 * time.Hour)},
	}
	for _, v := range visits {
		if err := store.Record(ctx, v); err != nil {
			t.Fatalf("Record returned error: %v", err)
		}
	}

	stats, err := store.Stats(ctx, now)
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}

	if stats.TotalVisits != 4 {
		t.Errorf("TotalVisits = %d, want 4", stats.TotalVisits)
	}
	if stats.UniqueVisitors != 3 {
		t.Errorf("UniqueVisitors = %d, want 3", stats.UniqueVisitors)
	}
	if stats.VisitsToday != 2 {
		t.Errorf("VisitsToday = %d, want 2", stats.VisitsToday)
	}
	if stats.VisitsThisWeek != 3 {
		t.Errorf("VisitsThisWeek = %d, want 3", stats.VisitsThisWeek)
	}

	if len(stats.TopPages) == 0 || stats.TopPages[0].Path != "/" || stats.TopPages[0].Views != 2 {
		t.Errorf("Unexpected top pages: %+v", stats.TopPages)
	}
	if len(stats.RecentVisits) != 4 || stats.RecentVisits[0].Path != "/" {
		t.Errorf("Unexpected recent visits: %+v", stats.RecentVisits)
	}
}

func TestCleanup(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	now := time.Now()

	_ = store.Record(ctx, Visit{HashedIP: "old", Path: "/", Timestamp: now.AddDate(-2, 0, 0)})
	_ = store.Record(ctx, Visit{HashedIP: "new", Path: "/", Timestamp: now})

	n, err := store.Cleanup(ctx, now.AddDate(-1, 0, 0))
	if err != nil {
		t.Fatalf("Cleanup returned error: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 row removed, got %d", n)
	}

	recent, _ := store.Recent(ctx, 10)
	if len(recent) != 1 || recent[0].HashedIP != "new" {
		t.Errorf("Unexpected remaining visits: %+v", recent)
	}
}

func TestHashIPIsStableAndOpaque(t *testing.T) {
	tracker := setupTracker(t)

	a := tracker.HashIP("203.0.113.7")
	if a != tracker.HashIP("203.0.113.7") {
		t.Error("Expected the same hash for the same IP")
	}
	if a == tracker.HashIP("203.0.113.8") {
		t.Error("Expected different hashes for different IPs")
	}
	if len(a) != 16 {
		t.Errorf("Expected 16 hex chars, got %d", len(a))
	}
}

func TestShouldTrack(t *testing.T) {
	tests := map[string]bool{
		"/":                 true,
		"/projects":         true,
		"/static/css/a.css": false,
		"/admin/dashboard":  false,
		"/api/scene.json":   false,
		"/privacy":          false,
		"/sitemap.xml":      false,
	}
	for path, want := range tests {
		if got := ShouldTrack(path); got != want {
			t.Errorf("ShouldTrack(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tracker := setupTracker(t)

	r := gin.New()
	r.Use(tracker.Middleware())
	r.GET("/*path", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	requests := []struct {
		path string
		dnt  bool
	}{
		{path: "/"},
		{path: "/projects"},
		{path: "/static/js/site.js"},
		{path: "/about", dnt: true},
	}
	for _, rq := range requests {
		req := httptest.NewRequest(http.MethodGet, rq.path, nil)
		if rq.dnt {
			req.Header.Set("DNT", "1")
		}
		r.ServeHTTP(httptest.NewRecorder(), req)
	}
	tracker.Wait()

	recent, err := tracker.Store().Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 tracked visits, got %d: %+v", len(recent), recent)
	}
	for _, v := range recent {
		if v.HashedIP == "" || v.HashedIP == "192.0.2.1" {
			t.Errorf("Expected a hashed IP, got %q", v.HashedIP)
		}
	}
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "analytics.db")
	store, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to open file store: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected database file at %s: %v", path, err)
	}
}
