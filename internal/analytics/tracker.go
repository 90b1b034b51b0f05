package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// untracked paths are never recorded.
var untracked = []string{
	"/static/",
	"/admin/",
	"/api/",
	"/favicon",
	"/privacy",
	"/robots.txt",
	"/sitemap.xml",
}

// Tracker hashes visitors and writes their page views in the background.
type Tracker struct {
	store *Store
	salt  string
	log   *slog.Logger
	now   func() time.Time
	wg    sync.WaitGroup
}

// NewTracker creates a tracker with a fresh random salt, so hashes cannot be
// correlated across restarts.
func NewTracker(store *Store, log *slog.Logger) (*Tracker, error) {
	salt, err := RandomToken()
	if err != nil {
		return nil, err
	}
	return &Tracker{store: store, salt: salt, log: log, now: time.Now}, nil
}

// RandomToken returns 32 random bytes, hex encoded.
func RandomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "failed to generate random token")
	}
	return hex.EncodeToString(b), nil
}

// HashIP is consistent per IP for the lifetime of the tracker.
func (t *Tracker) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + t.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// ShouldTrack reports whether a request path counts as a page view.
func ShouldTrack(path string) bool {
	for _, prefix := range untracked {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// Middleware records GET page views that are not opted out with DNT.
func (t *Tracker) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.Request.URL.Path
		if c.Request.Method != "GET" || !ShouldTrack(path) || c.GetHeader("DNT") == "1" {
			return
		}
		if c.Writer.Status() >= 400 {
			return
		}

		visit := Visit{
			HashedIP:  t.HashIP(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      path,
			Timestamp: t.now(),
		}

		t.wg.Add(1)
		go func() {
			defer t.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := t.store.Record(ctx, visit); err != nil {
				t.log.Error("error recording visitor", slog.String("error", err.Error()))
			}
		}()
	}
}

// Wait blocks until in-flight writes are done.
func (t *Tracker) Wait() {
	t.wg.Wait()
}

// Purge removes visits older than retention.
func (t *Tracker) Purge(ctx context.Context, retention time.Duration) {
	n, err := t.store.Cleanup(ctx, t.now().Add(-retention))
	if err != nil {
		t.log.Error("error cleaning up old visitor data", slog.String("error", err.Error()))
		return
	}
	if n > 0 {
		t.log.Info("privacy cleanup removed old visits", slog.Int64("rows", n))
	}
}

func (t *Tracker) Store() *Store {
	return t.store
}
