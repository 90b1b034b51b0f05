// Package analytics records privacy-conscious page views: client IPs are
// salted and hashed before they are stored, and old rows are purged.
package analytics

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// Visit is one recorded page view.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// PageStat counts views of a single path.
type PageStat struct {
	Path   string `json:"path"`
	Views  int64  `json:"views"`
	Unique int64  `json:"unique"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalVisits    int64      `json:"total_visits"`
	UniqueVisitors int64      `json:"unique_visitors"`
	VisitsToday    int64      `json:"visits_today"`
	VisitsThisWeek int64      `json:"visits_this_week"`
	TopPages       []PageStat `json:"top_pages"`
	RecentVisits   []Visit    `json:"recent_visits"`
}

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the sqlite database at path and migrates it.
// ":memory:" gives a throwaway store.
func Open(ctx context.Context, path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, errors.Wrap(err, "failed to create analytics directory")
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open analytics database")
	}

	// single writer; also keeps ":memory:" on one connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, errors.Wrapf(err, "failed to run %q", pragma)
		}
	}

	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to run migrations")
	}

	return &Store{db: db}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS visitors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			hashed_ip TEXT NOT NULL,
			user_agent TEXT,
			path TEXT NOT NULL,
			timestamp DATETIME NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_visitors_timestamp
		ON visitors(timestamp)
	`)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores a page view.
func (s *Store) Record(ctx context.Context, v Visit) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, v.HashedIP, v.UserAgent, v.Path, v.Timestamp.UTC())
	if err != nil {
		return errors.Wrap(err, "failed to record visit")
	}
	return nil
}

// Cleanup deletes visits recorded before cutoff and reports how many went.
func (s *Store) Cleanup(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE timestamp < ?`, cutoff.UTC())
	if err != nil {
		return 0, errors.Wrap(err, "failed to clean up visits")
	}
	n, _ := result.RowsAffected()
	return n, nil
}

// Stats summarizes traffic relative to now.
func (s *Store) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	now = now.UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := now.Add(-7 * 24 * time.Hour)

	stats := &Stats{}

	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COUNT(DISTINCT hashed_ip) FROM visitors
	`).Scan(&stats.TotalVisits, &stats.UniqueVisitors)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count visits")
	}

	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, startOfDay).
		Scan(&stats.VisitsToday)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count today's visits")
	}

	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, weekAgo).
		Scan(&stats.VisitsThisWeek)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count this week's visits")
	}

	stats.TopPages, err = s.TopPages(ctx, 10)
	if err != nil {
		return nil, err
	}

	stats.RecentVisits, err = s.Recent(ctx, 50)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// TopPages returns the most viewed paths.
func (s *Store) TopPages(ctx context.Context, limit int) ([]PageStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS views, COUNT(DISTINCT hashed_ip)
		FROM visitors
		GROUP BY path
		ORDER BY views DESC, path ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query top pages")
	}
	defer rows.Close()

	var pages []PageStat
	for rows.Next() {
		var p PageStat
		if err := rows.Scan(&p.Path, &p.Views, &p.Unique); err != nil {
			return nil, errors.Wrap(err, "failed to scan page stat")
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// Recent returns the latest visits, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), path, timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query visits")
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var v Visit
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Timestamp); err != nil {
			return nil, errors.Wrap(err, "failed to scan visit")
		}
		visits = append(visits, v)
	}
	return visits, rows.Err()
}
