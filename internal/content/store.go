package content

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

const reloadDebounce = 500 * time.Millisecond

// Store hands out the live Site. Readers never see a partially loaded one.
type Store struct {
	path    string
	current atomic.Pointer[Site]
	log     *slog.Logger
}

// NewStore loads and validates the content at path (built-in content when
// path is empty).
func NewStore(path string, log *slog.Logger) (*Store, error) {
	site, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := site.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid content")
	}

	s := &Store{path: path, log: log}
	s.current.Store(site)
	return s, nil
}

// Current returns the Site to render this request with.
func (s *Store) Current() *Site {
	return s.current.Load()
}

// Reload re-reads the content file. The live Site is swapped only when the
// new one validates.
func (s *Store) Reload() error {
	site, err := Load(s.path)
	if err != nil {
		return err
	}
	if err := site.Validate(); err != nil {
		return errors.Wrap(err, "invalid content")
	}
	s.current.Store(site)
	return nil
}

// Watch reloads the content file whenever it changes until ctx is done.
// Editors often write through a temp file and rename, so the parent
// directory is watched and events are filtered by name.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return errors.New("no content file to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create watcher")
	}
	defer watcher.Close()

	target := filepath.Clean(s.path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return errors.Wrapf(err, "failed to watch %s", filepath.Dir(target))
	}

	s.log.Info("watching content file", slog.String("path", target))

	var debounce *time.Timer
	reload := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(reloadDebounce, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})

		case <-reload:
			if err := s.Reload(); err != nil {
				s.log.Error("content reload failed, keeping previous content",
					slog.String("path", target),
					slog.String("error", err.Error()))
				continue
			}
			s.log.Info("content reloaded", slog.String("path", target))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.log.Error("content watcher error", slog.String("error", err.Error()))
		}
	}
}
