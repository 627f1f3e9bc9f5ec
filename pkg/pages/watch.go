package pages

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/vivircondiabetes/sitio/pkg/logger"
)

// Watch invalidates cached pages when files in dir change, until ctx is
// done. dir must be the directory backing the store's file system.
// Events are debounced; the pages touched during a burst are invalidated
// together.
func (s *Store) Watch(ctx context.Context, dir string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Join(ErrWatch, err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return errors.Join(ErrWatch, fmt.Errorf("%s: %w", dir, err))
	}

	debounced := &debouncer{window: s.debounce}
	defer debounced.stop()

	var (
		mu      sync.Mutex
		pending = make(map[string]struct{})
	)
	flush := func() {
		mu.Lock()
		names := make([]string, 0, len(pending))
		for name := range pending {
			names = append(names, name)
		}
		clear(pending)
		mu.Unlock()

		s.Invalidate(names...)
		s.log.Info("pages reloaded", slog.Any("pages", names), logger.Event("pages_reloaded"))
	}

	s.log.Info("watching pages", slog.String("dir", dir))

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			name, isPage := pageName(ev.Name)
			if !isPage || ev.Op == fsnotify.Chmod {
				continue
			}
			mu.Lock()
			pending[name] = struct{}{}
			mu.Unlock()
			debounced.trigger(flush)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("page watcher error", logger.Error(err))
		}
	}
}

func pageName(file string) (string, bool) {
	base := filepath.Base(file)
	if filepath.Ext(base) != Ext {
		return "", false
	}
	return strings.TrimSuffix(base, Ext), true
}
