package catalog

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch reloads the content file whenever it changes and hands each
// successfully validated catalog to onReload. A file that fails to parse
// or validate is skipped; the previous catalog stays active. Watch
// blocks until ctx is cancelled.
//
// The parent directory is watched rather than the file itself, so
// editors that replace the file on save keep triggering events.
func Watch(ctx context.Context, path string, log *zap.Logger, onReload func(*Catalog)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve content path: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch content dir: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Name != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			c, err := LoadFile(abs)
			if err != nil {
				log.Warn("content reload skipped", zap.String("path", abs), zap.Error(err))
				continue
			}
			log.Info("content reloaded", zap.String("path", abs))
			onReload(c)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("content watcher error", zap.Error(err))
		}
	}
}
