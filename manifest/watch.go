package manifest

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch regenerates the manifest of dir whenever a track file changes, until
// ctx is done. onUpdate receives the fresh list after every rewrite.
func Watch(ctx context.Context, dir string, debounce time.Duration, onUpdate func([]string)) error {
	if _, err := Generate(dir); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return err
	}

	logger := slog.With("system", "manifest")
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) == FileName {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				pending = time.After(debounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "err", err)
		case <-pending:
			pending = nil
			tracks, err := Generate(dir)
			if err != nil {
				logger.Error("regenerate", "dir", dir, "err", err)
				continue
			}
			logger.Info("regenerated", "dir", dir, "tracks", len(tracks))
			if onUpdate != nil {
				onUpdate(tracks)
			}
		}
	}
}
