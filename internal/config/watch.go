package config

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Watch monitors the config file at path and invokes onChange with each
// successfully reloaded Config. It blocks until ctx is cancelled.
//
// A rewrite that fails Load — unreadable file, bad YAML, failed validation —
// is logged and skipped, so the previously applied configuration stays in
// effect and the session keeps its current inlets.
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: start watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(path); err != nil {
		return fmt.Errorf("config: watch %q: %w", path, err)
	}

	slog.Info("config: watching", "path", path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			// Atomic saves replace the file instead of writing in place, so a
			// create counts the same as a write; the path is re-registered
			// below in case the inode changed.
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}

			next, err := Load(path)
			if err != nil {
				slog.Error("config: rejecting rewrite, previous config stays active",
					"path", path, "err", err)
				continue
			}

			onChange(next)
			slog.Info("config: reloaded", "path", path)
			_ = w.Add(path)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("config: watcher error", "err", err)
		}
	}
}
