package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// relevant lists the operations that can change a file's contents. Editors
// that save by rename show up as Create on the target name.
const relevant = fsnotify.Write | fsnotify.Create | fsnotify.Rename

// File calls onChange after path changes, once per burst of events no
// closer together than debounce. It watches the parent directory so a file
// replaced by rename keeps being seen. File returns nil when ctx is done.
// Callback errors are logged and watching continues.
func File(ctx context.Context, path string, debounce time.Duration, onChange func() error) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	log := slog.Default().WithGroup("watch")
	log.Debug("watching", "file", abs, "debounce", debounce)

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || ev.Op&relevant == 0 {
				continue
			}
			log.Debug("event", "file", ev.Name, "op", ev.Op.String())
			timer.Reset(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", "error", err)

		case <-timer.C:
			if err := onChange(); err != nil {
				log.Error("rescore failed", "file", abs, "error", err)
			}
		}
	}
}
