// Package watch rebuilds on content file changes.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DefaultDebounce collapses an editor's burst of writes into one rebuild.
const DefaultDebounce = 300 * time.Millisecond

// Watcher watches one file. The parent directory is watched so that
// editors replacing the file by rename are still seen.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *zap.Logger
}

// New creates a watcher for path. A non-positive debounce uses
// DefaultDebounce; a nil logger discards output.
func New(path string, debounce time.Duration, logger *zap.Logger) (w *Watcher) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	// Event names are built from the watched directory; compare absolute.
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	w = &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		logger:   logger,
	}
	return w
}

// Run calls onChange after each settled burst of changes to the file and
// blocks until ctx is done. onChange runs on the calling goroutine's loop,
// so events are not processed while it runs.
func (w *Watcher) Run(ctx context.Context, onChange func()) (err error) {
	var watcher *fsnotify.Watcher
	watcher, err = fsnotify.NewWatcher()
	if err != nil {
		err = errors.Wrap(err, "failed to create file watcher")
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	err = watcher.Add(dir)
	if err != nil {
		err = errors.Wrapf(err, "failed to watch %s", dir)
		return err
	}

	w.logger.Debug("watching", zap.String("path", w.path))

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return err

		case event, ok := <-watcher.Events:
			if !ok {
				return err
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("change", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			timer.Reset(w.debounce)

		case werr, ok := <-watcher.Errors:
			if !ok {
				return err
			}
			w.logger.Warn("watch error", zap.Error(werr))

		case <-timer.C:
			onChange()
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) (ok bool) {
	if filepath.Clean(event.Name) != w.path {
		return ok
	}
	ok = event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0
	return ok
}
