package catalog

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ErrNothingToWatch is returned by Watch for a Catalog serving the built-in
// graph.
var ErrNothingToWatch = errors.New("catalog: no graph file to watch")

// Watch reloads the graph whenever its file changes, coalescing bursts of
// events that arrive within debounce of each other. It watches the parent
// directory so that editors replacing the file by rename are noticed.
//
// Watch returns once the watcher is running; it stops when ctx is done.
func (c *Catalog) Watch(ctx context.Context, debounce time.Duration) error {
	if c.path == "" {
		return ErrNothingToWatch
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("catalog: create file watcher: %w", err)
	}
	dir := filepath.Dir(c.path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return fmt.Errorf("catalog: watch %s: %w", dir, err)
	}

	c.log.Info("Graph hot reloading enabled",
		zap.String("file", c.path),
		zap.Duration("debounce", debounce),
	)
	go c.watchLoop(ctx, fw, debounce)

	return nil
}

// watchLoop drains fsnotify events until ctx is done. Debounced reloads run
// on this goroutine, one at a time.
func (c *Catalog) watchLoop(ctx context.Context, fw *fsnotify.Watcher, debounce time.Duration) {
	defer fw.Close()

	target := filepath.Clean(c.path)
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			c.log.Info("Stopping graph watcher")
			return

		case <-fire:
			fire = nil
			_ = c.Reload(ctx)

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			c.log.Debug("Graph file changed",
				zap.String("file", event.Name),
				zap.String("operation", event.Op.String()),
			)

			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			fire = timer.C

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			c.log.Error("Graph watcher error", zap.Error(err))
		}
	}
}
