// Package watch reruns a job whenever the contents of a directory settle
// after a change.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/spritegrid/internal/ports"
)

// DefaultDebounce is used when New is given a non-positive delay.
const DefaultDebounce = 250 * time.Millisecond

// Watcher observes one directory, non-recursively.
type Watcher struct {
	dir      string
	debounce time.Duration
	logger   ports.Logger
	ignore   func(path string) bool
}

// New creates a watcher for dir. Events on paths for which ignore returns
// true never trigger a run; ignore may be nil.
func New(dir string, debounce time.Duration, logger ports.Logger, ignore func(path string) bool) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if ignore == nil {
		ignore = func(string) bool { return false }
	}
	return &Watcher{
		dir:      filepath.Clean(dir),
		debounce: debounce,
		logger:   logger,
		ignore:   ignore,
	}
}

// Run calls fn once, then again each time the directory has been quiet for
// the debounce delay after a relevant change. Errors from fn are logged and
// do not stop the loop. Run blocks until ctx is done.
func (w *Watcher) Run(ctx context.Context, fn func(context.Context) error) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	w.logger.Info("watching directory",
		ports.String("dir", w.dir),
		ports.Duration("debounce", w.debounce),
	)
	w.run(ctx, fn)

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
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("change detected",
				ports.String("path", event.Name),
				ports.String("op", event.Op.String()),
			)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Stop()
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.run(ctx, fn)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", ports.Err(err))
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return !w.ignore(event.Name)
}

func (w *Watcher) run(ctx context.Context, fn func(context.Context) error) {
	if ctx.Err() != nil {
		return
	}
	if err := fn(ctx); err != nil {
		w.logger.Error("watch run failed", ports.String("dir", w.dir), ports.Err(err))
	}
}
