// Package watch regenerates wrappers when their inputs change on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce coalesces the burst of events editors emit per save.
const DefaultDebounce = 200 * time.Millisecond

// Watcher calls onChange after any of a fixed set of files is written,
// created or renamed into place.
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    []string
	debounce time.Duration
	onChange func(path string)
	logger   zerolog.Logger
}

// New creates a Watcher for files. The parent directory of every file is
// watched so that editors replacing a file by rename are noticed.
func New(files []string, debounce time.Duration, logger zerolog.Logger, onChange func(path string)) (*Watcher, error) {
	if len(files) == 0 {
		return nil, errors.New("no files to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{
		watcher:  watcher,
		debounce: debounce,
		onChange: onChange,
		logger:   logger,
	}

	var dirs []string

	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			watcher.Close()

			return nil, fmt.Errorf("resolving %s: %w", f, err)
		}

		w.files = append(w.files, abs)

		if dir := filepath.Dir(abs); !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()

			return nil, fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
	}

	return w, nil
}

// Start blocks, dispatching change notifications until ctx is done.
// Callbacks run on the calling goroutine, one at a time.
func (w *Watcher) Start(ctx context.Context) error {
	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending []string
	)

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}

			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return errors.New("watcher channel closed")
			}

			if !w.shouldHandle(event) {
				continue
			}

			w.logger.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("input changed")

			if !slices.Contains(pending, event.Name) {
				pending = append(pending, event.Name)
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}

			fire = timer.C

		case <-fire:
			fire = nil

			for _, path := range pending {
				w.onChange(path)
			}

			pending = pending[:0]

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return errors.New("watcher error channel closed")
			}

			if err != nil {
				w.logger.Warn().Err(err).Msg("watcher error")
			}
		}
	}
}

// shouldHandle keeps content-changing events on watched files.
func (w *Watcher) shouldHandle(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}

	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}

	return slices.Contains(w.files, abs)
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
