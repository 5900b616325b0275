package scan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports entries that appear in a directory after it was created.
// Only direct children are reported; moves into the directory count as new
// entries.
type Watcher struct {
	dir     string
	opts    Options
	guesser Guesser
	logger  *slog.Logger
	fsw     *fsnotify.Watcher
}

// NewWatcher starts watching dir. Events that arrive before Run are queued.
// A nil logger discards output.
func NewWatcher(dir string, opts Options, g Guesser, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("watch directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch directory: %s is not a directory", dir)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	return &Watcher{
		dir:     filepath.Clean(dir),
		opts:    opts,
		guesser: g,
		logger:  logger,
		fsw:     fsw,
	}, nil
}

// Run calls fn for each new listed entry until ctx is done, then closes the
// watcher. A cancelled context is not an error.
func (w *Watcher) Run(ctx context.Context, fn func(Entry)) error {
	defer w.Close()

	w.logger.Info("watching directory", slog.String("dir", w.dir))
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if entry, ok := w.handle(event); ok {
				fn(entry)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				w.logger.Warn("watch events dropped; rescan to catch up", slog.Any("error", err))
				continue
			}
			w.logger.Warn("watch error", slog.Any("error", err))
		}
	}
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) handle(event fsnotify.Event) (Entry, bool) {
	if !event.Has(fsnotify.Create) {
		return Entry{}, false
	}
	if filepath.Dir(event.Name) != w.dir {
		return Entry{}, false
	}

	info, err := os.Lstat(event.Name)
	if err != nil {
		// Created and removed again before we looked.
		w.logger.Debug("entry vanished", slog.String("path", event.Name), slog.Any("error", err))
		return Entry{}, false
	}
	return inspect(w.dir, filepath.Base(event.Name), info.Mode().Type(), w.opts, w.guesser, w.logger)
}
