package adapter

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	m "github.com/mouse-blink/mojifix/internal/model"
)

// IgnoreChecker is used by the watcher to check if a path should be ignored.
type IgnoreChecker interface {
	ShouldIgnoreDir(absolutePath string) bool
	ShouldIgnore(absolutePath string) bool
}

// EventSource delivers raw file change notifications. Debouncing is the
// consumer's job.
type EventSource interface {
	Events() <-chan m.WatchEvent
	Start()
	Close() error
}

// Watcher provides recursive file system watching on top of fsnotify.
type Watcher struct {
	fsWatcher     *fsnotify.Watcher
	ignoreChecker IgnoreChecker
	events        chan m.WatchEvent
	done          chan struct{}
	logger        *slog.Logger
}

// NewWatcher registers every non-ignored directory under roots.
func NewWatcher(roots []string, ignoreChecker IgnoreChecker, logger *slog.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsWatcher:     fsWatcher,
		ignoreChecker: ignoreChecker,
		events:        make(chan m.WatchEvent, 256),
		done:          make(chan struct{}),
		logger:        logger,
	}

	for _, root := range roots {
		if err := w.addTree(root); err != nil {
			_ = fsWatcher.Close()

			return nil, err
		}
	}

	return w, nil
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}

			return nil
		}

		if !d.IsDir() {
			return nil
		}

		if path != root && w.ignoreChecker.ShouldIgnoreDir(path) {
			return filepath.SkipDir
		}

		if watchErr := w.fsWatcher.Add(path); watchErr != nil {
			w.logger.Warn("failed to watch directory", "path", path, "error", watchErr)
		}

		return nil
	})
}

// Events returns the channel of raw file events. It is closed when the
// watcher stops.
func (w *Watcher) Events() <-chan m.WatchEvent {
	return w.events
}

// Start pumps fsnotify events until Close. Call it in a goroutine.
func (w *Watcher) Start() {
	defer close(w.events)

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}

			w.logger.Warn("watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if !w.ignoreChecker.ShouldIgnoreDir(path) {
				if err := w.addTree(path); err != nil {
					w.logger.Warn("failed to watch new directory", "path", path, "error", err)
				}
			}

			return
		}
	}

	if w.ignoreChecker.ShouldIgnore(path) {
		return
	}

	var op m.WatchOp

	switch {
	case event.Has(fsnotify.Create):
		op = m.OpCreate
	case event.Has(fsnotify.Write):
		op = m.OpWrite
	case event.Has(fsnotify.Remove):
		op = m.OpRemove
	case event.Has(fsnotify.Rename):
		op = m.OpRename
	default:
		return
	}

	select {
	case w.events <- m.WatchEvent{Path: m.Path(path), Op: op}:
	case <-w.done:
	}
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
		close(w.done)
	}

	return w.fsWatcher.Close()
}
