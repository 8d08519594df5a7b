package lint

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/aflah02/pyqa/internal/config"
)

// WatchEvent describes a file change inside the project that warrants a
// rerun of the quality gate.
type WatchEvent struct {
	// Path of the changed file, relative to the project root.
	Path string
}

// Watcher monitors the project for file changes and triggers check runs.
type Watcher struct {
	project *Project
	logger  *slog.Logger
	Ready   chan struct{}

	newWatcher func() (*fsnotify.Watcher, error)
}

// NewWatcher creates a new Watcher for the given project.
func NewWatcher(p *Project, logger *slog.Logger) *Watcher {
	return &Watcher{
		project:    p,
		logger:     logger.With("component", "watcher"),
		Ready:      make(chan struct{}),
		newWatcher: fsnotify.NewWatcher,
	}
}

// Watch starts monitoring the project for changes. It calls the provided
// callback whenever a relevant change is detected. It blocks until the
// context is cancelled.
func (w *Watcher) Watch(ctx context.Context, callback func(WatchEvent)) error {
	watcher, err := w.newWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	targets, err := w.project.ResolveTargets()
	if err != nil {
		return err
	}

	// The root itself covers root-level file targets, the settings file and
	// .pyqa.yml; each directory target is watched recursively.
	if err := watcher.Add(w.project.RootDirectory()); err != nil {
		return err
	}
	for _, t := range targets.Targets() {
		if !t.IsDir {
			continue
		}
		if err := w.addRecursive(watcher, filepath.Join(targets.Root(), t.Path)); err != nil {
			return err
		}
	}

	w.logger.Info("Watching for changes", "root", w.project.RootDirectory())
	if w.Ready != nil {
		close(w.Ready)
	}

	var timer *time.Timer
	const debounceDuration = 100 * time.Millisecond
	var pendingEvent *WatchEvent

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-watcher.Errors:
			w.logger.Error("Watcher error", "error", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev := w.handleEvent(watcher, event); ev != nil {
				if timer != nil {
					timer.Stop()
				}
				pendingEvent = ev
				timer = time.AfterFunc(debounceDuration, func() {
					callback(*pendingEvent)
				})
			}
		}
	}
}

// handleEvent processes a single fsnotify event. A newly created directory is
// added to the watcher; a relevant file change maps to a WatchEvent.
func (w *Watcher) handleEvent(watcher *fsnotify.Watcher, event fsnotify.Event) *WatchEvent {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return nil
	}

	if event.Has(fsnotify.Create) {
		info, err := os.Stat(event.Name)
		if err == nil && info.IsDir() {
			if err := w.addRecursive(watcher, event.Name); err != nil {
				w.logger.Error("Failed to watch new directory", "path", event.Name, "error", err)
			}
			return nil
		}
	}

	return w.mapToWatchEvent(event.Name)
}

// addRecursive adds the given path and all its subdirectories to the watcher.
func (w *Watcher) addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if strings.HasPrefix(filepath.Base(path), ".") && path != root {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		}
		return nil
	})
}

// mapToWatchEvent maps a file path to a WatchEvent. Returns nil if the file
// is not relevant: only Python sources, the settings file and the
// configuration file trigger a rerun.
func (w *Watcher) mapToWatchEvent(path string) *WatchEvent {
	rel, err := filepath.Rel(w.project.RootDirectory(), path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil
	}

	if filepath.Ext(rel) == ".py" {
		return &WatchEvent{Path: rel}
	}
	if rel == w.project.Config().SettingsFile || filepath.Base(rel) == config.ConfigFile {
		return &WatchEvent{Path: rel}
	}
	return nil
}
