package manifest

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatcherConfig configures the manifest watcher
type WatcherConfig struct {
	// Paths are the manifest files or directories to watch
	Paths []string

	// DebounceDelay is how long to wait for more changes before emitting
	DebounceDelay time.Duration

	// Logger for logging events
	Logger *slog.Logger
}

// Event represents a manifest file change
type Event struct {
	// Path is the changed manifest file
	Path string

	// Operation is the type of change
	Operation Operation
}

// Operation indicates the type of file operation
type Operation string

const (
	OpCreate Operation = "create"
	OpModify Operation = "modify"
	OpRemove Operation = "remove"
)

// Watcher watches manifest files and emits debounced change events, so
// a consumer can rebuild its catalog when declarations change on disk.
type Watcher struct {
	config  WatcherConfig
	watcher *fsnotify.Watcher
	logger  *slog.Logger

	// Debouncing: collect changes before emitting
	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op

	events chan Event
}

// NewWatcher creates a new manifest watcher
func NewWatcher(config WatcherConfig) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if config.DebounceDelay == 0 {
		config.DebounceDelay = 100 * time.Millisecond
	}

	return &Watcher{
		config:  config,
		watcher: fsw,
		logger:  logger,
		pending: make(map[string]fsnotify.Op),
		events:  make(chan Event, 16),
	}, nil
}

// Events returns the channel of manifest change events
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Start begins watching the configured paths
func (w *Watcher) Start(ctx context.Context) error {
	for _, path := range w.config.Paths {
		// Watch the containing directory for files, so rewrites that
		// replace the file (editors, atomic renames) stay visible.
		target := path
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			target = filepath.Dir(path)
		}
		if err := w.watcher.Add(target); err != nil {
			w.logger.Warn("Failed to watch path",
				"path", target,
				"error", err)
			continue
		}
		w.logger.Debug("Watching path", "path", target)
	}

	go w.processEvents(ctx)

	w.logger.Info("Manifest watcher started",
		"paths", len(w.config.Paths),
		"debounce", w.config.DebounceDelay)

	return nil
}

// Stop stops the watcher
func (w *Watcher) Stop() error {
	close(w.events)
	return w.watcher.Close()
}

// processEvents handles fsnotify events with debouncing
func (w *Watcher) processEvents(ctx context.Context) {
	ticker := time.NewTicker(w.config.DebounceDelay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			w.flushPending(ctx)
		}
	}
}

// handleFSEvent accumulates a single fsnotify event
func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	if !isManifestFile(event.Name) {
		return
	}

	w.pendingMu.Lock()
	w.pending[event.Name] |= event.Op
	w.pendingMu.Unlock()

	w.logger.Debug("Manifest change detected",
		"path", event.Name,
		"op", event.Op.String())
}

// flushPending emits accumulated changes
func (w *Watcher) flushPending(ctx context.Context) {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}

	// Copy and clear pending
	toProcess := make(map[string]fsnotify.Op)
	for k, v := range w.pending {
		toProcess[k] = v
	}
	w.pending = make(map[string]fsnotify.Op)
	w.pendingMu.Unlock()

	for path, op := range toProcess {
		select {
		case <-ctx.Done():
			return
		default:
		}

		event := Event{Path: path}
		switch {
		case op.Has(fsnotify.Remove) || op.Has(fsnotify.Rename):
			event.Operation = OpRemove
		case op.Has(fsnotify.Create):
			event.Operation = OpCreate
		default:
			event.Operation = OpModify
		}

		// A rename may be followed by a create of the same path; trust
		// the filesystem over the accumulated ops.
		if event.Operation == OpRemove {
			if _, err := os.Stat(path); err == nil {
				event.Operation = OpModify
			}
		}

		w.sendEvent(ctx, event)
	}
}

func (w *Watcher) sendEvent(ctx context.Context, event Event) {
	select {
	case w.events <- event:
	case <-ctx.Done():
	}
}

func isManifestFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
