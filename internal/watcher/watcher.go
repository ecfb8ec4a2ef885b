package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/truth-weaver/internal/grouper"
	"github.com/nguyentantai21042004/truth-weaver/internal/logger"
)

type implWatcher struct {
	inputDir string
	debounce time.Duration
	handler  BatchHandler
	logger   logger.Logger
	events   <-chan fsnotify.Event
	errors   <-chan error
	closer   func() error
}

// Start blocks until ctx is cancelled. The handler runs on this goroutine,
// so events arriving during a batch queue up and schedule the next one.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (debounce: %s). Monitoring: %s", w.debounce, w.inputDir)

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !relevant(event) {
				w.logger.Debug(ctx, "Ignoring event: %s", event)
				continue
			}

			w.logger.Debug(ctx, "Recording changed: %s", event.Name)
			timer.Reset(w.debounce)

		case <-timer.C:
			w.logger.Info(ctx, "New recordings detected, starting batch")
			if err := w.handler(ctx); err != nil {
				w.logger.Error(ctx, "Batch failed: %v", err)
			}

		case err, ok := <-w.errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.closer()
}

// relevant reports whether the event adds or replaces an audio recording
func relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return false
	}
	if strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}
	return grouper.IsAudioFile(event.Name)
}
