package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/truth-weaver/internal/logger"
)

// DefaultDebounce is the quiet period used when none is configured
const DefaultDebounce = 2 * time.Second

// New creates a Watcher on inputDir. The handler fires once per burst of
// audio file events, after debounce has elapsed with no further events.
func New(inputDir string, debounce time.Duration, handler BatchHandler, log logger.Logger) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &implWatcher{
		inputDir: inputDir,
		debounce: debounce,
		handler:  handler,
		logger:   log,
		events:   watcher.Events,
		errors:   watcher.Errors,
		closer:   watcher.Close,
	}, nil
}
