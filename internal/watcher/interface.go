package watcher

import "context"

// Watcher monitors the input directory and triggers a batch after new
// recordings settle
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// BatchHandler runs one batch. Calls never overlap.
type BatchHandler func(ctx context.Context) error
