package cache

import "context"

// Store keeps finished transcripts so an interrupted batch can resume
// without re-running the speech model on files it already handled.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, text string) error
	Close() error
}
