package grouper

import "context"

// Grouper discovers audio files in a directory and groups them by subject
type Grouper interface {
	Scan(ctx context.Context, dir string) (*Result, error)
}
