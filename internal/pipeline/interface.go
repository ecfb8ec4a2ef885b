package pipeline

import "context"

// Pipeline runs one complete batch: group, transcribe, analyze, report
type Pipeline interface {
	Run(ctx context.Context, opts Options) (*Summary, error)
}
