package report

import (
	"context"

	"github.com/nguyentantai21042004/truth-weaver/internal/aggregator"
)

// Writer persists run artifacts. Each file is written to a temp file in the
// target directory and renamed into place.
type Writer interface {
	WriteReport(ctx context.Context, path string, r *Report) error
	WriteTranscripts(ctx context.Context, path string, segments []aggregator.Segment) error
	WriteDocx(ctx context.Context, path string, r *Report) error
}
