package aggregator

import (
	"context"

	"github.com/nguyentantai21042004/truth-weaver/internal/grouper"
)

// Aggregator turns one subject's recordings into a single combined transcript
type Aggregator interface {
	Aggregate(ctx context.Context, subject string, files []grouper.AudioFile) (*Transcript, error)
}
