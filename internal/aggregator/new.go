package aggregator

import (
	"github.com/nguyentantai21042004/truth-weaver/internal/logger"
	"github.com/nguyentantai21042004/truth-weaver/internal/transcriber"
)

type implAggregator struct {
	transcriber transcriber.Transcriber
	logger      logger.Logger
}

// New creates an Aggregator calling t once per file
func New(t transcriber.Transcriber, log logger.Logger) Aggregator {
	return &implAggregator{
		transcriber: t,
		logger:      log,
	}
}
