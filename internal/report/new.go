package report

import "github.com/nguyentantai21042004/truth-weaver/internal/logger"

type implWriter struct {
	logger logger.Logger
}

// NewWriter creates a Writer
func NewWriter(log logger.Logger) Writer {
	return &implWriter{logger: log}
}
