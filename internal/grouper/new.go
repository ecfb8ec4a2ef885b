package grouper

import "github.com/nguyentantai21042004/truth-weaver/internal/logger"

type implGrouper struct {
	logger logger.Logger
}

// New creates a Grouper
func New(log logger.Logger) Grouper {
	return &implGrouper{logger: log}
}
