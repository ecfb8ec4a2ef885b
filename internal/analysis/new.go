package analysis

import "github.com/nguyentantai21042004/truth-weaver/internal/logger"

type implAnalyzer struct {
	generator Generator
	logger    logger.Logger
}

// New creates an Analyzer that calls gen once per transcript
func New(gen Generator, log logger.Logger) Analyzer {
	return &implAnalyzer{
		generator: gen,
		logger:    log,
	}
}
