package pipeline

import (
	"time"

	"github.com/nguyentantai21042004/truth-weaver/internal/aggregator"
	"github.com/nguyentantai21042004/truth-weaver/internal/analysis"
	"github.com/nguyentantai21042004/truth-weaver/internal/grouper"
	"github.com/nguyentantai21042004/truth-weaver/internal/logger"
	"github.com/nguyentantai21042004/truth-weaver/internal/metrics"
	"github.com/nguyentantai21042004/truth-weaver/internal/report"
)

// Deps are the collaborators a Pipeline needs. Metrics and Now are optional.
type Deps struct {
	Grouper    grouper.Grouper
	Aggregator aggregator.Aggregator
	Analyzer   analysis.Analyzer
	Writer     report.Writer
	Metrics    *metrics.Recorder
	Logger     logger.Logger
	Now        func() time.Time
}

type implPipeline struct {
	grouper    grouper.Grouper
	aggregator aggregator.Aggregator
	analyzer   analysis.Analyzer
	writer     report.Writer
	metrics    *metrics.Recorder
	logger     logger.Logger
	now        func() time.Time
}

// New creates a Pipeline
func New(d Deps) Pipeline {
	if d.Metrics == nil {
		d.Metrics = metrics.New()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return &implPipeline{
		grouper:    d.Grouper,
		aggregator: d.Aggregator,
		analyzer:   d.Analyzer,
		writer:     d.Writer,
		metrics:    d.Metrics,
		logger:     d.Logger,
		now:        d.Now,
	}
}
