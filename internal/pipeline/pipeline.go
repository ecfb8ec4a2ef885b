package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/truth-weaver/internal/aggregator"
	"github.com/nguyentantai21042004/truth-weaver/internal/report"
)

// ErrNoSubjectsAnalyzed means every subject failed before analysis; no
// artifacts are written in that case
var ErrNoSubjectsAnalyzed = errors.New("no subject could be transcribed")

type Options struct {
	InputDir string
	// OutputPath is the JSON report; the remaining paths are optional
	OutputPath      string
	TranscriptsPath string
	DocxPath        string
	MetricsPath     string
}

type Summary struct {
	Report   *report.Report
	Failed   []report.FailedSubject
	Analyzed int
	Fallback int
	Duration time.Duration
}

// Run processes subjects one at a time in sorted order. A subject whose
// transcription fails is logged and skipped; only a missing or empty input
// directory and a failed report write end the run with an error.
func (p *implPipeline) Run(ctx context.Context, opts Options) (*Summary, error) {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting batch analysis: %s", opts.InputDir)
	p.logger.Info(ctx, "========================================")

	groups, err := p.grouper.Scan(ctx, opts.InputDir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", opts.InputDir, err)
	}

	summary := &Summary{}
	var analyses []report.SubjectAnalysis
	var segments []aggregator.Segment

	for i, subject := range groups.Subjects {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		subjectStart := time.Now()
		files := groups.Groups[subject]
		p.logger.Info(ctx, "[%d/%d] Subject %s: %d recordings", i+1, len(groups.Subjects), subject, len(files))

		transcript, err := p.aggregator.Aggregate(ctx, subject, files)
		if err != nil {
			p.logger.Error(ctx, "Skipping subject %s: %v", subject, err)
			summary.Failed = append(summary.Failed, report.FailedSubject{Subject: subject, Error: err.Error()})
			p.metrics.SubjectsFailed.Inc()
			continue
		}
		p.metrics.FilesTranscribed.Add(float64(len(files)))

		outcome := p.analyzer.Analyze(ctx, transcript.Text, transcript.ShadowID)
		if outcome.IsFallback() {
			p.logger.Warn(ctx, "Using fallback analysis for %s: %v", transcript.ShadowID, outcome.Reason)
			summary.Fallback++
		} else {
			summary.Analyzed++
		}
		p.metrics.Analyses.WithLabelValues(string(outcome.Status)).Inc()
		p.metrics.ObserveSubject(subjectStart)

		analyses = append(analyses, report.SubjectAnalysis{
			Subject:          subject,
			ShadowID:         transcript.ShadowID,
			Status:           outcome.Status,
			Files:            transcript.Files,
			TranscriptLength: len([]rune(transcript.Text)),
			Analysis:         outcome.Record,
		})
		segments = append(segments, transcript.Segments...)
	}

	if len(analyses) == 0 {
		return summary, fmt.Errorf("%d subjects failed: %w", len(summary.Failed), ErrNoSubjectsAnalyzed)
	}

	rpt := report.Build(report.RunInfo{
		SourceDirectory: opts.InputDir,
		GeneratedAt:     p.now(),
		FilesFound:      groups.Total,
		Subjects:        len(groups.Subjects),
		Failed:          summary.Failed,
		Skipped:         groups.Skipped,
	}, analyses)
	summary.Report = rpt

	if err := p.writer.WriteReport(ctx, opts.OutputPath, rpt); err != nil {
		return summary, err
	}

	p.writeOptional(ctx, opts, rpt, segments)

	summary.Duration = time.Since(startTime)
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Batch complete: %d analyzed, %d fallback, %d failed", summary.Analyzed, summary.Fallback, len(summary.Failed))
	p.logger.Info(ctx, "Overall credibility: %s", rpt.Insights.OverallCredibility)
	p.logger.Info(ctx, "Processing time: %s", summary.Duration)
	p.logger.Info(ctx, "========================================")

	return summary, nil
}

// writeOptional writes the secondary artifacts; their failures are logged only
func (p *implPipeline) writeOptional(ctx context.Context, opts Options, rpt *report.Report, segments []aggregator.Segment) {
	if opts.TranscriptsPath != "" {
		if err := p.writer.WriteTranscripts(ctx, opts.TranscriptsPath, segments); err != nil {
			p.logger.Warn(ctx, "Failed to write transcripts: %v", err)
		}
	}
	if opts.DocxPath != "" {
		if err := p.writer.WriteDocx(ctx, opts.DocxPath, rpt); err != nil {
			p.logger.Warn(ctx, "Failed to write docx report: %v", err)
		}
	}
	if opts.MetricsPath != "" {
		if err := p.metrics.WriteTextfile(opts.MetricsPath, p.now()); err != nil {
			p.logger.Warn(ctx, "Failed to write metrics: %v", err)
		}
	}
}
