package report

import (
	"time"

	"github.com/nguyentantai21042004/truth-weaver/internal/aggregator"
	"github.com/nguyentantai21042004/truth-weaver/internal/analysis"
)

const SchemaVersion = "1.0"

type Report struct {
	Metadata Metadata          `json:"metadata"`
	Analyses []SubjectAnalysis `json:"analyses"`
	Insights Insights          `json:"insights"`
}

type Metadata struct {
	GeneratedAt         string          `json:"generated_at"`
	SchemaVersion       string          `json:"schema_version"`
	SourceDirectory     string          `json:"source_directory"`
	TotalFilesFound     int             `json:"total_files_found"`
	TotalFilesProcessed int             `json:"total_files_processed"`
	TotalSubjects       int             `json:"total_subjects"`
	AnalyzedSubjects    int             `json:"analyzed_subjects"`
	FallbackSubjects    int             `json:"fallback_subjects"`
	FailedSubjects      []FailedSubject `json:"failed_subjects"`
	SkippedFiles        []string        `json:"skipped_files"`
}

type FailedSubject struct {
	Subject string `json:"subject"`
	Error   string `json:"error"`
}

type SubjectAnalysis struct {
	Subject          string                `json:"subject"`
	ShadowID         string                `json:"shadow_id"`
	Status           analysis.Status       `json:"status"`
	Files            []aggregator.FileMeta `json:"files"`
	TranscriptLength int                   `json:"transcript_length"`
	Analysis         analysis.Record       `json:"analysis"`
}

// RunInfo is what the orchestrator knows about the run besides the analyses
type RunInfo struct {
	SourceDirectory string
	GeneratedAt     time.Time
	FilesFound      int
	Subjects        int
	Failed          []FailedSubject
	Skipped         []string
}

// Build assembles the report; analyses keep the order given
func Build(info RunInfo, analyses []SubjectAnalysis) *Report {
	records := make([]analysis.Record, 0, len(analyses))
	meta := Metadata{
		GeneratedAt:     info.GeneratedAt.Format(time.RFC3339),
		SchemaVersion:   SchemaVersion,
		SourceDirectory: info.SourceDirectory,
		TotalFilesFound: info.FilesFound,
		TotalSubjects:   info.Subjects,
		FailedSubjects:  info.Failed,
		SkippedFiles:    info.Skipped,
	}
	if meta.FailedSubjects == nil {
		meta.FailedSubjects = []FailedSubject{}
	}
	if meta.SkippedFiles == nil {
		meta.SkippedFiles = []string{}
	}
	if analyses == nil {
		analyses = []SubjectAnalysis{}
	}

	for _, a := range analyses {
		records = append(records, a.Analysis)
		meta.TotalFilesProcessed += len(a.Files)
		if a.Status == analysis.StatusFallback {
			meta.FallbackSubjects++
		} else {
			meta.AnalyzedSubjects++
		}
	}

	return &Report{
		Metadata: meta,
		Analyses: analyses,
		Insights: ComputeInsights(records),
	}
}
