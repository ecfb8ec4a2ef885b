package pipeline_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nguyentantai21042004/truth-weaver/internal/aggregator"
	"github.com/nguyentantai21042004/truth-weaver/internal/analysis"
	"github.com/nguyentantai21042004/truth-weaver/internal/analysis/mocks"
	"github.com/nguyentantai21042004/truth-weaver/internal/apperror"
	"github.com/nguyentantai21042004/truth-weaver/internal/grouper"
	"github.com/nguyentantai21042004/truth-weaver/internal/logger"
	"github.com/nguyentantai21042004/truth-weaver/internal/metrics"
	"github.com/nguyentantai21042004/truth-weaver/internal/pipeline"
	"github.com/nguyentantai21042004/truth-weaver/internal/report"
)

type stubTranscriber struct {
	texts map[string]string
	fail  map[string]error
}

func (s *stubTranscriber) Transcribe(ctx context.Context, path string) (string, error) {
	name := filepath.Base(path)
	if err, ok := s.fail[name]; ok {
		return "", err
	}
	return s.texts[name], nil
}

const atlasAnswer = `{
  "shadow_id": "atlas_2025",
  "revealed_truth": {
    "programming_experience": "3-4 years",
    "programming_language": "Go",
    "skill_mastery": "intermediate",
    "leadership_claims": "fabricated",
    "team_experience": "individual contributor",
    "skills_and_other_keywords": ["grpc"]
  },
  "deception_patterns": [
    {"lie_type": "experience_inflation", "contradictory_claims": ["ten years", "three years"]}
  ]
}`

const eosAnswer = `{
  "shadow_id": "eos_2025",
  "revealed_truth": {
    "programming_experience": "1-2 years",
    "programming_language": "Python",
    "skill_mastery": "beginner",
    "leadership_claims": "authentic",
    "team_experience": "individual contributor",
    "skills_and_other_keywords": []
  },
  "deception_patterns": []
}`

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func seed(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("audio"), 0o644))
	}
	return dir
}

func build(t *testing.T, tr *stubTranscriber, gen analysis.Generator, rec *metrics.Recorder) pipeline.Pipeline {
	t.Helper()
	log := logger.Nop()
	return pipeline.New(pipeline.Deps{
		Grouper:    grouper.New(log),
		Aggregator: aggregator.New(tr, log),
		Analyzer:   analysis.New(gen, log),
		Writer:     report.NewWriter(log),
		Metrics:    rec,
		Logger:     log,
		Now:        func() time.Time { return fixedNow },
	})
}

func answerByShadowID(ctx context.Context, prompt string) (string, error) {
	switch {
	case strings.Contains(prompt, "atlas_2025"):
		return atlasAnswer, nil
	case strings.Contains(prompt, "eos_2025"):
		return eosAnswer, nil
	}
	return "", errors.New("unexpected prompt")
}

func readReport(t *testing.T, path string) report.Report {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var r report.Report
	require.NoError(t, json.Unmarshal(data, &r))
	return r
}

func TestRunEndToEnd(t *testing.T) {
	dir := seed(t, "atlas_2025_1.mp3", "atlas_2025_2.mp3", "eos_2025_1.wav", "notes.txt")
	out := t.TempDir()

	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(answerByShadowID).Times(2)

	tr := &stubTranscriber{texts: map[string]string{
		"atlas_2025_1.mp3": "hello ",
		"atlas_2025_2.mp3": "world",
		"eos_2025_1.wav":   "solo",
	}}
	rec := metrics.New()

	opts := pipeline.Options{
		InputDir:        dir,
		OutputPath:      filepath.Join(out, "analysis.json"),
		TranscriptsPath: filepath.Join(out, "transcripts.txt"),
		MetricsPath:     filepath.Join(out, "weaver.prom"),
	}
	summary, err := build(t, tr, gen, rec).Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Analyzed)
	assert.Zero(t, summary.Fallback)
	assert.Empty(t, summary.Failed)

	r := readReport(t, opts.OutputPath)
	require.Len(t, r.Analyses, 2)
	assert.Equal(t, "atlas", r.Analyses[0].Subject)
	assert.Equal(t, "atlas_2025", r.Analyses[0].ShadowID)
	assert.Equal(t, len("hello world"), r.Analyses[0].TranscriptLength)
	assert.Equal(t, "eos_2025", r.Analyses[1].ShadowID)
	assert.Equal(t, 4, r.Analyses[1].TranscriptLength)

	assert.Equal(t, "2025-03-01T12:00:00Z", r.Metadata.GeneratedAt)
	assert.Equal(t, 3, r.Metadata.TotalFilesFound)
	assert.Equal(t, 3, r.Metadata.TotalFilesProcessed)
	assert.Equal(t, 2, r.Metadata.TotalSubjects)
	assert.Equal(t, 2, r.Insights.TotalRecords)
	assert.Equal(t, "Medium (50.0% deception rate)", r.Insights.OverallCredibility)

	dump, err := os.ReadFile(opts.TranscriptsPath)
	require.NoError(t, err)
	assert.Contains(t, string(dump), "atlas_2025_1.mp3\nhello \n\n")
	assert.Contains(t, string(dump), "eos_2025_1.wav\nsolo\n\n")

	assert.Equal(t, float64(3), testutil.ToFloat64(rec.FilesTranscribed))
	assert.Equal(t, float64(2), testutil.ToFloat64(rec.Analyses.WithLabelValues(string(analysis.StatusAnalyzed))))
	assert.FileExists(t, opts.MetricsPath)
}

func TestRunIsolatesFailedSubject(t *testing.T) {
	dir := seed(t, "atlas_2025_1.mp3", "eos_2025_1.wav")
	out := filepath.Join(t.TempDir(), "analysis.json")

	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(answerByShadowID).Times(1)

	tr := &stubTranscriber{
		texts: map[string]string{"eos_2025_1.wav": "solo"},
		fail:  map[string]error{"atlas_2025_1.mp3": errors.New("corrupt header")},
	}
	rec := metrics.New()

	summary, err := build(t, tr, gen, rec).Run(context.Background(), pipeline.Options{InputDir: dir, OutputPath: out})
	require.NoError(t, err)
	require.Len(t, summary.Failed, 1)
	assert.Equal(t, "atlas", summary.Failed[0].Subject)
	assert.Contains(t, summary.Failed[0].Error, "corrupt header")

	r := readReport(t, out)
	require.Len(t, r.Analyses, 1)
	assert.Equal(t, "eos_2025", r.Analyses[0].ShadowID)
	require.Len(t, r.Metadata.FailedSubjects, 1)
	assert.Equal(t, float64(1), testutil.ToFloat64(rec.SubjectsFailed))
}

func TestRunFallbackWhenServiceDown(t *testing.T) {
	dir := seed(t, "atlas_2025_1.mp3")
	out := filepath.Join(t.TempDir(), "analysis.json")

	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("503 unavailable")).Times(1)

	tr := &stubTranscriber{texts: map[string]string{"atlas_2025_1.mp3": "hello"}}

	summary, err := build(t, tr, gen, nil).Run(context.Background(), pipeline.Options{InputDir: dir, OutputPath: out})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Fallback)

	r := readReport(t, out)
	require.Len(t, r.Analyses, 1)
	a := r.Analyses[0]
	assert.Equal(t, analysis.StatusFallback, a.Status)
	assert.Equal(t, "atlas_2025", a.Analysis.ShadowID)
	assert.Equal(t, analysis.SkillUnknown, a.Analysis.RevealedTruth.SkillMastery)
	require.Len(t, a.Analysis.DeceptionPatterns, 1)
	assert.Equal(t, analysis.LieAnalysisUnavailable, a.Analysis.DeceptionPatterns[0].LieType)
	assert.Equal(t, 1, r.Metadata.FallbackSubjects)
}

func TestRunEmptyDirectoryWritesNothing(t *testing.T) {
	dir := seed(t, "readme.md")
	out := filepath.Join(t.TempDir(), "analysis.json")

	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)

	_, err := build(t, &stubTranscriber{}, gen, nil).Run(context.Background(), pipeline.Options{InputDir: dir, OutputPath: out})
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindEmptyDirectory))
	assert.NoFileExists(t, out)
}

func TestRunMissingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)

	_, err := build(t, &stubTranscriber{}, gen, nil).Run(context.Background(), pipeline.Options{
		InputDir:   filepath.Join(t.TempDir(), "missing"),
		OutputPath: filepath.Join(t.TempDir(), "analysis.json"),
	})
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindInputDirectory))
}

func TestRunAllSubjectsFailed(t *testing.T) {
	dir := seed(t, "atlas_2025_1.mp3")
	out := filepath.Join(t.TempDir(), "analysis.json")

	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)

	tr := &stubTranscriber{fail: map[string]error{"atlas_2025_1.mp3": errors.New("boom")}}

	summary, err := build(t, tr, gen, nil).Run(context.Background(), pipeline.Options{InputDir: dir, OutputPath: out})
	require.ErrorIs(t, err, pipeline.ErrNoSubjectsAnalyzed)
	require.Len(t, summary.Failed, 1)
	assert.NoFileExists(t, out)
}
