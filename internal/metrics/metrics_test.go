package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCounts(t *testing.T) {
	r := New()
	r.FilesTranscribed.Add(3)
	r.Analyses.WithLabelValues("analyzed").Inc()
	r.Analyses.WithLabelValues("fallback").Inc()
	r.Analyses.WithLabelValues("analyzed").Inc()

	assert.Equal(t, 3.0, testutil.ToFloat64(r.FilesTranscribed))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.Analyses.WithLabelValues("analyzed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Analyses.WithLabelValues("fallback")))
}

func TestIndependentRegistries(t *testing.T) {
	a := New()
	b := New()
	a.SubjectsFailed.Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.SubjectsFailed))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.SubjectsFailed))
}

func TestWriteTextfile(t *testing.T) {
	r := New()
	r.CacheHits.Inc()
	r.ObserveSubject(time.Now().Add(-2 * time.Second))

	path := filepath.Join(t.TempDir(), "truth_weaver.prom")
	require.NoError(t, r.WriteTextfile(path, time.Unix(1700000000, 0)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "truth_weaver_transcript_cache_hits_total 1")
	assert.Contains(t, text, "# TYPE truth_weaver_last_run_timestamp_seconds gauge")
	assert.True(t, strings.Contains(text, "truth_weaver_subject_duration_seconds_count 1"))
}

func TestGathererExposesRunMetrics(t *testing.T) {
	r := New()
	r.SubjectsFailed.Inc()
	r.Analyses.WithLabelValues("fallback").Inc()

	count, err := testutil.GatherAndCount(r.Gatherer(),
		"truth_weaver_subjects_failed_total",
		"truth_weaver_analyses_total",
	)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	expected := `
# HELP truth_weaver_subjects_failed_total Subjects skipped because a recording could not be transcribed
# TYPE truth_weaver_subjects_failed_total counter
truth_weaver_subjects_failed_total 1
`
	assert.NoError(t, testutil.GatherAndCompare(r.Gatherer(), strings.NewReader(expected), "truth_weaver_subjects_failed_total"))
}
