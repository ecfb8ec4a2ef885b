// Package metrics counts what one batch run did and can dump the numbers as a
// node-exporter textfile, the usual way batch jobs expose Prometheus metrics.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Recorder struct {
	registry *prometheus.Registry

	FilesTranscribed prometheus.Counter
	CacheHits        prometheus.Counter
	SubjectsFailed   prometheus.Counter
	Analyses         *prometheus.CounterVec
	SubjectDuration  prometheus.Histogram
	LastRun          prometheus.Gauge
}

// New creates a Recorder on its own registry so repeated runs in watch mode
// and parallel tests never collide on the default registerer
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		FilesTranscribed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "truth_weaver_files_transcribed_total",
			Help: "Audio files transcribed successfully",
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "truth_weaver_transcript_cache_hits_total",
			Help: "Transcriptions served from the transcript cache",
		}),
		SubjectsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "truth_weaver_subjects_failed_total",
			Help: "Subjects skipped because a recording could not be transcribed",
		}),
		Analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "truth_weaver_analyses_total",
			Help: "Subject analyses by outcome status",
		}, []string{"status"}),
		SubjectDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "truth_weaver_subject_duration_seconds",
			Help:    "Wall time spent per subject, transcription plus analysis",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
		LastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "truth_weaver_last_run_timestamp_seconds",
			Help: "Unix time of the last completed run",
		}),
	}

	r.registry.MustRegister(
		r.FilesTranscribed,
		r.CacheHits,
		r.SubjectsFailed,
		r.Analyses,
		r.SubjectDuration,
		r.LastRun,
	)

	return r
}

func (r *Recorder) ObserveSubject(start time.Time) {
	r.SubjectDuration.Observe(time.Since(start).Seconds())
}

func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile stamps the run time and writes every metric to path
func (r *Recorder) WriteTextfile(path string, now time.Time) error {
	r.LastRun.Set(float64(now.Unix()))
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
