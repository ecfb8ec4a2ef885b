package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/nguyentantai21042004/truth-weaver/internal/aggregator"
	"github.com/nguyentantai21042004/truth-weaver/internal/analysis"
	"github.com/nguyentantai21042004/truth-weaver/internal/audio"
	"github.com/nguyentantai21042004/truth-weaver/internal/cache"
	"github.com/nguyentantai21042004/truth-weaver/internal/config"
	"github.com/nguyentantai21042004/truth-weaver/internal/grouper"
	"github.com/nguyentantai21042004/truth-weaver/internal/logger"
	"github.com/nguyentantai21042004/truth-weaver/internal/metrics"
	"github.com/nguyentantai21042004/truth-weaver/internal/pipeline"
	"github.com/nguyentantai21042004/truth-weaver/internal/report"
	"github.com/nguyentantai21042004/truth-weaver/internal/transcriber"
	"github.com/nguyentantai21042004/truth-weaver/pkg/executor"
)

const defaultConfigPath = "config.yaml"

// loadConfig reads the config file, applies flag overrides, then validates
// and pulls API keys from the environment. The default config file may be
// absent; an explicitly named one may not.
func loadConfig(flags *globalFlags, explicitConfig bool, getenv func(string) string) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		if explicitConfig || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	override(&cfg.Paths.Input, flags.input)
	override(&cfg.Paths.Output, flags.output)
	override(&cfg.Paths.Transcripts, flags.transcripts)
	override(&cfg.Paths.Docx, flags.docx)
	override(&cfg.Analysis.Provider, flags.provider)
	override(&cfg.Cache.Path, flags.cachePath)
	override(&cfg.Metrics.Textfile, flags.metricsFile)
	override(&cfg.Logging.Level, flags.logLevel)
	override(&cfg.Logging.Format, flags.logFormat)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.LoadAPIKeys(getenv)

	return cfg, nil
}

func newLogger(cfg *config.Config) logger.Logger {
	return logger.NewWithWriter(cfg.Logging.Level, cfg.Logging.Format, os.Stdout)
}

// newGenerator picks the analysis backend named by the config
func newGenerator(cfg *config.Config, log logger.Logger) (analysis.Generator, error) {
	keys := cfg.Analysis.APIKeys
	switch cfg.Analysis.Provider {
	case config.ProviderOpenAI:
		if len(keys) == 0 {
			return nil, fmt.Errorf("no API key in $%s", cfg.Analysis.APIKeyEnv)
		}
		return analysis.NewOpenAI(keys[0], cfg.Analysis.Model, log)
	default:
		if len(keys) == 0 {
			return nil, fmt.Errorf("no API keys in $%s", cfg.Analysis.APIKeyEnv)
		}
		return analysis.NewGemini(keys, cfg.Analysis.Model, log)
	}
}

// app bundles the wired pipeline with the resources it holds open
type app struct {
	pipeline pipeline.Pipeline
	options  pipeline.Options
	store    cache.Store
}

func (a *app) Close() error {
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}

func (a *app) Run(ctx context.Context) (*pipeline.Summary, error) {
	return a.pipeline.Run(ctx, a.options)
}

func newApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*app, error) {
	gen, err := newGenerator(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("analysis provider %s: %w", cfg.Analysis.Provider, err)
	}

	exec := executor.New()
	rec := metrics.New()
	dec := audio.New(cfg.FFmpeg, exec, log)

	a := &app{}
	var tr transcriber.Transcriber = transcriber.NewWhisper(cfg.Whisper, cfg.Paths.Temp, dec, exec, log)
	if cfg.Cache.Path != "" {
		store, err := cache.Open(cfg.Cache.Path)
		if err != nil {
			return nil, fmt.Errorf("open transcript cache: %w", err)
		}
		a.store = store
		tr = transcriber.NewCached(tr, store, log, func(string) { rec.CacheHits.Inc() })
		log.Info(ctx, "Transcript cache: %s", cfg.Cache.Path)
	}

	a.pipeline = pipeline.New(pipeline.Deps{
		Grouper:    grouper.New(log),
		Aggregator: aggregator.New(tr, log),
		Analyzer:   analysis.New(gen, log),
		Writer:     report.NewWriter(log),
		Metrics:    rec,
		Logger:     log,
	})
	a.options = pipeline.Options{
		InputDir:        cfg.Paths.Input,
		OutputPath:      cfg.Paths.Output,
		TranscriptsPath: cfg.Paths.Transcripts,
		DocxPath:        cfg.Paths.Docx,
		MetricsPath:     cfg.Metrics.Textfile,
	}

	return a, nil
}
