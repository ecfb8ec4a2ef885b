package audio

import (
	"github.com/nguyentantai21042004/truth-weaver/internal/config"
	"github.com/nguyentantai21042004/truth-weaver/internal/logger"
	"github.com/nguyentantai21042004/truth-weaver/pkg/executor"
)

type implDecoder struct {
	cfg      config.FFmpegConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates an ffmpeg backed Decoder
func New(cfg config.FFmpegConfig, exec executor.Executor, log logger.Logger) Decoder {
	if cfg.BinaryPath == "" {
		cfg.BinaryPath = "ffmpeg"
	}
	if cfg.SampleRate == 0 {
		cfg.SampleRate = 16000
	}
	if cfg.Channels == 0 {
		cfg.Channels = 1
	}
	return &implDecoder{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
