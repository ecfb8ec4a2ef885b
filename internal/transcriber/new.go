package transcriber

import (
	"github.com/nguyentantai21042004/truth-weaver/internal/audio"
	"github.com/nguyentantai21042004/truth-weaver/internal/cache"
	"github.com/nguyentantai21042004/truth-weaver/internal/config"
	"github.com/nguyentantai21042004/truth-weaver/internal/logger"
	"github.com/nguyentantai21042004/truth-weaver/pkg/executor"
)

type implWhisper struct {
	cfg      config.WhisperConfig
	tempDir  string
	decoder  audio.Decoder
	executor executor.Executor
	logger   logger.Logger
}

// NewWhisper creates a whisper.cpp CLI backed Transcriber
func NewWhisper(cfg config.WhisperConfig, tempDir string, dec audio.Decoder, exec executor.Executor, log logger.Logger) Transcriber {
	return &implWhisper{
		cfg:      cfg,
		tempDir:  tempDir,
		decoder:  dec,
		executor: exec,
		logger:   log,
	}
}

type implCached struct {
	next   Transcriber
	store  cache.Store
	engine string
	logger logger.Logger
	onHit  func(audioPath string)
}

// NewCached wraps next with a transcript cache. onHit may be nil.
func NewCached(next Transcriber, store cache.Store, log logger.Logger, onHit func(audioPath string)) Transcriber {
	engine := "default"
	if id, ok := next.(Identity); ok {
		engine = id.Identity()
	}
	return &implCached{
		next:   next,
		store:  store,
		engine: engine,
		logger: log,
		onHit:  onHit,
	}
}
