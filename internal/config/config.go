package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	Whisper  WhisperConfig  `yaml:"whisper"`
	FFmpeg   FFmpegConfig   `yaml:"ffmpeg"`
	Paths    PathsConfig    `yaml:"paths"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Cache    CacheConfig    `yaml:"cache"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Watch    WatchConfig    `yaml:"watch"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	SampleRate int    `yaml:"sample_rate"`
	Channels   int    `yaml:"channels"`
}

type PathsConfig struct {
	Input       string `yaml:"input"`
	Output      string `yaml:"output"`
	Transcripts string `yaml:"transcripts"`
	Docx        string `yaml:"docx"`
	Temp        string `yaml:"temp"`
}

type AnalysisConfig struct {
	Provider  string `yaml:"provider"`
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"api_key_env"`

	// APIKeys is filled from the environment, never from the file.
	APIKeys []string `yaml:"-"`
}

type CacheConfig struct {
	Path string `yaml:"path"`
}

type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a YAML config file. A missing file yields an empty Config so
// that flags alone can drive a run; Validate fills the defaults either way.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadAPIKeys reads the comma-separated keys from the configured env variable.
func (c *Config) LoadAPIKeys(getenv func(string) string) {
	raw := getenv(c.Analysis.APIKeyEnv)
	c.Analysis.APIKeys = nil
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			c.Analysis.APIKeys = append(c.Analysis.APIKeys, k)
		}
	}
}

func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}

	c.Analysis.Provider = strings.ToLower(strings.TrimSpace(c.Analysis.Provider))
	switch c.Analysis.Provider {
	case "":
		c.Analysis.Provider = ProviderGemini
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("analysis.provider %q is not supported (want gemini or openai)", c.Analysis.Provider)
	}

	if c.Paths.Output == "" {
		c.Paths.Output = "truth_weaver_analysis.json"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = os.TempDir()
	}
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.ModelPath == "" {
		c.Whisper.ModelPath = "models/ggml-base.bin"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.SampleRate == 0 {
		c.FFmpeg.SampleRate = 16000
	}
	if c.FFmpeg.Channels == 0 {
		c.FFmpeg.Channels = 1
	}
	if c.Analysis.Model == "" {
		if c.Analysis.Provider == ProviderOpenAI {
			c.Analysis.Model = "gpt-4o-mini"
		} else {
			c.Analysis.Model = "gemini-2.5-flash"
		}
	}
	if c.Analysis.APIKeyEnv == "" {
		if c.Analysis.Provider == ProviderOpenAI {
			c.Analysis.APIKeyEnv = "OPENAI_API_KEY"
		} else {
			c.Analysis.APIKeyEnv = "GEMINI_API_KEYS"
		}
	}
	if c.Watch.Debounce <= 0 {
		c.Watch.Debounce = 2 * time.Second
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	return nil
}
