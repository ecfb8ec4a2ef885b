package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/truth-weaver/internal/apperror"
)

// Transcribe decodes audioPath into a scratch directory and runs whisper.cpp on it
func (w *implWhisper) Transcribe(ctx context.Context, audioPath string) (string, error) {
	workDir, err := os.MkdirTemp(w.tempDir, "transcribe-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			w.logger.Warn(ctx, "Failed to cleanup temp dir %s: %v", workDir, err)
		}
	}()

	const wavName, outputPrefix = "audio.wav", "transcript"

	if err := w.decoder.Decode(ctx, audioPath, filepath.Join(workDir, wavName)); err != nil {
		return "", err
	}

	// whisper runs inside workDir, so the model path must not be relative
	modelPath, err := filepath.Abs(w.cfg.ModelPath)
	if err != nil {
		return "", fmt.Errorf("resolve model path: %w", err)
	}

	w.logger.Info(ctx, "Transcribing with %d threads: %s", w.cfg.Threads, audioPath)

	// -otxt: plain text output, -of: output prefix, -np: no progress prints
	args := []string{
		"-m", modelPath,
		"-f", wavName,
		"-l", w.cfg.Language,
		"-t", strconv.Itoa(w.cfg.Threads),
		"-otxt",
		"-of", outputPrefix,
		"-np",
	}
	if w.cfg.Prompt != "" {
		args = append(args, "--prompt", w.cfg.Prompt)
	}

	if _, err := w.executor.ExecuteInDir(ctx, workDir, w.cfg.BinaryPath, args...); err != nil {
		return "", apperror.New(apperror.KindDecodeFailure, fmt.Errorf("whisper transcribe: %w", err)).WithPath(audioPath)
	}

	// whisper appends .txt to the -of prefix
	data, err := os.ReadFile(filepath.Join(workDir, outputPrefix+".txt"))
	if err != nil {
		return "", apperror.New(apperror.KindDecodeFailure, fmt.Errorf("read whisper output: %w", err)).WithPath(audioPath)
	}

	return flatten(string(data)), nil
}

func (w *implWhisper) Identity() string {
	return "whisper.cpp:" + filepath.Base(w.cfg.ModelPath) + ":" + w.cfg.Language
}

// flatten joins whisper's one-segment-per-line output into a single line
func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
