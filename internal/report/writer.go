package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/truth-weaver/internal/aggregator"
	"github.com/nguyentantai21042004/truth-weaver/internal/apperror"
)

// WriteReport writes r as indented UTF-8 JSON, replacing any existing file
func (w *implWriter) WriteReport(ctx context.Context, path string, r *Report) error {
	data, err := Marshal(r)
	if err != nil {
		return apperror.New(apperror.KindPersistenceFailure, err).WithPath(path)
	}

	if err := writeFileAtomic(path, data, 0644); err != nil {
		return apperror.New(apperror.KindPersistenceFailure, fmt.Errorf("write report: %w", err)).WithPath(path)
	}

	w.logger.Info(ctx, "Report saved to: %s", path)
	return nil
}

// WriteTranscripts writes one block per file: name, raw text, blank line
func (w *implWriter) WriteTranscripts(ctx context.Context, path string, segments []aggregator.Segment) error {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Filename)
		b.WriteString("\n")
		b.WriteString(s.Text)
		b.WriteString("\n\n")
	}

	if err := writeFileAtomic(path, []byte(b.String()), 0644); err != nil {
		return apperror.New(apperror.KindPersistenceFailure, fmt.Errorf("write transcripts: %w", err)).WithPath(path)
	}

	w.logger.Info(ctx, "Transcripts saved to: %s", path)
	return nil
}

// Marshal encodes r with two-space indentation. HTML characters and
// non-ASCII text are left unescaped.
func Marshal(r *Report) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return buf.Bytes(), nil
}

func writeFileAtomic(path string, data []byte, mode fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".tmp_"+filepath.Base(path)+"_*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
