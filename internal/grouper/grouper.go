package grouper

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/truth-weaver/internal/apperror"
)

// Delimiter separates the subject, year and index parts of a recording name
const Delimiter = "_"

// SupportedExtensions is the audio allow-list, compared case-insensitively
var SupportedExtensions = []string{".mp3", ".wav", ".m4a", ".flac", ".aac", ".ogg", ".opus", ".wma", ".webm"}

// AudioFile is one discovered recording
type AudioFile struct {
	Path     string
	Name     string
	Subject  string
	GroupKey string
}

// Result holds the subject groups of one directory scan
type Result struct {
	// Groups maps subject name to its files sorted by path
	Groups map[string][]AudioFile
	// Subjects lists the group keys in sorted order
	Subjects []string
	// Skipped lists audio files whose name yields no subject
	Skipped []string
	Total   int
}

// Scan lists dir non-recursively. An EmptyDirectory error is returned together
// with an empty (non-nil) Result when no audio file qualifies.
func (g *implGrouper) Scan(ctx context.Context, dir string) (*Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, apperror.New(apperror.KindInputDirectory, err).WithPath(dir)
	}

	res := &Result{Groups: make(map[string][]AudioFile)}

	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if !IsAudioFile(e.Name()) {
			g.logger.Debug(ctx, "Ignoring non-audio file: %s", e.Name())
			continue
		}

		file := Parse(filepath.Join(dir, e.Name()))
		if file.Subject == "" {
			g.logger.Warn(ctx, "Skipping %s: file name has no subject prefix", e.Name())
			res.Skipped = append(res.Skipped, file.Path)
			continue
		}

		res.Groups[file.Subject] = append(res.Groups[file.Subject], file)
		res.Total++
	}

	for subject, files := range res.Groups {
		sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
		res.Subjects = append(res.Subjects, subject)
	}
	sort.Strings(res.Subjects)

	if res.Total == 0 {
		return res, apperror.Newf(apperror.KindEmptyDirectory, "no audio files found").WithPath(dir)
	}

	g.logger.Info(ctx, "Found %d audio files across %d subjects in %s", res.Total, len(res.Subjects), dir)
	return res, nil
}

// IsAudioFile checks the extension against SupportedExtensions
func IsAudioFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedExtensions {
		if ext == format {
			return true
		}
	}
	return false
}

// Parse derives subject and group key from a `<subject>_<year>_<index>.<ext>` path.
// A stem without delimiter is its own subject and group key.
func Parse(path string) AudioFile {
	name := filepath.Base(path)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	parts := strings.Split(stem, Delimiter)

	groupKey := stem
	if len(parts) >= 2 {
		groupKey = parts[0] + Delimiter + parts[1]
	}

	return AudioFile{
		Path:     path,
		Name:     name,
		Subject:  parts[0],
		GroupKey: groupKey,
	}
}
