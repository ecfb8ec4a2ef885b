package aggregator

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/nguyentantai21042004/truth-weaver/internal/apperror"
	"github.com/nguyentantai21042004/truth-weaver/internal/grouper"
)

// UnknownYear stands in when the first file name has no year segment
const UnknownYear = "unknown"

type FileMeta struct {
	Filename string `json:"filename"`
	Length   int    `json:"length"`
}

// Segment is the raw engine output for one file, kept for the audit dump
type Segment struct {
	Filename string
	Path     string
	Text     string
}

type Transcript struct {
	Subject  string
	Year     string
	ShadowID string
	// Text is every file's transcription in group order, joined by one space
	Text     string
	Files    []FileMeta
	Segments []Segment
}

// Aggregate transcribes files strictly in the given order. Any single failure
// fails the whole subject with a DecodeFailure carrying the subject name.
func (a *implAggregator) Aggregate(ctx context.Context, subject string, files []grouper.AudioFile) (*Transcript, error) {
	if len(files) == 0 {
		return nil, apperror.Newf(apperror.KindDecodeFailure, "no files to transcribe").WithSubject(subject)
	}

	year := Year(files[0].Name)
	t := &Transcript{
		Subject:  subject,
		Year:     year,
		ShadowID: ShadowID(subject, year),
	}

	parts := make([]string, 0, len(files))
	for i, f := range files {
		a.logger.Info(ctx, "[%s %d/%d] Transcribing: %s", subject, i+1, len(files), f.Name)

		raw, err := a.transcriber.Transcribe(ctx, f.Path)
		if err != nil {
			return nil, decodeFailure(err, subject, f.Path)
		}

		text := strings.TrimSpace(raw)
		if text != "" {
			parts = append(parts, text)
		} else {
			a.logger.Warn(ctx, "Empty transcription: %s", f.Name)
		}

		t.Files = append(t.Files, FileMeta{Filename: f.Name, Length: utf8.RuneCountInString(text)})
		t.Segments = append(t.Segments, Segment{Filename: f.Name, Path: f.Path, Text: raw})
	}

	t.Text = strings.TrimSpace(strings.Join(parts, " "))
	a.logger.Info(ctx, "Combined transcript for %s: %d files, %d characters", subject, len(files), utf8.RuneCountInString(t.Text))

	return t, nil
}

// Year returns the second delimiter-separated segment of a file name
func Year(filename string) string {
	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	parts := strings.Split(stem, grouper.Delimiter)
	if len(parts) < 2 || parts[1] == "" {
		return UnknownYear
	}
	return parts[1]
}

func ShadowID(subject, year string) string {
	return subject + grouper.Delimiter + year
}

func decodeFailure(err error, subject, path string) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) && appErr.Kind == apperror.KindDecodeFailure {
		tagged := appErr.WithSubject(subject)
		if tagged.Path == "" {
			tagged = tagged.WithPath(path)
		}
		return tagged
	}
	return apperror.New(apperror.KindDecodeFailure, err).WithSubject(subject).WithPath(path)
}
