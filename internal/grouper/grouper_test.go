package grouper

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/truth-weaver/internal/apperror"
	"github.com/nguyentantai21042004/truth-weaver/internal/logger"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("x"), 0644))
	}
}

func names(files []AudioFile) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.Name)
	}
	return out
}

func TestScanGroupsBySubject(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir,
		"atlas_2025_2.MP3",
		"atlas_2024_1.wav",
		"atlas_2025_1.mp3",
		"eos_2025_1.m4a",
		"notes.txt",
		".hidden_2025_1.mp3",
	)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested_2025_1.mp3"), 0755))

	res, err := New(logger.Nop()).Scan(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"atlas", "eos"}, res.Subjects)
	assert.Equal(t, 4, res.Total)
	assert.Equal(t, []string{"atlas_2024_1.wav", "atlas_2025_1.mp3", "atlas_2025_2.MP3"}, names(res.Groups["atlas"]))
	assert.Equal(t, []string{"eos_2025_1.m4a"}, names(res.Groups["eos"]))
}

func TestScanIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b_1_3.ogg", "b_1_1.flac", "b_1_2.aac", "a_9_9.mp3")

	g := New(logger.Nop())
	first, err := g.Scan(context.Background(), dir)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := g.Scan(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, []string{"b_1_1.flac", "b_1_2.aac", "b_1_3.ogg"}, names(first.Groups["b"]))
}

func TestScanEmptyDirectory(t *testing.T) {
	tests := []struct {
		name  string
		files []string
	}{
		{"no files", nil},
		{"only non-audio files", []string{"readme.md", "atlas_2025_1.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			touch(t, dir, tt.files...)

			res, err := New(logger.Nop()).Scan(context.Background(), dir)
			require.Error(t, err)
			assert.True(t, apperror.Is(err, apperror.KindEmptyDirectory))
			require.NotNil(t, res)
			assert.Empty(t, res.Groups)
		})
	}
}

func TestScanMissingDirectory(t *testing.T) {
	res, err := New(logger.Nop()).Scan(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.Nil(t, res)
	assert.True(t, apperror.Is(err, apperror.KindInputDirectory))
}

func TestScanSkipsFilesWithoutSubject(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "_2025_1.mp3", "solo.wav")

	res, err := New(logger.Nop()).Scan(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"solo"}, res.Subjects)
	assert.Equal(t, []string{filepath.Join(dir, "_2025_1.mp3")}, res.Skipped)
}

func TestParse(t *testing.T) {
	tests := []struct {
		path     string
		subject  string
		groupKey string
	}{
		{"voices/atlas_2025_1.mp3", "atlas", "atlas_2025"},
		{"atlas_2025.wav", "atlas", "atlas_2025"},
		{"solo.mp3", "solo", "solo"},
		{"a_b_c_d.ogg", "a", "a_b"},
		{"_2025_1.mp3", "", "_2025"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			f := Parse(tt.path)
			assert.Equal(t, tt.subject, f.Subject)
			assert.Equal(t, tt.groupKey, f.GroupKey)
			assert.Equal(t, filepath.Base(tt.path), f.Name)
		})
	}
}

func TestIsAudioFile(t *testing.T) {
	for _, name := range []string{"a.mp3", "a.WAV", "a.M4a", "a.flac", "a.aac", "a.ogg"} {
		assert.True(t, IsAudioFile(name), name)
	}
	for _, name := range []string{"a.txt", "a", "a.mp4", "mp3"} {
		assert.False(t, IsAudioFile(name), name)
	}
}
