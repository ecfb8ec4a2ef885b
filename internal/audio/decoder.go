package audio

import (
	"context"
	"fmt"
	"strconv"

	"github.com/nguyentantai21042004/truth-weaver/internal/apperror"
)

// Decode converts src to a WAV file at dst.
// -vn drops cover art streams that some mp3/m4a files carry
func (d *implDecoder) Decode(ctx context.Context, src, dst string) error {
	d.logger.Debug(ctx, "Decoding audio: %s -> %s", src, dst)

	args := []string{
		"-nostdin",
		"-threads", "0",
		"-i", src,
		"-vn",
		"-ar", strconv.Itoa(d.cfg.SampleRate),
		"-ac", strconv.Itoa(d.cfg.Channels),
		"-c:a", "pcm_s16le",
		"-y",
		dst,
	}

	if _, err := d.executor.Execute(ctx, d.cfg.BinaryPath, args...); err != nil {
		return apperror.New(apperror.KindDecodeFailure, fmt.Errorf("ffmpeg decode: %w", err)).WithPath(src)
	}

	return nil
}
