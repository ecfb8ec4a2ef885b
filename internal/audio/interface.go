package audio

import "context"

// Decoder normalises any consumer audio container into mono 16-bit PCM WAV
type Decoder interface {
	Decode(ctx context.Context, src, dst string) error
}
