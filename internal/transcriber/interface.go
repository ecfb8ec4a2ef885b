package transcriber

import "context"

// Transcriber maps one audio file to plain text
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Identity names the model configuration behind a Transcriber; cached
// transcripts are only reused for the same identity
type Identity interface {
	Identity() string
}
