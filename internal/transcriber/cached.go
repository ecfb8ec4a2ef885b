package transcriber

import (
	"context"

	"github.com/nguyentantai21042004/truth-weaver/internal/cache"
)

// Transcribe serves a cached transcript when the file content was seen
// before with the same engine. Cache failures never fail a transcription.
func (c *implCached) Transcribe(ctx context.Context, audioPath string) (string, error) {
	hash, err := cache.HashFile(audioPath)
	if err != nil {
		c.logger.Warn(ctx, "Transcript cache disabled for %s: %v", audioPath, err)
		return c.next.Transcribe(ctx, audioPath)
	}
	key := cache.Key(hash, c.engine)

	text, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.Warn(ctx, "Transcript cache lookup failed for %s: %v", audioPath, err)
	}
	if ok {
		c.logger.Debug(ctx, "Transcript cache hit: %s", audioPath)
		if c.onHit != nil {
			c.onHit(audioPath)
		}
		return text, nil
	}

	text, err = c.next.Transcribe(ctx, audioPath)
	if err != nil {
		return "", err
	}

	if err := c.store.Put(ctx, key, text); err != nil {
		c.logger.Warn(ctx, "Failed to cache transcript for %s: %v", audioPath, err)
	}

	return text, nil
}
