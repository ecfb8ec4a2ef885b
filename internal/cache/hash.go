package cache

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"lukechampine.com/blake3"
)

// HashFile returns the hex blake3-256 digest of the file contents
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open for hashing: %w", err)
	}
	defer f.Close()

	return HashReader(f)
}

func HashReader(r io.Reader) (string, error) {
	h := blake3.New(32, nil)
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("calculating blake3 hash: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Key scopes a content hash to the engine that produced the transcript, so
// switching models or languages never serves a stale transcript.
func Key(contentHash, engine string) string {
	return engine + ":" + contentHash
}
