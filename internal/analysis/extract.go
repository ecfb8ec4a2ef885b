package analysis

import (
	"encoding/json"
	"fmt"
	"strings"
)

const jsonFence = "```json"

// ExtractJSON picks the JSON candidate out of a model response: the body of a
// ```json fence, else the first '{' through the last '}', else the whole text.
func ExtractJSON(response string) string {
	s := strings.TrimSpace(response)

	if i := strings.Index(s, jsonFence); i >= 0 {
		body := s[i+len(jsonFence):]
		if end := strings.Index(body, "```"); end >= 0 {
			body = body[:end]
		}
		return strings.TrimSpace(body)
	}

	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start >= 0 && end > start {
		return s[start : end+1]
	}

	return s
}

// Parse decodes a model response into a normalised Record for shadowID
func Parse(response, shadowID string) (Record, error) {
	candidate := ExtractJSON(response)
	if candidate == "" {
		return Record{}, fmt.Errorf("empty model response")
	}

	if !isObject([]byte(candidate)) {
		return Record{}, fmt.Errorf("model response is not a JSON object (len=%d)", len(candidate))
	}

	var rec Record
	if err := json.Unmarshal([]byte(candidate), &rec); err != nil {
		return Record{}, fmt.Errorf("unmarshal analysis (len=%d): %w", len(candidate), err)
	}

	rec.normalize(shadowID)
	return rec, nil
}
