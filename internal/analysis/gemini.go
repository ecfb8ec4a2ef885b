package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/truth-weaver/internal/logger"
)

type implGemini struct {
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
	clients    map[int]*genai.Client

	// generate is swapped in tests
	generate func(ctx context.Context, keyIndex int, prompt string) (string, error)
}

// NewGemini creates a Generator that rotates through the supplied Gemini API
// keys when one of them hits a rate limit or quota.
func NewGemini(apiKeys []string, model string, log logger.Logger) (Generator, error) {
	if len(apiKeys) == 0 {
		return nil, errors.New("gemini: at least one API key is required")
	}
	g := &implGemini{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
		clients: make(map[int]*genai.Client),
	}
	g.generate = g.callGemini
	return g, nil
}

// Generate sends prompt once per key at most. Only rate-limit errors move on
// to the next key; anything else is returned straight away.
func (g *implGemini) Generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for range len(g.apiKeys) {
		text, err := g.generate(ctx, g.currentKey, prompt)
		if err == nil {
			return text, nil
		}
		if !isQuotaError(err) {
			return "", err
		}

		g.logger.Warn(ctx, "Key %d rate limited, rotating...", g.currentKey+1)
		lastErr = err
		g.rotateKey()
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *implGemini) callGemini(ctx context.Context, keyIndex int, prompt string) (string, error) {
	client, err := g.client(ctx, keyIndex)
	if err != nil {
		return "", err
	}

	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text.WriteString(part.Text)
			}
		}
		return text.String(), nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}

func (g *implGemini) client(ctx context.Context, keyIndex int) (*genai.Client, error) {
	if c, ok := g.clients[keyIndex]; ok {
		return c, nil
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKeys[keyIndex],
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	g.clients[keyIndex] = c
	return c, nil
}

func (g *implGemini) rotateKey() {
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
}

func isQuotaError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(strings.ToLower(msg), "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
