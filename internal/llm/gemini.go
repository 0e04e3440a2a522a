package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/deck-flow/internal/logger"
	"google.golang.org/genai"
)

type generateFunc func(ctx context.Context, key, model, prompt string, cfg *genai.GenerateContentConfig) (string, error)

type geminiClient struct {
	mu         sync.Mutex
	keys       []string
	currentKey int
	model      string
	defaults   callOptions
	logger     logger.Logger
	generate   generateFunc
}

// Complete calls Gemini, rotating API keys on 429 / quota errors.
func (g *geminiClient) Complete(ctx context.Context, prompt string, opts ...Option) (string, error) {
	o := applyOptions(g.defaults, opts)

	temperature := o.temperature
	cfg := &genai.GenerateContentConfig{Temperature: &temperature}
	if o.json {
		cfg.ResponseMIMEType = "application/json"
	}

	var lastErr error
	for range len(g.keys) {
		key, idx := g.key()

		text, err := g.generate(ctx, key, g.model, prompt, cfg)
		if err != nil {
			if isRateLimited(err) {
				g.logger.Warn(ctx, "Gemini key %d rate limited, rotating...", idx+1)
				g.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}
		return text, nil
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *geminiClient) key() (string, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.keys[g.currentKey], g.currentKey
}

func (g *geminiClient) rotateKey() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.currentKey = (g.currentKey + 1) % len(g.keys)
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func geminiGenerate(ctx context.Context, key, model, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), cfg)
	if err != nil {
		return "", err
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			text.WriteString(part.Text)
		}
		if text.Len() > 0 {
			return text.String(), nil
		}
	}
	return "", ErrEmptyResponse
}
