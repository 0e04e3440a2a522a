package llm

import (
	"fmt"
	"net/http"
	"time"

	"github.com/nguyentantai21042004/deck-flow/internal/config"
	"github.com/nguyentantai21042004/deck-flow/internal/logger"
	"github.com/sashabaranov/go-openai"
)

// New builds the Client selected by cfg.Provider.
func New(cfg config.LLMConfig, log logger.Logger) (Client, error) {
	defaults := callOptions{
		temperature: cfg.SamplingTemperature(),
		maxTokens:   cfg.MaxTokens,
	}

	switch cfg.Provider {
	case "gemini":
		if len(cfg.GeminiKeys) == 0 {
			return nil, fmt.Errorf("gemini provider needs at least one key (GEMINI_API_KEYS)")
		}
		return &geminiClient{
			keys:     cfg.GeminiKeys,
			model:    cfg.Model,
			defaults: defaults,
			logger:   log,
			generate: geminiGenerate,
		}, nil

	case "groq", "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("%s provider needs an API key", cfg.Provider)
		}
		oc := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			oc.BaseURL = cfg.BaseURL
		}
		oc.HTTPClient = &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second}
		return &openAIClient{
			client:     openai.NewClientWithConfig(oc),
			model:      cfg.Model,
			defaults:   defaults,
			logger:     log,
			maxRetries: 3,
			retryDelay: 2 * time.Second,
		}, nil
	}

	return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
}
