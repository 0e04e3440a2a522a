package speech

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/AltairaLabs/PromptKit/runtime/tts"
	"github.com/nguyentantai21042004/deck-flow/internal/config"
	"github.com/nguyentantai21042004/deck-flow/internal/logger"
)

// New creates the Synthesizer selected by cfg.Provider.
func New(cfg config.SpeechConfig, log logger.Logger) (Synthesizer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s speech provider needs an API key", cfg.Provider)
	}

	client := &http.Client{Timeout: 60 * time.Second}
	switch cfg.Provider {
	case "gemini":
		return &geminiSynth{
			key:      cfg.APIKey,
			model:    cfg.Model,
			voice:    cfg.Voice,
			logger:   log,
			generate: geminiSpeech,
		}, nil
	case "openai":
		return newServiceSynth(tts.NewOpenAI(cfg.APIKey, tts.WithOpenAIClient(client), tts.WithOpenAIModel(cfg.Model)), cfg, log), nil
	case "elevenlabs":
		return newServiceSynth(tts.NewElevenLabs(cfg.APIKey, tts.WithElevenLabsClient(client), tts.WithElevenLabsModel(cfg.Model)), cfg, log), nil
	}
	return nil, fmt.Errorf("unknown speech provider %q", cfg.Provider)
}

func withExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
