package speech

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/nguyentantai21042004/deck-flow/internal/logger"
	"google.golang.org/genai"
)

// Gemini speech output: 24 kHz, 16-bit, mono PCM.
const (
	geminiSampleRate = 24000
	geminiChannels   = 1
	geminiBitDepth   = 16
)

type speechFunc func(ctx context.Context, key, model, voice, text string) ([]byte, error)

type geminiSynth struct {
	key      string
	model    string
	voice    string
	logger   logger.Logger
	generate speechFunc
}

func (g *geminiSynth) Synthesize(ctx context.Context, text, outPath string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyText
	}

	pcm, err := g.generate(ctx, g.key, g.model, g.voice, text)
	if err != nil {
		return "", fmt.Errorf("gemini synthesize: %w", err)
	}
	if len(pcm) == 0 {
		return "", fmt.Errorf("gemini synthesize: no audio returned")
	}

	path := withExt(outPath, ".wav")
	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := WriteWAV(out, pcm, geminiSampleRate, geminiChannels, geminiBitDepth); err != nil {
		out.Close()
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", err
	}

	g.logger.Debug(ctx, "Audio created: %s (%d bytes pcm)", path, len(pcm))
	return path, nil
}

func geminiSpeech(ctx context.Context, key, model, voice, text string) ([]byte, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: voice},
			},
		},
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(text), cfg)
	if err != nil {
		return nil, err
	}

	var pcm []byte
	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		for _, part := range result.Candidates[0].Content.Parts {
			if part.InlineData != nil {
				pcm = append(pcm, part.InlineData.Data...)
			}
		}
	}
	return pcm, nil
}
