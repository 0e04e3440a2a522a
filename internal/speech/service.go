package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AltairaLabs/PromptKit/runtime/tts"
	"github.com/nguyentantai21042004/deck-flow/internal/config"
	"github.com/nguyentantai21042004/deck-flow/internal/logger"
)

// serviceSynth adapts a hosted TTS service producing MP3.
type serviceSynth struct {
	svc    tts.Service
	config tts.SynthesisConfig
	logger logger.Logger
}

func newServiceSynth(svc tts.Service, cfg config.SpeechConfig, log logger.Logger) *serviceSynth {
	return &serviceSynth{
		svc: svc,
		config: tts.SynthesisConfig{
			Voice:  cfg.Voice,
			Format: tts.FormatMP3,
			Speed:  cfg.Speed,
			Model:  cfg.Model,
		},
		logger: log,
	}
}

func (s *serviceSynth) Synthesize(ctx context.Context, text, outPath string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyText
	}

	audio, err := s.svc.Synthesize(ctx, text, s.config)
	if err != nil {
		if errors.Is(err, tts.ErrEmptyText) {
			return "", ErrEmptyText
		}
		return "", fmt.Errorf("%s synthesize: %w", s.svc.Name(), err)
	}
	defer audio.Close()

	path := withExt(outPath, ".mp3")
	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	n, err := io.Copy(out, audio)
	if err != nil {
		out.Close()
		return "", fmt.Errorf("write audio: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", err
	}

	s.logger.Debug(ctx, "Audio created: %s (%d bytes)", path, n)
	return path, nil
}
