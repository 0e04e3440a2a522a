package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/deck-flow/internal/deck"
	"github.com/nguyentantai21042004/deck-flow/internal/speech"
)

// Silent clips stand in for failed narration so slides and audio stay aligned.
const (
	silenceRate  = 24000
	silenceBytes = 2
)

// buildVideo rasterizes the saved deck, voices one clip per rendered slide
// and muxes them into <output>/<stem>_presentation.mp4.
func (p *implPipeline) buildVideo(ctx context.Context, r *run, deckPath string, notes []string) (string, error) {
	r.progress.Step("Rasterizing slides")
	images, err := p.deps.Video.Rasterize(ctx, deckPath, filepath.Join(r.tempDir, "slides"))
	if err != nil {
		return "", fmt.Errorf("rasterize: %w", err)
	}
	r.logger.Info(ctx, "Rasterized %d slides", len(images))

	r.progress.Step("Synthesizing narration")
	audios, err := p.synthesizeClips(ctx, r, notes)
	if err != nil {
		return "", err
	}

	r.progress.Step("Encoding video")
	out := filepath.Join(p.cfg.Paths.Output, deck.VideoFileName(r.title))
	if err := p.deps.Video.Build(ctx, images, audios, out); err != nil {
		return "", fmt.Errorf("build: %w", err)
	}
	return out, nil
}

func (p *implPipeline) synthesizeClips(ctx context.Context, r *run, notes []string) ([]string, error) {
	dir := filepath.Join(r.tempDir, "audio")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create audio dir: %w", err)
	}

	clips := make([]string, 0, len(notes))
	for i, text := range notes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		base := filepath.Join(dir, fmt.Sprintf("clip_%02d", i))
		path, err := p.deps.Speech.Synthesize(ctx, text, base)
		if err != nil {
			r.logger.Warn(ctx, "Narration for slide %d failed, using silence: %v", i+1, err)
			if path, err = writeSilence(base+".wav", p.cfg.Video.DefaultDuration); err != nil {
				return nil, err
			}
		}
		clips = append(clips, path)
	}
	return clips, nil
}

func writeSilence(path string, seconds float64) (string, error) {
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	pcm := make([]byte, int(seconds*silenceRate)*silenceBytes)
	if err := speech.WriteWAV(f, pcm, silenceRate, 1, 16); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}
