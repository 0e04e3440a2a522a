package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	gopresentation "github.com/VantageDataChat/GoPPT"
	"github.com/nguyentantai21042004/deck-flow/internal/deck"
	"github.com/nguyentantai21042004/deck-flow/internal/imagesearch"
)

// Render builds the title slide plus one slide per content slide and saves
// <OutputDir>/<stem>_McKinsey_Style.pptx. Content slide i is numbered i+2 in
// its footer since the title slide is number 1.
func (r *implRenderer) Render(ctx context.Context, d deck.Deck, opts Options) (string, error) {
	if len(d.Slides) == 0 {
		return "", deck.ErrNoSlides
	}

	p := gopresentation.New()
	p.GetLayout().SetCustomLayout(in(slideWidth), in(slideHeight))
	props := p.GetDocumentProperties()
	props.Title = opts.Topic
	props.Creator = r.brand

	title := p.GetActiveSlide()
	r.titleSlide(title, opts.Topic, d.Intro)
	setNotes(title, opts.Notes, 0)

	for i, content := range d.Slides {
		s := p.CreateSlide()
		s.SetBackground(gopresentation.NewFill().SetSolid(colorWhite))

		r.header(s, content.Title, content.Insight)
		r.footer(s, i+2)

		if content.Type == deck.TypeChart {
			if err := r.chartSlide(s, content); err != nil {
				r.logger.Warn(ctx, "Failed to create chart on slide %d: %v", i+1, err)
			}
		} else {
			r.bullets(s, content.Bullets)
			r.image(ctx, s, i, opts)
		}

		setNotes(s, opts.Notes, i+1)
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(opts.OutputDir, deck.DeckFileName(opts.Topic))
	if err := p.Save(path); err != nil {
		return "", fmt.Errorf("save presentation: %w", err)
	}

	r.logger.Info(ctx, "Presentation saved as: %s", path)
	return path, nil
}

// image embeds the slide's image, or the fallback image when it cannot be
// decoded. A slide without any usable image is left text only.
func (r *implRenderer) image(ctx context.Context, s *gopresentation.Slide, idx int, opts Options) {
	for _, path := range []string{opts.Images[idx], opts.FallbackImage} {
		if path == "" {
			continue
		}
		data, cfg, err := imagesearch.Prepare(path)
		if err != nil {
			r.logger.Warn(ctx, "Image validation error for %s: %v", path, err)
			continue
		}
		r.picture(s, data, cfg)
		return
	}
}

func setNotes(s *gopresentation.Slide, notes []string, idx int) {
	if idx < len(notes) && notes[idx] != "" {
		s.SetNotes(notes[idx])
	}
}
