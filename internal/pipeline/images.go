package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/deck-flow/internal/deck"
	"github.com/nguyentantai21042004/deck-flow/internal/imagesearch"
	"golang.org/x/sync/errgroup"
)

// fetchImages looks up one picture per bullet slide, ImageWorkers at a time.
// Fetch never fails, so the group only bounds concurrency.
func (p *implPipeline) fetchImages(ctx context.Context, r *run) (map[int]string, string) {
	if p.deps.Images == nil {
		return nil, ""
	}

	fallback, err := imagesearch.Placeholder(p.cfg.Paths.Images, r.title)
	if err != nil {
		r.logger.Warn(ctx, "Failed to create placeholder image: %v", err)
	}

	var (
		mu     sync.Mutex
		images = make(map[int]string)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, p.cfg.Performance.ImageWorkers))
	for i, s := range r.deck.Slides {
		if s.Type == deck.TypeChart {
			continue
		}
		prompt := strings.TrimSpace(s.Title + " " + s.Insight)
		label := fmt.Sprintf("%s_slide%d", r.id[:8], i+1)

		g.Go(func() error {
			path := p.deps.Images.Fetch(gctx, r.title, prompt, label)
			mu.Lock()
			images[i] = path
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	r.logger.Info(ctx, "Fetched %d slide images", len(images))
	return images, fallback
}
