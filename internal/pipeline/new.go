package pipeline

import (
	"github.com/nguyentantai21042004/deck-flow/internal/composer"
	"github.com/nguyentantai21042004/deck-flow/internal/config"
	"github.com/nguyentantai21042004/deck-flow/internal/imagesearch"
	"github.com/nguyentantai21042004/deck-flow/internal/logger"
	"github.com/nguyentantai21042004/deck-flow/internal/publish"
	"github.com/nguyentantai21042004/deck-flow/internal/render"
	"github.com/nguyentantai21042004/deck-flow/internal/speech"
	"github.com/nguyentantai21042004/deck-flow/internal/video"
)

// Deps are the collaborators of a run. Images, Speech and Video may be nil;
// the matching steps are then skipped.
type Deps struct {
	Composer  composer.Composer
	Images    imagesearch.Fetcher
	Renderer  render.Renderer
	Speech    speech.Synthesizer
	Video     video.Video
	Publisher publish.Publisher
}

type implPipeline struct {
	cfg         *config.Config
	deps        Deps
	logger      logger.Logger
	newProgress func(steps int) progress
}

// New creates a Pipeline.
func New(cfg *config.Config, deps Deps, log logger.Logger) Pipeline {
	if deps.Publisher == nil {
		deps.Publisher = publish.Nop()
	}
	p := &implPipeline{
		cfg:    cfg,
		deps:   deps,
		logger: log,
	}
	p.newProgress = func(steps int) progress {
		return newProgress(cfg.UI.Progress, steps, "deck-flow")
	}
	return p
}
