package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/deck-flow/internal/composer"
	"github.com/nguyentantai21042004/deck-flow/internal/config"
	"github.com/nguyentantai21042004/deck-flow/internal/imagesearch"
	"github.com/nguyentantai21042004/deck-flow/internal/llm"
	"github.com/nguyentantai21042004/deck-flow/internal/logger"
	"github.com/nguyentantai21042004/deck-flow/internal/pipeline"
	"github.com/nguyentantai21042004/deck-flow/internal/publish"
	"github.com/nguyentantai21042004/deck-flow/internal/render"
	"github.com/nguyentantai21042004/deck-flow/internal/speech"
	"github.com/nguyentantai21042004/deck-flow/internal/video"
	"github.com/nguyentantai21042004/deck-flow/pkg/executor"
)

// app is the dependency graph shared by every subcommand.
type app struct {
	cfg       *config.Config
	log       logger.Logger
	pipeline  pipeline.Pipeline
	publisher publish.Publisher
}

func newApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*app, error) {
	if err := ensureDirectories(cfg); err != nil {
		return nil, err
	}

	client, err := llm.New(cfg.LLM, log.Named("llm"))
	if err != nil {
		return nil, fmt.Errorf("llm: %w", err)
	}

	deps := pipeline.Deps{
		Composer: composer.New(client, log.Named("composer")),
		Renderer: render.New(cfg.Deck, log.Named("render")),
	}

	if cfg.Images.Enabled {
		deps.Images = imagesearch.New(ctx, cfg.Images, cfg.Paths.Images, log.Named("images"))
	}

	if synth, err := speech.New(cfg.Speech, log.Named("speech")); err != nil {
		log.Debug(ctx, "Narrated video unavailable: %v", err)
	} else {
		deps.Speech = synth
		deps.Video = video.New(cfg.Video, cfg.Paths.Temp, executor.New(), log.Named("video"))
	}

	deps.Publisher, err = publish.New(ctx, cfg.Publish, log.Named("publish"))
	if err != nil {
		return nil, fmt.Errorf("publish: %w", err)
	}

	return &app{
		cfg:       cfg,
		log:       log,
		pipeline:  pipeline.New(cfg, deps, log),
		publisher: deps.Publisher,
	}, nil
}

func (a *app) Close() error {
	return a.publisher.Close()
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Output,
		cfg.Paths.Images,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
