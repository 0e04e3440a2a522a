package imagesearch

import (
	"context"
	"net/http"
	"time"

	"github.com/nguyentantai21042004/deck-flow/internal/config"
	"github.com/nguyentantai21042004/deck-flow/internal/logger"
	"golang.org/x/time/rate"
)

const userAgent = "Mozilla/5.0 (PowerPoint Generator)"

type implFetcher struct {
	sources []Source
	dir     string
	client  *http.Client
	limiter *rate.Limiter
	logger  logger.Logger
}

// New creates a Fetcher writing into dir. Providers without credentials are
// left out of the chain.
func New(ctx context.Context, cfg config.ImagesConfig, dir string, log logger.Logger) Fetcher {
	client := &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second}

	var sources []Source
	if cfg.GoogleAPIKey != "" && cfg.GoogleCSEID != "" {
		g, err := NewGoogle(ctx, cfg.GoogleAPIKey, cfg.GoogleCSEID)
		if err != nil {
			log.Warn(ctx, "Google image search disabled: %v", err)
		} else {
			sources = append(sources, g)
		}
	} else {
		log.Debug(ctx, "Google API credentials not configured")
	}

	if cfg.UnsplashKey != "" {
		sources = append(sources, NewUnsplash(client, cfg.UnsplashBaseURL, cfg.UnsplashKey))
	} else {
		log.Debug(ctx, "Unsplash API key not configured")
	}

	return NewWithSources(sources, dir, client, cfg.RequestsPerSecond, log)
}

// NewWithSources builds a Fetcher over an explicit source chain.
func NewWithSources(sources []Source, dir string, client *http.Client, rps float64, log logger.Logger) Fetcher {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &implFetcher{
		sources: sources,
		dir:     dir,
		client:  client,
		limiter: rate.NewLimiter(limit, 1),
		logger:  log,
	}
}
