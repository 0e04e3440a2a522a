package render

import (
	"time"

	"github.com/nguyentantai21042004/deck-flow/internal/config"
	"github.com/nguyentantai21042004/deck-flow/internal/logger"
)

type implRenderer struct {
	brand    string
	subtitle string
	logger   logger.Logger
	now      func() time.Time
}

// New creates a Renderer using the McKinsey style theme.
func New(cfg config.DeckConfig, log logger.Logger) Renderer {
	return &implRenderer{
		brand:    cfg.Brand,
		subtitle: cfg.Subtitle,
		logger:   log,
		now:      time.Now,
	}
}
