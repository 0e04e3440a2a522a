package video

import (
	"github.com/nguyentantai21042004/deck-flow/internal/config"
	"github.com/nguyentantai21042004/deck-flow/internal/logger"
	"github.com/nguyentantai21042004/deck-flow/pkg/executor"
)

type implVideo struct {
	cfg      config.VideoConfig
	tempDir  string
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Video backed by the office tools and ffmpeg found through exec.
func New(cfg config.VideoConfig, tempDir string, exec executor.Executor, log logger.Logger) Video {
	return &implVideo{
		cfg:      cfg,
		tempDir:  tempDir,
		executor: exec,
		logger:   log,
	}
}
