package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/deck-flow/internal/logger"
)

// Time a new file is left alone before its handler runs, so editors and
// copy tools can finish writing it.
const defaultSettle = 500 * time.Millisecond

// New watches inboxDir and runs handler for each new .txt or .md file, at
// most maxConcurrent at a time.
func New(inboxDir string, handler EventHandler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(inboxDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &implWatcher{
		inboxDir:      inboxDir,
		handler:       handler,
		logger:        log,
		fsw:           fsw,
		maxConcurrent: maxConcurrent,
		slots:         make(chan struct{}, maxConcurrent),
		inFlight:      make(map[string]bool),
		settle:        defaultSettle,
	}, nil
}
