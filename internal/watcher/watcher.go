package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/deck-flow/internal/logger"
)

var documentExts = map[string]bool{".txt": true, ".md": true}

type implWatcher struct {
	inboxDir      string
	handler       EventHandler
	logger        logger.Logger
	fsw           *fsnotify.Watcher
	maxConcurrent int
	slots         chan struct{}
	settle        time.Duration

	mu       sync.Mutex
	inFlight map[string]bool
	wg       sync.WaitGroup
}

func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Watching %s for .txt/.md documents (max concurrent: %d)", w.inboxDir, w.maxConcurrent)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for in-flight decks to finish...")
			w.wg.Wait()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				w.wg.Wait()
				return fmt.Errorf("watcher events channel closed")
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			if !isDocument(event.Name) {
				w.logger.Debug(ctx, "Ignoring %s", event.Name)
				continue
			}
			if err := w.dispatch(ctx, event.Name); err != nil {
				w.wg.Wait()
				return err
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				w.wg.Wait()
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// dispatch waits for a free slot and runs the handler in the background.
// A path already being handled is skipped.
func (w *implWatcher) dispatch(ctx context.Context, path string) error {
	w.mu.Lock()
	if w.inFlight[path] {
		w.mu.Unlock()
		return nil
	}
	w.inFlight[path] = true
	w.mu.Unlock()

	w.logger.Info(ctx, "New document detected: %s", path)

	select {
	case w.slots <- struct{}{}:
	case <-ctx.Done():
		w.release(path)
		return ctx.Err()
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() { <-w.slots }()
		defer w.release(path)

		select {
		case <-time.After(w.settle):
		case <-ctx.Done():
			return
		}

		if err := w.handler(ctx, path); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", path, err)
		}
	}()
	return nil
}

func (w *implWatcher) release(path string) {
	w.mu.Lock()
	delete(w.inFlight, path)
	w.mu.Unlock()
}

func (w *implWatcher) Stop() error {
	return w.fsw.Close()
}

// isDocument accepts .txt and .md files, skipping hidden and editor lock
// files.
func isDocument(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || strings.HasPrefix(base, "~$") {
		return false
	}
	return documentExts[strings.ToLower(filepath.Ext(base))]
}
