package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nguyentantai21042004/deck-flow/internal/logger"
)

func TestIsDocument(t *testing.T) {
	tests := map[string]bool{
		"/in/notes.txt":       true,
		"/in/brief.MD":        true,
		"/in/deck.pptx":       false,
		"/in/.notes.txt.swp":  false,
		"/in/.hidden.txt":     false,
		"/in/~$draft.md":      false,
		"/in/no_extension":    false,
		"/in/archive.txt.bak": false,
	}
	for path, want := range tests {
		if got := isDocument(path); got != want {
			t.Errorf("isDocument(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), func(context.Context, string) error { return nil }, logger.Nop(), 1)
	if err == nil {
		t.Fatal("expected error for missing inbox")
	}
}

func TestStartDispatchesDocuments(t *testing.T) {
	dir := t.TempDir()

	var (
		mu      sync.Mutex
		handled []string
		done    = make(chan struct{}, 4)
	)
	handler := func(_ context.Context, path string) error {
		mu.Lock()
		handled = append(handled, filepath.Base(path))
		mu.Unlock()
		done <- struct{}{}
		return errors.New("handler errors are only logged")
	}

	w, err := New(dir, handler, logger.Nop(), 2)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()
	w.(*implWatcher).settle = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- w.Start(ctx) }()

	// Give fsnotify a moment before creating files.
	time.Sleep(50 * time.Millisecond)
	for _, name := range []string{"a.txt", "ignored.pptx", "b.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("Cloud costs are rising."), 0644); err != nil {
			t.Fatal(err)
		}
	}

	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatalf("handler called %d times, want 2", i)
		}
	}

	cancel()
	if err := <-errc; !errors.Is(err, context.Canceled) {
		t.Errorf("Start() error = %v, want context.Canceled", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(handled) != 2 {
		t.Errorf("handled = %v, want a.txt and b.md", handled)
	}
	for _, name := range handled {
		if name == "ignored.pptx" {
			t.Error("non-document was dispatched")
		}
	}
}

func TestStartWaitsForInFlight(t *testing.T) {
	dir := t.TempDir()

	started := make(chan struct{})
	var finished atomic.Bool
	handler := func(context.Context, string) error {
		close(started)
		time.Sleep(100 * time.Millisecond)
		finished.Store(true)
		return nil
	}

	w, err := New(dir, handler, logger.Nop(), 1)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()
	w.(*implWatcher).settle = 0

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- w.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "slow.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("handler never started")
	}
	cancel()
	<-errc

	if !finished.Load() {
		t.Error("Start returned before the in-flight handler finished")
	}
}
