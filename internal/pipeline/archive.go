package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

func (p *implPipeline) ProcessFile(ctx context.Context, path string) error {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting deck from document: %s", path)
	p.logger.Info(ctx, "========================================")

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		p.logger.Warn(ctx, "Document is empty, archiving without a deck: %s", path)
		return p.archive(ctx, path)
	}

	result, err := p.RunParagraph(ctx, ParagraphRequest{
		Text:      text,
		MaxSlides: p.cfg.Deck.MaxSlides,
		Video:     p.cfg.Video.Enabled,
		Handout:   p.cfg.Deck.Handout,
	})
	if err != nil {
		return fmt.Errorf("generate deck: %w", err)
	}

	if err := p.archive(ctx, path); err != nil {
		p.logger.Warn(ctx, "Failed to move document to archived folder: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Deck completed: %s", result.DeckPath)
	if result.VideoPath != "" {
		p.logger.Info(ctx, "Video: %s", result.VideoPath)
	}
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime).Round(time.Second))
	p.logger.Info(ctx, "========================================")
	return nil
}

// archive moves a processed document into the archived folder, prefixing a
// timestamp when the name is taken.
func (p *implPipeline) archive(ctx context.Context, path string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	dest := filepath.Join(p.cfg.Paths.Archived, filepath.Base(path))
	if _, err := os.Stat(dest); err == nil {
		dest = filepath.Join(p.cfg.Paths.Archived, time.Now().Format("20060102-150405")+"_"+filepath.Base(path))
	}

	p.logger.Info(ctx, "Archiving: %s -> %s", path, dest)
	if err := os.Rename(path, dest); err == nil {
		return nil
	}

	// Rename fails across filesystems; fall back to copy and remove.
	if err := copyFile(path, dest); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return os.Remove(path)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("write destination: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("write destination: %w", err)
	}
	return out.Close()
}
