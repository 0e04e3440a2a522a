package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nguyentantai21042004/deck-flow/internal/composer"
	"github.com/nguyentantai21042004/deck-flow/internal/deck"
	"github.com/nguyentantai21042004/deck-flow/internal/handout"
	"github.com/nguyentantai21042004/deck-flow/internal/logger"
	"github.com/nguyentantai21042004/deck-flow/internal/render"
)

// ErrEmptyInput is returned for a blank topic or paragraph.
var ErrEmptyInput = errors.New("input text is empty")

// run is the state of one generation from composed deck to artifacts.
type run struct {
	id       string
	title    string
	deck     deck.Deck
	video    bool
	handout  bool
	tempDir  string
	logger   logger.Logger
	progress progress
	result   *Result
}

func (p *implPipeline) RunTopic(ctx context.Context, req TopicRequest) (*Result, error) {
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return nil, ErrEmptyInput
	}
	n := p.clampSlides(req.Slides)

	r, cleanup, err := p.newRun(ctx, topic, true, req.Video, req.Handout)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	r.logger.Info(ctx, "Generating %d slides on: %s", n, topic)
	r.progress.Step("Generating slide content")
	d, err := p.deps.Composer.Topic(ctx, topic, n)
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}

	r.progress.Step("Repairing broken slides")
	regen := func(ctx context.Context, count int) ([]deck.Slide, error) {
		return p.deps.Composer.Regenerate(ctx, topic, count)
	}
	slides, report := deck.Reconcile(ctx, d.Slides, n, regen, p.cfg.Deck.MaxRetries)
	d.Slides = slides
	r.result.Report = report
	if report.Replaced+report.Appended+report.Padded+report.Fallbacks > 0 {
		r.logger.Info(ctx, "Reconciled slides: %d replaced, %d appended, %d padded, %d placeholders",
			report.Replaced, report.Appended, report.Padded, report.Fallbacks)
	}

	r.deck = d
	return p.finish(ctx, r)
}

func (p *implPipeline) RunParagraph(ctx context.Context, req ParagraphRequest) (*Result, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrEmptyInput
	}
	maxSlides := p.clampSlides(req.MaxSlides)

	r, cleanup, err := p.newRun(ctx, "", false, req.Video, req.Handout)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	r.progress.Step("Generating slide content")
	d, title, err := p.deps.Composer.Paragraph(ctx, text, maxSlides)
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}
	r.title = title
	r.result.Title = title
	r.logger.Info(ctx, "Generated title: %s", title)
	if len(d.Slides) > maxSlides {
		d.Slides = d.Slides[:maxSlides]
	}

	r.deck = d
	return p.finish(ctx, r)
}

func (p *implPipeline) newRun(ctx context.Context, title string, withRepair, withVideo, withHandout bool) (*run, func(), error) {
	id := uuid.NewString()
	if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
		return nil, nil, fmt.Errorf("create temp dir: %w", err)
	}
	tempDir, err := os.MkdirTemp(p.cfg.Paths.Temp, "run-"+id[:8]+"-*")
	if err != nil {
		return nil, nil, fmt.Errorf("create temp dir: %w", err)
	}

	if withVideo && (p.deps.Speech == nil || p.deps.Video == nil) {
		p.logger.Warn(ctx, "Video requested but speech or video tooling is not configured, skipping video")
		withVideo = false
	}

	steps := stepCount(withRepair, withVideo, withHandout)

	r := &run{
		id:       id,
		title:    title,
		video:    withVideo,
		handout:  withHandout,
		tempDir:  tempDir,
		logger:   p.logger.Named(id[:8]),
		progress: p.newProgress(steps),
		result:   &Result{RunID: id, Title: title},
	}

	started := time.Now()
	cleanup := func() {
		r.progress.Done()
		if err := os.RemoveAll(tempDir); err != nil {
			r.logger.Warn(ctx, "Failed to remove temp dir %s: %v", tempDir, err)
		}
		r.result.Elapsed = time.Since(started)
	}
	return r, cleanup, nil
}

// finish runs every step after the deck content is settled. Only a failed
// deck write aborts; the optional artifacts degrade to being absent.
func (p *implPipeline) finish(ctx context.Context, r *run) (*Result, error) {
	if len(r.deck.Slides) == 0 {
		return nil, deck.ErrNoSlides
	}
	r.result.Slides = len(r.deck.Slides)

	r.progress.Step("Fetching images")
	images, fallback := p.fetchImages(ctx, r)

	var narration *composer.Narration
	if r.video || r.handout {
		r.progress.Step("Writing narration")
		n := p.deps.Composer.Narration(ctx, r.title, r.deck)
		narration = &n
	} else {
		r.progress.Step("Skipping narration")
	}

	r.progress.Step("Rendering presentation")
	deckPath, err := p.deps.Renderer.Render(ctx, r.deck, render.Options{
		Topic:         r.title,
		OutputDir:     p.cfg.Paths.Output,
		Images:        images,
		Notes:         speakerNotes(narration, len(r.deck.Slides)),
		FallbackImage: fallback,
	})
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	r.result.DeckPath = deckPath

	r.progress.Step("Saving slide data")
	if path, err := p.writeJSON(r); err != nil {
		r.logger.Warn(ctx, "Failed to save slide data: %v", err)
	} else {
		r.result.JSONPath = path
	}

	if r.video {
		if path, err := p.buildVideo(ctx, r, deckPath, speakerNotes(narration, len(r.deck.Slides))); err != nil {
			r.logger.Warn(ctx, "Video generation failed: %v", err)
		} else {
			r.result.VideoPath = path
		}
	}

	if r.handout {
		r.progress.Step("Writing handout")
		path := filepath.Join(p.cfg.Paths.Output, deck.HandoutFileName(r.title))
		if err := handout.Write(r.title, r.deck, narration, path); err != nil {
			r.logger.Warn(ctx, "Handout generation failed: %v", err)
		} else {
			r.result.HandoutPath = path
		}
	}

	r.progress.Step("Publishing")
	published, err := p.deps.Publisher.Publish(ctx, r.id,
		r.result.DeckPath, r.result.JSONPath, r.result.VideoPath, r.result.HandoutPath)
	if err != nil {
		r.logger.Warn(ctx, "Publishing failed: %v", err)
	}
	r.result.Published = published

	r.logger.Info(ctx, "Presentation complete: %s (%d slides)", deckPath, r.result.Slides)
	return r.result, nil
}

func (p *implPipeline) writeJSON(r *run) (string, error) {
	data, err := json.MarshalIndent(r.deck, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(p.cfg.Paths.Output, deck.JSONFileName(r.title))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

func (p *implPipeline) clampSlides(n int) int {
	if n <= 0 {
		n = p.cfg.Deck.DefaultSlides
	}
	return max(1, min(n, p.cfg.Deck.MaxSlides))
}

// stepCount is the number of progress steps a run reports: compose, images,
// narration, render, json and publish, plus repair for topic runs, three for
// video and one for the handout.
func stepCount(repair, video, handout bool) int {
	steps := 6
	if repair {
		steps++
	}
	if video {
		steps += 3
	}
	if handout {
		steps++
	}
	return steps
}

// speakerNotes lays the narration out by rendered slide: the title slide
// first, then one entry per content slide. The conclusion is read after the
// last content slide.
func speakerNotes(n *composer.Narration, slides int) []string {
	if n == nil {
		return nil
	}
	notes := make([]string, slides+1)
	notes[0] = n.TitleNarration
	for i := 0; i < slides && i < len(n.SlideNarrations); i++ {
		notes[i+1] = n.SlideNarrations[i]
	}
	if n.Conclusion != "" {
		notes[slides] = strings.TrimSpace(notes[slides] + " " + n.Conclusion)
	}
	return notes
}
