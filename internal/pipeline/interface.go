package pipeline

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/deck-flow/internal/deck"
)

// TopicRequest asks for a deck of exactly Slides content slides on Topic.
type TopicRequest struct {
	Topic   string
	Slides  int
	Video   bool
	Handout bool
}

// ParagraphRequest asks for a deck built from free text, with at most
// MaxSlides content slides.
type ParagraphRequest struct {
	Text      string
	MaxSlides int
	Video     bool
	Handout   bool
}

// Result lists what one run produced. Optional artifacts that were not
// requested or failed are empty.
type Result struct {
	RunID       string
	Title       string
	Slides      int
	DeckPath    string
	JSONPath    string
	VideoPath   string
	HandoutPath string
	Published   []string
	Report      deck.ReconcileReport
	Elapsed     time.Duration
}

// Pipeline runs one deck generation end to end.
type Pipeline interface {
	RunTopic(ctx context.Context, req TopicRequest) (*Result, error)
	RunParagraph(ctx context.Context, req ParagraphRequest) (*Result, error)
	// ProcessFile runs paragraph mode on a dropped .txt/.md file and archives
	// it afterwards.
	ProcessFile(ctx context.Context, path string) error
}
