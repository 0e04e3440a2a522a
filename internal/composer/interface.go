package composer

import (
	"context"

	"github.com/nguyentantai21042004/deck-flow/internal/deck"
)

// Category is the detected kind of a free-text paragraph.
type Category string

const (
	Business     Category = "business"
	Academic     Category = "academic"
	Technical    Category = "technical"
	Educational  Category = "educational"
	Motivational Category = "motivational"
	General      Category = "general"
)

// Narration is the voice-over script for a rendered deck.
type Narration struct {
	TitleNarration  string   `json:"title_narration"`
	SlideNarrations []string `json:"slide_narrations"`
	Conclusion      string   `json:"conclusion"`
}

// Composer builds prompts and turns model answers into slide content.
type Composer interface {
	Topic(ctx context.Context, topic string, n int) (deck.Deck, error)
	Regenerate(ctx context.Context, topic string, count int) ([]deck.Slide, error)
	Classify(ctx context.Context, paragraph string) Category
	Refine(ctx context.Context, paragraph string, category Category) string
	Title(ctx context.Context, paragraph string) string
	Paragraph(ctx context.Context, text string, maxSlides int) (deck.Deck, string, error)
	Narration(ctx context.Context, topic string, d deck.Deck) Narration
}
