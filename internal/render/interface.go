package render

import (
	"context"

	"github.com/nguyentantai21042004/deck-flow/internal/deck"
)

// Options carries the per-run inputs of a render.
type Options struct {
	Topic     string
	OutputDir string
	// Images maps a content slide index to a local image file.
	Images map[int]string
	// Notes holds speaker notes by rendered slide; index 0 is the title slide.
	Notes []string
	// FallbackImage is used when a slide image cannot be decoded.
	FallbackImage string
}

// Renderer turns slide content into a .pptx file.
type Renderer interface {
	Render(ctx context.Context, d deck.Deck, opts Options) (string, error)
}
