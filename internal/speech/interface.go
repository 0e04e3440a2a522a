package speech

import (
	"context"
	"errors"
)

// ErrEmptyText is returned for blank narration.
var ErrEmptyText = errors.New("text cannot be empty")

// Synthesizer turns narration text into one audio clip on disk.
type Synthesizer interface {
	// Synthesize writes the clip next to outPath, replacing its extension
	// with the provider's format, and returns the final path.
	Synthesize(ctx context.Context, text, outPath string) (string, error)
}
