package video

import (
	"context"
	"errors"
)

// ErrNoSegments is returned when there is no image/audio pair to encode.
var ErrNoSegments = errors.New("no slide images or audio clips to build a video from")

// Video turns a rendered deck plus narration clips into an MP4.
type Video interface {
	// Rasterize exports every slide of pptxPath as a PNG under outDir, in
	// slide order.
	Rasterize(ctx context.Context, pptxPath, outDir string) ([]string, error)
	// Duration returns the playing time of an audio clip in seconds. It never
	// fails; unknown clips get the configured default.
	Duration(ctx context.Context, path string) float64
	// Build pairs images and audios by index and writes the final video.
	Build(ctx context.Context, images, audios []string, outPath string) error
}
