package video

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/deck-flow/internal/speech"
)

// Rough MP3 bitrate used when nothing better is known: 15 KiB per second.
const mp3BytesPerSecond = 1024 * 15

func (v *implVideo) Duration(ctx context.Context, path string) float64 {
	if d, err := v.probe(ctx, path); err == nil && d > 0 {
		return d
	}

	if strings.EqualFold(filepath.Ext(path), ".wav") {
		if f, err := os.Open(path); err == nil {
			d, err := speech.WAVDuration(f)
			f.Close()
			if err == nil && d > 0 {
				return d
			}
		}
	}

	if info, err := os.Stat(path); err == nil && info.Size() > 0 {
		v.logger.Debug(ctx, "Estimating duration from size: %s", path)
		return math.Max(3, float64(info.Size())/mp3BytesPerSecond)
	}

	v.logger.Warn(ctx, "Could not determine duration of %s, using %.0fs", path, v.cfg.DefaultDuration)
	return v.cfg.DefaultDuration
}

func (v *implVideo) probe(ctx context.Context, path string) (float64, error) {
	out, err := v.executor.Execute(ctx, v.cfg.FFprobeBinary,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(strings.TrimSpace(out), 64)
}
