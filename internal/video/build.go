package video

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

func (v *implVideo) Build(ctx context.Context, images, audios []string, outPath string) error {
	n := min(len(images), len(audios))
	if n == 0 {
		return ErrNoSegments
	}
	if len(images) != len(audios) {
		v.logger.Warn(ctx, "Slide images (%d) and audio clips (%d) differ, using first %d", len(images), len(audios), n)
	}

	// Isolated temp dir per build so concurrent runs never share segments.
	workDir, err := os.MkdirTemp(v.tempDir, "video-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	segments := make([]string, 0, n)
	for i := 0; i < n; i++ {
		seg := filepath.Join(workDir, fmt.Sprintf("segment_%03d.mp4", i))
		duration := v.Duration(ctx, audios[i])

		v.logger.Info(ctx, "Encoding segment %d/%d (%.1fs)", i+1, n, duration)
		if _, err := v.executor.Execute(ctx, v.cfg.FFmpegBinary, v.segmentArgs(images[i], audios[i], seg, duration, i > 0)...); err != nil {
			return fmt.Errorf("ffmpeg segment %d: %w", i+1, err)
		}
		segments = append(segments, seg)
	}

	listPath := filepath.Join(workDir, "segments.txt")
	if err := writeConcatList(listPath, segments); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	args := []string{"-y", "-f", "concat", "-safe", "0", "-i", listPath, "-c", "copy", outPath}
	if _, err := v.executor.Execute(ctx, v.cfg.FFmpegBinary, args...); err != nil {
		return fmt.Errorf("ffmpeg concat: %w", err)
	}

	v.logger.Info(ctx, "Video created: %s", outPath)
	return nil
}

// segmentArgs loops one still image for the length of its audio clip,
// letterboxed to the output size.
func (v *implVideo) segmentArgs(image, audio, out string, duration float64, fade bool) []string {
	w, h := v.cfg.Width, v.cfg.Height
	filter := fmt.Sprintf(
		"scale=%d:%d:force_original_aspect_ratio=decrease,pad=%d:%d:(ow-iw)/2:(oh-ih)/2:color=white,fps=%d,format=yuv420p",
		w, h, w, h, v.cfg.FPS,
	)
	if fade && v.cfg.FadeIn > 0 {
		filter += fmt.Sprintf(",fade=t=in:st=0:d=%s", formatSeconds(v.cfg.FadeIn))
	}

	return []string{
		"-y",
		"-loop", "1",
		"-i", image,
		"-i", audio,
		"-vf", filter,
		"-c:v", v.cfg.VideoCodec,
		"-preset", v.cfg.Preset,
		"-tune", "stillimage",
		"-c:a", v.cfg.AudioCodec,
		"-ar", "44100",
		"-t", formatSeconds(duration),
		"-shortest",
		out,
	}
}

func writeConcatList(path string, segments []string) error {
	var b strings.Builder
	for _, seg := range segments {
		abs, err := filepath.Abs(seg)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "file '%s'\n", strings.ReplaceAll(abs, "'", `'\''`))
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write concat list: %w", err)
	}
	return nil
}

func formatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'f', 3, 64)
}
