package imagesearch

import (
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// verticalAspect is the widest width/height ratio still accepted as portrait.
const verticalAspect = 1.25

var reNonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Fetch tries every source, portrait first and then any orientation, and
// falls back to the placeholder image.
func (f *implFetcher) Fetch(ctx context.Context, topic, prompt, label string) string {
	query := strings.TrimSpace(topic + " " + prompt)
	f.logger.Debug(ctx, "Searching for images: %q", query)

	for _, src := range f.sources {
		for _, vertical := range []bool{true, false} {
			if path, ok := f.fromSource(ctx, src, query, label, vertical); ok {
				return path
			}
			if ctx.Err() != nil {
				return f.placeholder(ctx, topic)
			}
		}
	}

	return f.placeholder(ctx, topic)
}

func (f *implFetcher) fromSource(ctx context.Context, src Source, query, label string, vertical bool) (string, bool) {
	if err := f.limiter.Wait(ctx); err != nil {
		return "", false
	}

	urls, err := src.Search(ctx, query, vertical)
	if err != nil {
		f.logger.Warn(ctx, "%s search failed: %v", src.Name(), err)
		return "", false
	}
	if len(urls) == 0 {
		f.logger.Debug(ctx, "No %s results for %q", src.Name(), query)
		return "", false
	}

	for i, u := range urls {
		name := fmt.Sprintf("%s_%d", src.Name(), i)
		if label != "" {
			name = label + "_" + name
		}
		path, err := f.download(ctx, u, name, vertical)
		if err != nil {
			f.logger.Debug(ctx, "Skipping %s: %v", u, err)
			continue
		}
		f.logger.Info(ctx, "Image saved from %s: %s", src.Name(), filepath.Base(path))
		return path, true
	}
	return "", false
}

// download fetches one image URL, checks the orientation when asked and
// stores it as JPEG.
func (f *implFetcher) download(ctx context.Context, url, label string, vertical bool) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "image") {
		return "", fmt.Errorf("content type %q is not an image", ct)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	if vertical && !isVertical(img.Bounds()) {
		return "", fmt.Errorf("image is not portrait")
	}

	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(f.dir, imageFileName(label, url))
	if err := writeJPEG(path, img, jpeg.DefaultQuality); err != nil {
		return "", err
	}
	return path, nil
}

func (f *implFetcher) placeholder(ctx context.Context, topic string) string {
	path, err := Placeholder(f.dir, topic)
	if err == nil {
		f.logger.Info(ctx, "Using fallback image %s", path)
		return path
	}

	f.logger.Error(ctx, "Failed to create fallback image in %s: %v", f.dir, err)
	path, err = Placeholder(os.TempDir(), topic)
	if err != nil {
		f.logger.Error(ctx, "Emergency fallback creation failed: %v", err)
	}
	return path
}

func isVertical(b image.Rectangle) bool {
	if b.Dy() == 0 {
		return false
	}
	return float64(b.Dx())/float64(b.Dy()) < verticalAspect
}

func imageFileName(label, url string) string {
	safe := reNonAlnum.ReplaceAllString(url, "_")
	if len(safe) > 30 {
		safe = safe[:30]
	}
	return label + "_" + safe + ".jpg"
}

func writeJPEG(path string, img image.Image, quality int) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(out, img, &jpeg.Options{Quality: quality}); err != nil {
		out.Close()
		return fmt.Errorf("encode jpeg: %w", err)
	}
	return out.Close()
}
