package imagesearch

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/deck-flow/internal/deck"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FallbackName is the placeholder file written into the image directory
// for topic.
func FallbackName(topic string) string {
	return deck.FileStem(topic) + "_fallback.jpg"
}

// Thumbnail box used when embedding images into slides.
const (
	MaxEmbedWidth  = 800
	MaxEmbedHeight = 500
)

var (
	bgGray    = color.RGBA{245, 245, 245, 255}
	brandBlue = color.RGBA{12, 74, 126, 255}
	lineGray  = color.RGBA{217, 217, 217, 255}
	textGray  = color.RGBA{89, 89, 89, 255}
	accent    = color.RGBA{79, 129, 189, 255}
)

// Placeholder returns the topic's placeholder in dir, drawing it first if it
// is missing.
func Placeholder(dir, topic string) (string, error) {
	path := filepath.Join(dir, FallbackName(topic))
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create image dir: %w", err)
	}
	// concurrent runs on one topic race here; the rename keeps readers off
	// a half-written file
	tmp, err := os.CreateTemp(dir, ".fallback-*.jpg")
	if err != nil {
		return "", fmt.Errorf("create placeholder: %w", err)
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	if err := writeJPEG(tmp.Name(), drawPlaceholder(topic), 90); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("save placeholder: %w", err)
	}
	return path, nil
}

func drawPlaceholder(topic string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 800, 600))
	draw.Draw(img, img.Bounds(), image.NewUniform(bgGray), image.Point{}, draw.Src)

	strokeRect(img, image.Rect(40, 40, 760, 560), 4, brandBlue)
	strokeRect(img, image.Rect(80, 80, 720, 520), 2, lineGray)

	drawCenteredText(img, "Professional", 400, 250, 3, brandBlue)
	drawCenteredText(img, "Image Placeholder", 400, 300, 3, brandBlue)
	drawCenteredText(img, "Topic: "+topic, 400, 380, 2, textGray)

	strokeEllipse(img, image.Rect(320, 150, 480, 200), 3, accent)
	return img
}

// strokeRect draws an outline of width w inside r.
func strokeRect(img draw.Image, r image.Rectangle, w int, c color.Color) {
	src := image.NewUniform(c)
	for _, edge := range []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+w),
		image.Rect(r.Min.X, r.Max.Y-w, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+w, r.Max.Y),
		image.Rect(r.Max.X-w, r.Min.Y, r.Max.X, r.Max.Y),
	} {
		draw.Draw(img, edge, src, image.Point{}, draw.Src)
	}
}

// strokeEllipse draws the ring of width w inscribed in r.
func strokeEllipse(img *image.RGBA, r image.Rectangle, w int, c color.Color) {
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	ax, ay := float64(r.Dx())/2, float64(r.Dy())/2
	bx, by := ax-float64(w), ay-float64(w)

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			outer := dx*dx/(ax*ax) + dy*dy/(ay*ay)
			inner := dx*dx/(bx*bx) + dy*dy/(by*by)
			if outer <= 1 && inner >= 1 {
				img.Set(x, y, c)
			}
		}
	}
}

// drawCenteredText renders s with the built-in bitmap face, scaled up and
// centred on (cx, cy).
func drawCenteredText(dst draw.Image, s string, cx, cy, scale int, c color.Color) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, s).Ceil()
	height := face.Metrics().Height.Ceil()
	if width == 0 {
		return
	}

	small := image.NewRGBA(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)

	w, h := width*scale, height*scale
	target := image.Rect(cx-w/2, cy-h/2, cx-w/2+w, cy-h/2+h)
	draw.NearestNeighbor.Scale(dst, target, small, small.Bounds(), draw.Over, nil)
}

// Prepare decodes an image, shrinks it into the 800x500 embed box keeping
// its aspect ratio and returns it PNG encoded with its final size.
func Prepare(path string) ([]byte, image.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, image.Config{}, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, image.Config{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	w, h := fitWithin(src.Bounds().Dx(), src.Bounds().Dy(), MaxEmbedWidth, MaxEmbedHeight)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, image.Config{}, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), image.Config{ColorModel: color.RGBAModel, Width: w, Height: h}, nil
}

// fitWithin shrinks w x h into maxW x maxH preserving aspect; it never enlarges.
func fitWithin(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return 1, 1
	}
	if w <= maxW && h <= maxH {
		return w, h
	}
	scale := min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	nw, nh := int(float64(w)*scale+0.5), int(float64(h)*scale+0.5)
	return max(nw, 1), max(nh, 1)
}
