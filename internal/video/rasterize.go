package video

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	gopresentation "github.com/VantageDataChat/GoPPT"
)

var reTrailingNumber = regexp.MustCompile(`(\d+)\.png$`)

func (v *implVideo) Rasterize(ctx context.Context, pptxPath, outDir string) ([]string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}

	images, err := v.rasterizeOffice(ctx, pptxPath, outDir)
	if err == nil && len(images) > 0 {
		return images, nil
	}
	v.logger.Warn(ctx, "Office export unavailable, using native renderer: %v", err)

	return v.rasterizeNative(pptxPath, outDir)
}

// rasterizeOffice converts the deck to PDF with soffice, then each PDF page
// to PNG with pdftoppm.
func (v *implVideo) rasterizeOffice(ctx context.Context, pptxPath, outDir string) ([]string, error) {
	for _, bin := range []string{v.cfg.SofficeBinary, v.cfg.PdftoppmBinary} {
		if _, err := v.executor.LookPath(bin); err != nil {
			return nil, err
		}
	}

	if _, err := v.executor.Execute(ctx, v.cfg.SofficeBinary,
		"--headless", "--convert-to", "pdf", "--outdir", outDir, pptxPath); err != nil {
		return nil, fmt.Errorf("soffice convert: %w", err)
	}

	pdfPath := filepath.Join(outDir, strings.TrimSuffix(filepath.Base(pptxPath), filepath.Ext(pptxPath))+".pdf")
	if _, err := os.Stat(pdfPath); err != nil {
		return nil, fmt.Errorf("soffice produced no pdf: %w", err)
	}
	defer os.Remove(pdfPath)

	prefix := filepath.Join(outDir, "slide")
	if _, err := v.executor.Execute(ctx, v.cfg.PdftoppmBinary,
		"-png", "-r", strconv.Itoa(v.cfg.RasterDPI), pdfPath, prefix); err != nil {
		return nil, fmt.Errorf("pdftoppm: %w", err)
	}

	return slideImages(outDir)
}

func (v *implVideo) rasterizeNative(pptxPath, outDir string) ([]string, error) {
	pres, err := gopresentation.Open(pptxPath)
	if err != nil {
		return nil, fmt.Errorf("open deck: %w", err)
	}

	opts := gopresentation.DefaultRenderOptions()
	opts.Width = v.cfg.Width
	opts.Format = gopresentation.ImageFormatPNG
	if err := pres.SaveSlidesAsImages(filepath.Join(outDir, "slide-%d.png"), opts); err != nil {
		return nil, fmt.Errorf("render slides: %w", err)
	}

	return slideImages(outDir)
}

// slideImages lists slide-*.png in dir ordered by their trailing number, so
// slide-10 follows slide-9.
func slideImages(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "slide*.png"))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no slide images in %s", dir)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return slideNumber(matches[i]) < slideNumber(matches[j])
	})
	return matches, nil
}

func slideNumber(path string) int {
	m := reTrailingNumber.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}
