package render

import (
	"fmt"
	"image"
	"strings"

	gopresentation "github.com/VantageDataChat/GoPPT"
	"github.com/nguyentantai21042004/deck-flow/internal/deck"
)

// Image area on bullet slides, in inches.
const (
	imageX         = 7.0
	imageTop       = 1.8
	imageMaxWidth  = 5.8
	imageMaxHeight = 4.5
	imageMinWidth  = 4.0
	imageMinHeight = 3.0
)

// spacing converts points into the hundredths used by paragraph spacing.
func spacing(pt int) int { return pt * 100 }

func (r *implRenderer) titleSlide(s *gopresentation.Slide, topic, intro string) {
	s.SetBackground(gopresentation.NewFill().SetSolid(colorWhite))

	addRect(s, 8, 0, 3.33, slideHeight, colorLightBlue, nil, 0)
	addRect(s, 0, 6.7, slideWidth, 1.0, colorBlue, nil, 0)

	addTextBox(s, 1, 1.2, 10, 2, strings.ToUpper(topic),
		textStyle{size: 52, bold: true, color: colorDarkBlue, align: gopresentation.HorizontalLeft})

	subtitle := fmt.Sprintf("%s | %s", r.subtitle, r.now().Format("January 2006"))
	addTextBox(s, 1, 3.2, 10, 0.8, subtitle,
		textStyle{size: 20, color: colorGray, align: gopresentation.HorizontalLeft})

	introBox := s.CreateRichTextShape()
	introBox.SetPosition(in(1), in(4.0))
	introBox.SetSize(in(10), in(1.5))
	introBox.SetWordWrap(true)
	introBox.SetAutoFit(gopresentation.AutoFitNone)
	p := introBox.GetActiveParagraph()
	p.GetAlignment().SetHorizontal(gopresentation.HorizontalLeft)
	p.SetSpaceBefore(spacing(8))
	styleRun(p.CreateTextRun(intro), textStyle{size: 16, color: colorText})

	addTextBox(s, 1, 7, 6, 0.4, r.brand,
		textStyle{size: 10, italic: true, color: colorWhite, align: gopresentation.HorizontalLeft})

	addLine(s, 1, 4.2, 4, colorAccent, 4)
	addLine(s, 1, 4.3, 2, colorBlue, 2)
}

func (r *implRenderer) header(s *gopresentation.Slide, title, insight string) {
	addRect(s, 0, 0, slideWidth, 1.4, colorWhite, &colorLightGray, 1)

	titleBox := addTextBox(s, 0.5, 0.15, 12, 0.65, strings.ToUpper(title),
		textStyle{size: 26, bold: true, color: colorDarkBlue})
	titleBox.SetTextAnchor(gopresentation.TextAnchorTop)

	addTextBox(s, 0.5, 0.8, 12, 0.5, "Key Insight: "+insight,
		textStyle{size: 14, italic: true, color: colorGray})

	addLine(s, 0.5, 1.35, 12, colorBlue, 3)
}

func (r *implRenderer) footer(s *gopresentation.Slide, number int) {
	addRect(s, 0, 6.9, slideWidth, 0.6, colorLightGray, nil, 0)

	addTextBox(s, 11.5, 7.0, 1.5, 0.4, fmt.Sprint(number),
		textStyle{size: 12, bold: true, color: colorBlue, align: gopresentation.HorizontalCenter})

	addTextBox(s, 0.5, 7.0, 6, 0.4, r.brand,
		textStyle{size: 9, color: colorDarkGray})
}

// bullets writes the left text column: each point at 16pt, its description
// underneath at 13pt gray.
func (r *implRenderer) bullets(s *gopresentation.Slide, bullets []deck.Bullet) {
	box := s.CreateRichTextShape()
	box.SetPosition(in(0.8), in(1.8))
	box.SetSize(in(5.5), in(4.5))
	box.SetWordWrap(true)
	box.SetAutoFit(gopresentation.AutoFitNormal)

	first := true
	next := func() *gopresentation.Paragraph {
		if first {
			first = false
			return box.GetActiveParagraph()
		}
		return box.CreateParagraph()
	}

	for _, b := range bullets {
		p := next()
		styleRun(p.CreateTextRun("• "+strings.TrimSpace(b.Point)), textStyle{size: 16, color: colorText})

		desc := strings.TrimSpace(b.Desc)
		if desc == "" {
			p.SetSpaceAfter(spacing(12))
			continue
		}
		p.SetSpaceAfter(spacing(6))

		dp := next()
		dp.SetSpaceAfter(spacing(12))
		styleRun(dp.CreateTextRun(desc), textStyle{size: 13, color: colorGray})
	}
}

// picture places an already prepared PNG in the right column, centred
// vertically and bordered in light gray.
func (r *implRenderer) picture(s *gopresentation.Slide, data []byte, cfg image.Config) {
	w, h := imageBox(cfg.Width, cfg.Height)

	pic := s.CreateDrawingShape()
	pic.SetImageData(data, "image/png")
	pic.SetPosition(in(imageX), in(imageTop+(imageMaxHeight-h)/2))
	pic.SetSize(in(w), in(h))

	border := pic.GetBorder()
	border.Style = gopresentation.BorderSolid
	border.Color = colorLightGray
	border.Width = int(gopresentation.Point(1))
}

// imageBox fits an image of the given pixel size into the image area,
// keeping its aspect ratio, then enforces the minimum size.
func imageBox(px, py int) (w, h float64) {
	if px <= 0 || py <= 0 {
		return imageMinWidth, imageMinHeight
	}
	aspect := float64(px) / float64(py)
	if aspect > imageMaxWidth/imageMaxHeight {
		w, h = imageMaxWidth, imageMaxWidth/aspect
	} else {
		w, h = imageMaxHeight*aspect, imageMaxHeight
	}
	return max(w, imageMinWidth), max(h, imageMinHeight)
}
