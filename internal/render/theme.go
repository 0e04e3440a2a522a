package render

import (
	gopresentation "github.com/VantageDataChat/GoPPT"
)

const fontName = "Aptos Display"

var (
	colorBlue      = gopresentation.NewColor("0C4A7E")
	colorLightBlue = gopresentation.NewColor("4F81BD")
	colorDarkBlue  = gopresentation.NewColor("062D55")
	colorAccent    = gopresentation.NewColor("66AAEE")
	colorGray      = gopresentation.NewColor("595959")
	colorLightGray = gopresentation.NewColor("D9D9D9")
	colorDarkGray  = gopresentation.NewColor("404040")
	colorWhite     = gopresentation.NewColor("FFFFFF")
	colorText      = gopresentation.NewColor("000000")
)

// Slide size in inches.
const (
	slideWidth  = 13.33
	slideHeight = 7.5
)

type textStyle struct {
	size   int
	bold   bool
	italic bool
	color  gopresentation.Color
	align  gopresentation.HorizontalAlignment
}

func in(v float64) int64 { return gopresentation.Inch(v) }

// addRect places a filled rectangle; a zero line width leaves it borderless.
func addRect(s *gopresentation.Slide, x, y, w, h float64, fill gopresentation.Color, line *gopresentation.Color, lineWidthPt float64) {
	rect := s.CreateAutoShape()
	rect.SetAutoShapeType(gopresentation.AutoShapeRectangle)
	rect.SetPosition(in(x), in(y))
	rect.SetSize(in(w), in(h))
	rect.GetFill().SetSolid(fill)

	border := rect.GetBorder()
	if line == nil {
		border.Style = gopresentation.BorderNone
		return
	}
	border.Style = gopresentation.BorderSolid
	border.Color = *line
	border.Width = int(gopresentation.Point(lineWidthPt))
}

func addLine(s *gopresentation.Slide, x, y, w float64, color gopresentation.Color, widthPt int) {
	line := s.CreateLineShape()
	line.SetPosition(in(x), in(y))
	line.SetSize(in(w), 0)
	line.SetLineColor(color)
	line.SetLineWidth(widthPt)
}

// addTextBox creates a single paragraph text box and returns it so callers
// can append more paragraphs.
func addTextBox(s *gopresentation.Slide, x, y, w, h float64, text string, st textStyle) *gopresentation.RichTextShape {
	box := s.CreateRichTextShape()
	box.SetPosition(in(x), in(y))
	box.SetSize(in(w), in(h))
	box.SetWordWrap(true)

	p := box.GetActiveParagraph()
	if st.align != "" {
		p.GetAlignment().SetHorizontal(st.align)
	}
	styleRun(p.CreateTextRun(text), st)
	return box
}

func styleRun(run *gopresentation.TextRun, st textStyle) {
	run.GetFont().
		SetName(fontName).
		SetSize(st.size).
		SetBold(st.bold).
		SetItalic(st.italic).
		SetColor(st.color)
}
