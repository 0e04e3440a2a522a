// Package handout writes a Word companion document for a generated deck:
// the slide content in reading order plus the narration script.
package handout

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
	"github.com/nguyentantai21042004/deck-flow/internal/composer"
	"github.com/nguyentantai21042004/deck-flow/internal/deck"
)

const (
	fontName  = "Aptos"
	fontSize  = 12
	textColor = "000000"
	mutedText = "595959"
	accent    = "003366"
)

// Write saves the handout for d to outPath. narration may be nil when the
// run produced no script.
func Write(title string, d deck.Deck, narration *composer.Narration, outPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addRun(doc.AddParagraph(""), title, true, 20, accent)
	if d.Intro != "" {
		addRun(doc.AddParagraph(""), d.Intro, false, fontSize, mutedText).Italic(true)
	}

	for i, s := range d.Slides {
		doc.AddParagraph("")
		addRun(doc.AddParagraph(""), fmt.Sprintf("%d. %s", i+1, s.Title), true, 15, accent)
		if s.Insight != "" {
			addRun(doc.AddParagraph(""), s.Insight, true, fontSize, textColor)
		}

		if s.Type == deck.TypeChart {
			writeChart(doc, s)
		} else {
			writeBullets(doc, s.Bullets)
		}

		if narration != nil && i < len(narration.SlideNarrations) && narration.SlideNarrations[i] != "" {
			p := doc.AddParagraph("")
			addRun(p, "Script: ", true, fontSize-1, mutedText)
			addRun(p, narration.SlideNarrations[i], false, fontSize-1, mutedText)
		}
	}

	if narration != nil {
		if narration.TitleNarration != "" || narration.Conclusion != "" {
			doc.AddParagraph("")
			addRun(doc.AddParagraph(""), "Narration", true, 15, accent)
		}
		if narration.TitleNarration != "" {
			addRun(doc.AddParagraph(""), narration.TitleNarration, false, fontSize, textColor)
		}
		if narration.Conclusion != "" {
			addRun(doc.AddParagraph(""), narration.Conclusion, false, fontSize, textColor)
		}
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("create handout dir: %w", err)
	}
	return doc.SaveTo(outPath)
}

func writeBullets(doc *docx.RootDoc, bullets []deck.Bullet) {
	for _, b := range bullets {
		p := doc.AddParagraph("")
		addRun(p, "• "+b.Point, true, fontSize, textColor)
		if b.Desc != "" {
			addRun(p, ": "+b.Desc, false, fontSize, textColor)
		}
	}
}

func writeChart(doc *docx.RootDoc, s deck.Slide) {
	if s.Context != "" {
		addRun(doc.AddParagraph(""), s.Context, false, fontSize, textColor)
	}
	addRun(doc.AddParagraph(""), ChartSummary(s.Chart), false, fontSize, textColor)
	if s.Chart != nil && s.Chart.Source != "" {
		addRun(doc.AddParagraph(""), s.Chart.Source, false, fontSize-2, mutedText).Italic(true)
	}
}

// ChartSummary renders chart data as one line of text, e.g.
// "Pie chart: APAC 40; EMEA 35".
func ChartSummary(c *deck.Chart) string {
	categories, series, err := deck.BuildSeries(c)
	if err != nil {
		return deck.NoChartData
	}

	kind := strings.ToLower(strings.ReplaceAll(deck.NormalizeChartType(c.Type), "_", " "))
	parts := make([]string, len(categories))
	for i, cat := range categories {
		values := make([]string, len(series))
		for j, s := range series {
			values[j] = strconv.FormatFloat(s.Values[i], 'f', -1, 64)
		}
		parts[i] = cat + " " + strings.Join(values, "/")
	}
	return fmt.Sprintf("%s%s chart: %s", strings.ToUpper(kind[:1]), kind[1:], strings.Join(parts, "; "))
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64, color string) *docx.Run {
	run := p.AddText(text).Font(fontName).Size(size).Color(color)
	if bold {
		run.Bold(true)
	}
	return run
}
