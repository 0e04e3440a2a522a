package render

import (
	"fmt"

	gopresentation "github.com/VantageDataChat/GoPPT"
	"github.com/nguyentantai21042004/deck-flow/internal/deck"
)

const chartErrorText = "Error: Could not generate the requested chart."

// axisCharts get tick label fonts, no gridlines and outside-end labels.
var axisCharts = map[string]bool{
	deck.ChartBar:        true,
	deck.ChartColumn:     true,
	deck.ChartStackedBar: true,
	deck.ChartLine:       true,
	deck.ChartArea:       true,
}

func (r *implRenderer) chartSlide(s *gopresentation.Slide, slide deck.Slide) error {
	if slide.Context != "" {
		addTextBox(s, 1, 1.6, 11, 0.6, slide.Context, textStyle{size: 14, color: colorGray})
	}

	if err := r.chart(s, slide.Chart); err != nil {
		addTextBox(s, 1, 2, 11, 1, chartErrorText, textStyle{size: 14, color: colorText})
		return err
	}

	if slide.Chart.Source != "" {
		addTextBox(s, 1, 6.4, 11, 0.4, slide.Chart.Source,
			textStyle{size: 9, italic: true, color: colorGray})
	}
	return nil
}

func (r *implRenderer) chart(s *gopresentation.Slide, c *deck.Chart) error {
	if c == nil {
		return fmt.Errorf("chart data is missing")
	}
	categories, series, err := deck.BuildSeries(c)
	if err != nil {
		return err
	}

	chartType := deck.NormalizeChartType(c.Type)
	built := make([]*gopresentation.ChartSeries, 0, len(series))
	for _, sr := range series {
		cs := gopresentation.NewChartSeriesOrdered(sr.Name, categories, sr.Values)
		cs.ShowValue = true
		cs.Font.SetSize(12).SetBold(true).SetColor(colorGray)
		switch {
		case axisCharts[chartType]:
			cs.SetLabelPosition(gopresentation.LabelOutsideEnd)
		case chartType == deck.ChartPie || chartType == deck.ChartDoughnut:
			cs.SetLabelPosition(gopresentation.LabelBestFit)
		}
		built = append(built, cs)
	}

	shape := s.CreateChartShape()
	shape.SetPosition(in(1), in(1.7))
	shape.SetSize(in(11), in(4.5))
	shape.GetTitle().SetVisible(false)

	legend := shape.GetLegend()
	legend.Visible = true
	legend.Position = gopresentation.LegendRight

	plot := shape.GetPlotArea()
	plot.SetType(plotFor(chartType, built))

	if axisCharts[chartType] {
		for _, axis := range []*gopresentation.ChartAxis{plot.GetAxisX(), plot.GetAxisY()} {
			if axis == nil {
				continue
			}
			axis.Font.SetSize(11)
			axis.SetMajorGridlines(nil)
		}
	}
	return nil
}

func plotFor(chartType string, series []*gopresentation.ChartSeries) gopresentation.ChartType {
	switch chartType {
	case deck.ChartBar, deck.ChartStackedBar:
		bar := gopresentation.NewBarChart()
		bar.BarDirection = gopresentation.BarDirectionHorizontal
		if chartType == deck.ChartStackedBar {
			bar.SetBarGrouping(gopresentation.BarGroupingStacked)
		}
		for _, s := range series {
			bar.AddSeries(s)
		}
		return bar
	case deck.ChartLine:
		line := gopresentation.NewLineChart()
		for _, s := range series {
			line.AddSeries(s)
		}
		return line
	case deck.ChartArea:
		area := gopresentation.NewAreaChart()
		for _, s := range series {
			area.AddSeries(s)
		}
		return area
	case deck.ChartPie:
		pie := gopresentation.NewPieChart()
		for _, s := range series {
			pie.AddSeries(s)
		}
		return pie
	case deck.ChartDoughnut:
		doughnut := gopresentation.NewDoughnutChart()
		for _, s := range series {
			doughnut.AddSeries(s)
		}
		return doughnut
	case deck.ChartScatter:
		scatter := gopresentation.NewScatterChart()
		for _, s := range series {
			scatter.AddSeries(s)
		}
		return scatter
	}

	column := gopresentation.NewBarChart()
	for _, s := range series {
		column.AddSeries(s)
	}
	return column
}
