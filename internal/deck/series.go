package deck

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Chart types understood by the renderer.
const (
	ChartBar        = "BAR"
	ChartColumn     = "COLUMN"
	ChartLine       = "LINE"
	ChartPie        = "PIE"
	ChartDoughnut   = "DOUGHNUT"
	ChartArea       = "AREA"
	ChartScatter    = "SCATTER"
	ChartStackedBar = "STACKED_BAR"
)

var knownCharts = map[string]bool{
	ChartBar: true, ChartColumn: true, ChartLine: true, ChartPie: true,
	ChartDoughnut: true, ChartArea: true, ChartScatter: true, ChartStackedBar: true,
}

// ErrBadChartData is returned for tables that are neither all label/value
// pairs nor all multi-series rows.
var ErrBadChartData = errors.New("each chart data point must be a [label, value] pair or valid multi-series row")

// Series is one named run of values aligned with the chart categories.
type Series struct {
	Name   string
	Values []float64
}

// NormalizeChartType upper-cases t and maps unknown types to COLUMN.
func NormalizeChartType(t string) string {
	t = strings.ToUpper(strings.TrimSpace(t))
	t = strings.ReplaceAll(t, " ", "_")
	if knownCharts[t] {
		return t
	}
	return ChartColumn
}

// BuildSeries turns chart rows into categories and series. Rows of exactly two
// cells form one unnamed series; rows wider than two form one "Series i" per
// extra column. Non-numeric cells become 0.
func BuildSeries(c *Chart) ([]string, []Series, error) {
	if c == nil || len(c.Data) == 0 {
		return nil, nil, errors.New("chart data is missing or malformed")
	}

	allPairs, allWide := true, true
	for _, row := range c.Data {
		allPairs = allPairs && len(row) == 2
		allWide = allWide && len(row) > 2
	}

	categories := make([]string, len(c.Data))
	for i, row := range c.Data {
		if len(row) > 0 {
			categories[i] = label(row[0])
		}
	}

	switch {
	case allWide:
		n := len(c.Data[0]) - 1
		series := make([]Series, n)
		for s := range series {
			series[s].Name = fmt.Sprintf("Series %d", s+1)
			series[s].Values = make([]float64, len(c.Data))
			for r, row := range c.Data {
				if s+1 < len(row) {
					series[s].Values[r] = number(row[s+1])
				}
			}
		}
		return categories, series, nil

	case allPairs:
		values := make([]float64, len(c.Data))
		for r, row := range c.Data {
			values[r] = number(row[1])
		}
		return categories, []Series{{Name: "", Values: values}}, nil
	}

	return nil, nil, ErrBadChartData
}

func label(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// number accepts JSON numbers and numeric strings such as "42", "12.5%" or
// "$1,200"; everything else is 0.
func number(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		s := strings.TrimSpace(n)
		s = strings.TrimSuffix(s, "%")
		s = strings.TrimPrefix(s, "$")
		s = strings.ReplaceAll(s, ",", "")
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return 0
}
