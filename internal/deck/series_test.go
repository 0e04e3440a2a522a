package deck

import (
	"errors"
	"testing"
)

func TestBuildSeriesPairs(t *testing.T) {
	c := &Chart{Type: "BAR", Data: [][]any{{"North", 10.0}, {"South", "n/a"}, {2024.0, "12.5%"}}}

	cats, series, err := BuildSeries(c)
	if err != nil {
		t.Fatalf("BuildSeries() error = %v", err)
	}
	if len(series) != 1 || series[0].Name != "" {
		t.Fatalf("series = %+v, want one unnamed series", series)
	}
	wantCats := []string{"North", "South", "2024"}
	wantVals := []float64{10, 0, 12.5}
	for i := range wantCats {
		if cats[i] != wantCats[i] {
			t.Errorf("cats[%d] = %q, want %q", i, cats[i], wantCats[i])
		}
		if series[0].Values[i] != wantVals[i] {
			t.Errorf("values[%d] = %v, want %v", i, series[0].Values[i], wantVals[i])
		}
	}
}

func TestBuildSeriesWide(t *testing.T) {
	c := &Chart{Data: [][]any{
		{"2023", 1.0, 2.0, 3.0},
		{"2024", 4.0, nil, 6.0},
	}}

	cats, series, err := BuildSeries(c)
	if err != nil {
		t.Fatalf("BuildSeries() error = %v", err)
	}
	if len(cats) != 2 || len(series) != 3 {
		t.Fatalf("cats = %v, series = %+v", cats, series)
	}
	for i, s := range series {
		if want := "Series " + string(rune('1'+i)); s.Name != want {
			t.Errorf("series[%d].Name = %q, want %q", i, s.Name, want)
		}
	}
	if series[1].Values[1] != 0 || series[2].Values[1] != 6 {
		t.Errorf("series values = %+v", series)
	}
}

func TestBuildSeriesErrors(t *testing.T) {
	tests := []struct {
		name  string
		chart *Chart
	}{
		{"nil chart", nil},
		{"no rows", &Chart{}},
		{"mixed widths", &Chart{Data: [][]any{{"a", 1.0}, {"b", 1.0, 2.0}}}},
		{"single cells", &Chart{Data: [][]any{{"a"}, {"b"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := BuildSeries(tt.chart); err == nil {
				t.Error("BuildSeries() should fail")
			}
		})
	}

	_, _, err := BuildSeries(&Chart{Data: [][]any{{"a", 1.0}, {"b", 1.0, 2.0}}})
	if !errors.Is(err, ErrBadChartData) {
		t.Errorf("mixed widths error = %v, want ErrBadChartData", err)
	}
}

func TestNormalizeChartType(t *testing.T) {
	tests := map[string]string{
		"bar":         ChartBar,
		" Column ":    ChartColumn,
		"stacked bar": ChartStackedBar,
		"STACKED_BAR": ChartStackedBar,
		"doughnut":    ChartDoughnut,
		"radar":       ChartColumn,
		"":            ChartColumn,
	}
	for in, want := range tests {
		if got := NormalizeChartType(in); got != want {
			t.Errorf("NormalizeChartType(%q) = %q, want %q", in, got, want)
		}
	}
}
