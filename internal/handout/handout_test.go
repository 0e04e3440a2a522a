package handout

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/deck-flow/internal/composer"
	"github.com/nguyentantai21042004/deck-flow/internal/deck"
)

func documentXML(t *testing.T, path string) string {
	t.Helper()
	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("open docx: %v", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		defer rc.Close()
		b, err := io.ReadAll(rc)
		if err != nil {
			t.Fatal(err)
		}
		return string(b)
	}
	t.Fatal("word/document.xml not found")
	return ""
}

func TestWrite(t *testing.T) {
	d := deck.Deck{
		Intro: "Cloud spend is rising fast",
		Slides: []deck.Slide{
			{
				Title:   "Market Drivers",
				Insight: "Demand outpaces supply",
				Type:    deck.TypeBullets,
				Bullets: []deck.Bullet{{Point: "AI workloads", Desc: "Training clusters dominate"}},
			},
			{
				Title: "Spend by Region",
				Type:  deck.TypeChart,
				Chart: &deck.Chart{Type: "pie", Data: [][]any{{"APAC", 40.0}, {"EMEA", 35.0}}, Source: "Source: IDC"},
			},
		},
	}
	narration := &composer.Narration{
		TitleNarration:  "Welcome to the briefing",
		SlideNarrations: []string{"Drivers first"},
		Conclusion:      "Thanks for listening",
	}

	out := filepath.Join(t.TempDir(), "nested", "Cloud_handout.docx")
	if err := Write("Cloud Economics", d, narration, out); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	xml := documentXML(t, out)
	for _, want := range []string{
		"Cloud Economics",
		"Cloud spend is rising fast",
		"1. Market Drivers",
		"Demand outpaces supply",
		"AI workloads",
		"Training clusters dominate",
		"2. Spend by Region",
		"Pie chart: APAC 40; EMEA 35",
		"Source: IDC",
		"Drivers first",
		"Welcome to the briefing",
		"Thanks for listening",
	} {
		if !strings.Contains(xml, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestWriteWithoutNarration(t *testing.T) {
	out := filepath.Join(t.TempDir(), "h.docx")
	d := deck.Deck{Slides: []deck.Slide{{Title: "Only", Type: deck.TypeBullets, Bullets: []deck.Bullet{{Point: "One"}}}}}
	if err := Write("T", d, nil, out); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if xml := documentXML(t, out); strings.Contains(xml, "Narration") {
		t.Error("narration section written without a script")
	}
}

func TestChartSummary(t *testing.T) {
	tests := []struct {
		name  string
		chart *deck.Chart
		want  string
	}{
		{
			name:  "pairs",
			chart: &deck.Chart{Type: "BAR", Data: [][]any{{"2023", 10.0}, {"2024", "12.5"}}},
			want:  "Bar chart: 2023 10; 2024 12.5",
		},
		{
			name:  "multi series",
			chart: &deck.Chart{Type: "stacked bar", Data: [][]any{{"Q1", 1.0, 2.0}, {"Q2", 3.0, 4.0}}},
			want:  "Stacked bar chart: Q1 1/2; Q2 3/4",
		},
		{
			name:  "unknown type",
			chart: &deck.Chart{Type: "radar", Data: [][]any{{"A", 1.0}}},
			want:  "Column chart: A 1",
		},
		{name: "nil", chart: nil, want: deck.NoChartData},
		{
			name:  "mixed rows",
			chart: &deck.Chart{Type: "BAR", Data: [][]any{{"A", 1.0}, {"B", 1.0, 2.0}}},
			want:  deck.NoChartData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChartSummary(tt.chart); got != tt.want {
				t.Errorf("ChartSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}
