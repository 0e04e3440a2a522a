package deck

import "testing"

const sampleOutline = `Introduction: Renewables now lead new capacity.
---
Slide 1
Title: Capacity Additions
Key Insight: Solar led 2024 additions.
Context: Additions show where capital flows.
Chart:
` + "```json" + `
{"type": "COLUMN", "data": [["Solar", 450], ["Wind", 115]], "source": "Source: IEA, 2025"}
` + "```" + `
---
Slide 2
Title: Policy Drivers
Key Insight: Subsidies accelerate adoption.
Bullets:
- Tax credits
* Feed-in tariffs
• Auctions
---
Slide 3
Title: Missing insight is skipped
Bullets:
- ignored
---
Slide 4
Key Insight: Grid is the bottleneck.
Bullets:
---
Slide 5
Title: Broken chart
Key Insight: Data was garbled.
Chart:
` + "```json" + `
{"type": "BAR", "data": [["a", 1]
` + "```" + `
`

func TestParseOutline(t *testing.T) {
	d := ParseOutline(sampleOutline)

	if d.Intro != "Renewables now lead new capacity." {
		t.Errorf("Intro = %q", d.Intro)
	}
	if len(d.Slides) != 4 {
		t.Fatalf("len(Slides) = %d, want 4: %+v", len(d.Slides), d.Slides)
	}

	chart := d.Slides[0]
	if chart.Type != TypeChart || chart.Chart == nil || len(chart.Chart.Data) != 2 {
		t.Errorf("slide 1 = %+v", chart)
	}
	if chart.Context != "Additions show where capital flows." {
		t.Errorf("Context = %q", chart.Context)
	}

	bullets := d.Slides[1]
	want := []string{"Tax credits", "Feed-in tariffs", "Auctions"}
	got := bullets.Points()
	if len(got) != len(want) {
		t.Fatalf("Points() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Points()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	untitled := d.Slides[2]
	if untitled.Title != "Slide 3" {
		t.Errorf("default title = %q, want Slide 3", untitled.Title)
	}
	if len(untitled.Bullets) != 1 || untitled.Bullets[0].Point != NoContent {
		t.Errorf("empty bullets should become the placeholder, got %+v", untitled.Bullets)
	}

	garbled := d.Slides[3]
	if garbled.Type != TypeBullets || garbled.Bullets[0].Point != NoChartData {
		t.Errorf("garbled chart should become the placeholder, got %+v", garbled)
	}
	if !IsBroken(untitled) || !IsBroken(garbled) {
		t.Error("placeholder slides should be broken")
	}
}

func TestParseOutlineEmpty(t *testing.T) {
	d := ParseOutline("no structure at all")
	if len(d.Slides) != 0 || d.Slides == nil {
		t.Errorf("ParseOutline() = %+v, want empty non-nil slides", d)
	}
}
