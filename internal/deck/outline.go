package deck

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	reIntro   = regexp.MustCompile(`(?is)Introduction:\s*(.*?)\n\s*---`)
	reTitle   = regexp.MustCompile(`(?im)^\s*Title:\s*(.+?)\s*$`)
	reInsight = regexp.MustCompile(`(?im)^\s*Key Insight:\s*(.+?)\s*$`)
	reContext = regexp.MustCompile(`(?im)^\s*Context:\s*(.+?)\s*$`)
	reChart   = regexp.MustCompile("(?s)Chart:\\s*```(?:json)?\\s*(.*?)\\s*```")
	reBullets = regexp.MustCompile(`(?s)Bullets:\s*(.*)`)
)

// ParseOutline reads the older plain-text outline format, where slides are
// separated by "---" lines and carry "Title:", "Key Insight:", "Context:",
// "Chart:" (a fenced JSON block) or "Bullets:" sections. Blocks without a key
// insight are skipped.
func ParseOutline(text string) Deck {
	d := Deck{Slides: []Slide{}}
	if m := reIntro.FindStringSubmatch(text); m != nil {
		d.Intro = strings.TrimSpace(m[1])
	}

	for _, chunk := range strings.Split(text, "---") {
		if strings.TrimSpace(chunk) == "" {
			continue
		}

		insight := firstGroup(reInsight, chunk)
		if insight == "" {
			continue
		}

		s := Slide{
			Title:   firstGroup(reTitle, chunk),
			Insight: insight,
			Context: firstGroup(reContext, chunk),
		}
		if s.Title == "" {
			s.Title = fmt.Sprintf("Slide %d", len(d.Slides)+1)
		}

		if m := reChart.FindStringSubmatch(chunk); m != nil {
			var c Chart
			if err := json.Unmarshal([]byte(m[1]), &c); err == nil {
				s.Type = TypeChart
				s.Chart = &c
			} else {
				s.Type = TypeBullets
				s.Bullets = []Bullet{{Point: NoChartData}}
			}
		} else {
			s.Type = TypeBullets
			s.Bullets = outlineBullets(chunk)
		}

		d.Slides = append(d.Slides, s)
	}
	return d
}

func outlineBullets(chunk string) []Bullet {
	m := reBullets.FindStringSubmatch(chunk)
	if m == nil {
		return []Bullet{{Point: NoContent}}
	}

	var bullets []Bullet
	for _, line := range strings.Split(m[1], "\n") {
		point := strings.Trim(strings.TrimSpace(line), "-*• ")
		if point == "" {
			continue
		}
		bullets = append(bullets, Bullet{Point: point})
	}
	if len(bullets) == 0 {
		return []Bullet{{Point: NoContent}}
	}
	return bullets
}

func firstGroup(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
