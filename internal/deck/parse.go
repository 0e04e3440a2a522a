package deck

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	reFenceOpen  = regexp.MustCompile("(?i)^```(json)?")
	reFenceClose = regexp.MustCompile("```$")
	reObject     = regexp.MustCompile(`(?s)\{.*\}`)
)

// ExtractJSON strips Markdown code fences and returns the widest {...} span
// of a model response.
func ExtractJSON(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimSpace(reFenceOpen.ReplaceAllString(cleaned, ""))
		cleaned = strings.TrimSpace(reFenceClose.ReplaceAllString(cleaned, ""))
	}
	if m := reObject.FindString(cleaned); m != "" {
		cleaned = m
	}
	return cleaned
}

// Decode parses a model response into a Deck and reports why it failed.
func Decode(raw string) (Deck, error) {
	var d Deck
	if err := json.Unmarshal([]byte(ExtractJSON(raw)), &d); err != nil {
		return Deck{Slides: []Slide{}}, fmt.Errorf("decode slide json: %w", err)
	}
	d.Intro = strings.TrimSpace(d.Intro)
	if d.Slides == nil {
		d.Slides = []Slide{}
	}
	return d, nil
}

// Parse is Decode without the error: malformed input yields an empty deck.
func Parse(raw string) Deck {
	d, _ := Decode(raw)
	return d
}
