// Package deck holds the slide-content model produced by the language model
// and the pure functions that parse, repair and reshape it before rendering.
package deck

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// Slide types.
const (
	TypeBullets = "bullets"
	TypeChart   = "chart"
)

// Placeholders written by the outline parser when the model left a slide empty.
const (
	NoChartData = "No chart data was available."
	NoContent   = "No content was provided by the AI for this slide."
)

// ErrNoSlides is returned when a response yields no usable slide at all.
var ErrNoSlides = errors.New("no slides could be parsed from the response")

// Deck is the slide-content JSON: an intro plus ordered slides.
type Deck struct {
	Intro  string  `json:"intro"`
	Slides []Slide `json:"slides"`
}

// Slide is one content slide. Bullets is set for bullet slides, Chart for
// chart slides; on the wire both live in the polymorphic "data" field.
type Slide struct {
	Title   string
	Insight string
	Type    string
	Bullets []Bullet
	Chart   *Chart
	Context string
}

// Bullet is a point with an optional longer description. It decodes from
// either {"point": ..., "desc": ...} or a bare string.
type Bullet struct {
	Point string `json:"point"`
	Desc  string `json:"desc,omitempty"`
}

// Chart is a chart request: a chart type, table rows and a source line.
type Chart struct {
	Type   string  `json:"type"`
	Data   [][]any `json:"data"`
	Source string  `json:"source,omitempty"`
}

type wireSlide struct {
	Title   string          `json:"title"`
	Insight string          `json:"insight"`
	Type    string          `json:"type"`
	Data    json.RawMessage `json:"data,omitempty"`
	Context string          `json:"context,omitempty"`
}

func (s *Slide) UnmarshalJSON(b []byte) error {
	var w wireSlide
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	*s = Slide{
		Title:   strings.TrimSpace(w.Title),
		Insight: strings.TrimSpace(w.Insight),
		Type:    strings.ToLower(strings.TrimSpace(w.Type)),
		Context: strings.TrimSpace(w.Context),
	}

	data := bytes.TrimSpace(w.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		if s.Type != TypeChart {
			s.Type = TypeBullets
		}
		return nil
	}

	switch {
	case s.Type == TypeChart || (s.Type == "" && data[0] == '{'):
		s.Type = TypeChart
		var c Chart
		if err := json.Unmarshal(data, &c); err == nil {
			s.Chart = &c
		}
	default:
		s.Type = TypeBullets
		s.Bullets = decodeBullets(data)
	}
	return nil
}

func (s Slide) MarshalJSON() ([]byte, error) {
	w := wireSlide{
		Title:   s.Title,
		Insight: s.Insight,
		Type:    s.Type,
		Context: s.Context,
	}

	var (
		data []byte
		err  error
	)
	if s.Type == TypeChart {
		data, err = json.Marshal(s.Chart)
	} else {
		bullets := s.Bullets
		if bullets == nil {
			bullets = []Bullet{}
		}
		data, err = json.Marshal(bullets)
	}
	if err != nil {
		return nil, err
	}
	w.Data = data
	return json.Marshal(w)
}

func (b *Bullet) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*b = Bullet{Point: strings.TrimSpace(s)}
	case '{':
		var raw struct {
			Point string `json:"point"`
			Desc  string `json:"desc"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*b = Bullet{Point: strings.TrimSpace(raw.Point), Desc: strings.TrimSpace(raw.Desc)}
	default:
		*b = Bullet{Point: string(data)}
	}
	return nil
}

// decodeBullets is lenient: an array of points, a single string, or nothing.
func decodeBullets(data []byte) []Bullet {
	switch data[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return nil
		}
		bullets := make([]Bullet, 0, len(items))
		for _, item := range items {
			var b Bullet
			if err := json.Unmarshal(item, &b); err != nil {
				continue
			}
			if b.Point == "" && b.Desc == "" {
				continue
			}
			bullets = append(bullets, b)
		}
		return bullets
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil || strings.TrimSpace(s) == "" {
			return nil
		}
		return []Bullet{{Point: strings.TrimSpace(s)}}
	}
	return nil
}

// Points returns the bullet points as plain strings.
func (s Slide) Points() []string {
	out := make([]string, 0, len(s.Bullets))
	for _, b := range s.Bullets {
		out = append(out, b.Point)
	}
	return out
}

// IsBroken reports whether a slide needs regeneration: its payload is empty
// or holds one of the placeholder strings.
func IsBroken(s Slide) bool {
	if s.Type == TypeChart {
		if s.Chart == nil || len(s.Chart.Data) == 0 {
			return true
		}
	} else if len(s.Bullets) == 0 {
		return true
	}

	for _, b := range s.Bullets {
		for _, text := range []string{b.Point, b.Desc} {
			if strings.Contains(text, NoContent) || strings.Contains(text, NoChartData) {
				return true
			}
		}
	}
	return false
}

func bulletSlide(title, insight string, points ...string) Slide {
	bullets := make([]Bullet, len(points))
	for i, p := range points {
		bullets[i] = Bullet{Point: p}
	}
	return Slide{Title: title, Insight: insight, Type: TypeBullets, Bullets: bullets}
}
