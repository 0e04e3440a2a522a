package composer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/deck-flow/internal/deck"
	"github.com/nguyentantai21042004/deck-flow/internal/llm"
)

const defaultTitle = "Presentation"

// Topic asks for exactly n slides on topic. A response that yields no JSON
// slides is retried through the text outline parser before giving up.
func (c *implComposer) Topic(ctx context.Context, topic string, n int) (deck.Deck, error) {
	c.logger.Info(ctx, "Generating JSON content for %q (%d slides)", topic, n)

	raw, err := c.llm.Complete(ctx, buildTopicPrompt(topic, n), llm.WithJSON())
	if err != nil {
		return deck.Deck{}, fmt.Errorf("generate slides: %w", err)
	}
	return c.parseDeck(ctx, raw)
}

// Regenerate is the reconciliation callback: count fresh slides on the same topic.
func (c *implComposer) Regenerate(ctx context.Context, topic string, count int) ([]deck.Slide, error) {
	raw, err := c.llm.Complete(ctx, buildTopicPrompt(topic, count), llm.WithJSON())
	if err != nil {
		return nil, fmt.Errorf("regenerate slides: %w", err)
	}
	d, err := c.parseDeck(ctx, raw)
	if err != nil {
		return nil, err
	}
	return d.Slides, nil
}

func (c *implComposer) Classify(ctx context.Context, paragraph string) Category {
	answer, err := c.llm.Complete(ctx, fmt.Sprintf(classifyPrompt, paragraph))
	if err != nil {
		c.logger.Warn(ctx, "Classification failed, using %s: %v", Business, err)
		return Business
	}

	category := Category(strings.ToLower(strings.Trim(strings.TrimSpace(answer), ".\"'")))
	if _, ok := styleInstructions[category]; !ok {
		c.logger.Debug(ctx, "Unknown category %q, using %s", answer, Business)
		return Business
	}
	return category
}

func (c *implComposer) Refine(ctx context.Context, paragraph string, category Category) string {
	refined, err := c.llm.Complete(ctx, buildRefinePrompt(paragraph, category))
	if err != nil || strings.TrimSpace(refined) == "" {
		c.logger.Warn(ctx, "Refinement failed, using original text: %v", err)
		return paragraph
	}
	return strings.TrimSpace(refined)
}

func (c *implComposer) Title(ctx context.Context, paragraph string) string {
	title, err := c.llm.Complete(ctx, buildTitlePrompt(paragraph))
	if err != nil {
		c.logger.Warn(ctx, "Title generation failed: %v", err)
		return defaultTitle
	}
	title = strings.Trim(strings.TrimSpace(title), "\"'`*#")
	title = strings.TrimSpace(title)
	if title == "" {
		return defaultTitle
	}
	return title
}

// Paragraph runs classify, refine and title, then asks for between 1 and
// maxSlides slides in the detected category's style. It returns the deck
// and the generated title.
func (c *implComposer) Paragraph(ctx context.Context, text string, maxSlides int) (deck.Deck, string, error) {
	if maxSlides < 1 {
		maxSlides = 1
	}

	c.logger.Info(ctx, "[Step 1] Detecting content type...")
	category := c.Classify(ctx, text)
	c.logger.Info(ctx, "Detected category: %s", category)

	c.logger.Info(ctx, "[Step 2] Refining input text...")
	refined := c.Refine(ctx, text, category)
	c.logger.Debug(ctx, "Refined text:\n%s", refined)

	title := c.Title(ctx, text)

	c.logger.Info(ctx, "[Step 3] Generating JSON slides...")
	raw, err := c.llm.Complete(ctx, buildParagraphPrompt(refined, category, 1, maxSlides), llm.WithJSON())
	if err != nil {
		return deck.Deck{}, title, fmt.Errorf("generate slides: %w", err)
	}

	d, err := c.parseDeck(ctx, raw)
	if err != nil {
		return deck.Deck{}, title, err
	}
	if len(d.Slides) > maxSlides {
		d.Slides = d.Slides[:maxSlides]
	}
	return d, title, nil
}

// Narration never fails: a bad answer falls back to one sentence per slide.
func (c *implComposer) Narration(ctx context.Context, topic string, d deck.Deck) Narration {
	c.logger.Info(ctx, "Generating narration script with AI...")

	raw, err := c.llm.Complete(ctx, buildNarrationPrompt(topic, d), llm.WithJSON())
	if err != nil {
		c.logger.Error(ctx, "Failed to generate narration script: %v", err)
		return FallbackNarration(topic, d)
	}

	n, err := decodeNarration(raw, topic, d)
	if err != nil {
		c.logger.Error(ctx, "Failed to parse narration script: %v", err)
		return FallbackNarration(topic, d)
	}
	return n
}

// FallbackNarration builds the script used when the model cannot provide one.
func FallbackNarration(topic string, d deck.Deck) Narration {
	n := Narration{
		TitleNarration:  fmt.Sprintf("Welcome to this presentation about %s. Let's explore the key insights and analysis.", topic),
		SlideNarrations: make([]string, 0, len(d.Slides)),
		Conclusion:      "Thank you for your attention. This concludes our presentation.",
	}
	for i, s := range d.Slides {
		title := s.Title
		if title == "" {
			title = fmt.Sprintf("slide %d", i+1)
		}
		insight := s.Insight
		if insight == "" {
			insight = "Key information is presented here."
		}
		n.SlideNarrations = append(n.SlideNarrations, fmt.Sprintf("This slide covers %s. %s", title, insight))
	}
	return n
}

// decodeNarration accepts a JSON object with any subset of the three keys
// and fills the missing ones with short defaults. The result always carries
// one slide narration per slide of d.
func decodeNarration(raw, topic string, d deck.Deck) (Narration, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(deck.ExtractJSON(raw)), &fields); err != nil {
		return Narration{}, fmt.Errorf("decode narration: %w", err)
	}

	n := Narration{
		TitleNarration:  fmt.Sprintf("Welcome to this presentation about %s.", topic),
		SlideNarrations: []string{},
		Conclusion:      "Thank you for your attention.",
	}
	if v, ok := fields["title_narration"]; ok {
		_ = json.Unmarshal(v, &n.TitleNarration)
	}
	if v, ok := fields["slide_narrations"]; ok {
		var list []string
		if json.Unmarshal(v, &list) == nil && list != nil {
			n.SlideNarrations = list
		}
	}
	if v, ok := fields["conclusion"]; ok {
		_ = json.Unmarshal(v, &n.Conclusion)
	}

	fallback := FallbackNarration(topic, d).SlideNarrations
	if len(n.SlideNarrations) > len(fallback) {
		n.SlideNarrations = n.SlideNarrations[:len(fallback)]
	}
	for i := range n.SlideNarrations {
		if strings.TrimSpace(n.SlideNarrations[i]) == "" {
			n.SlideNarrations[i] = fallback[i]
		}
	}
	n.SlideNarrations = append(n.SlideNarrations, fallback[len(n.SlideNarrations):]...)
	return n, nil
}

func (c *implComposer) parseDeck(ctx context.Context, raw string) (deck.Deck, error) {
	d, err := deck.Decode(raw)
	if err != nil {
		c.logger.Warn(ctx, "JSON parse failed: %v", err)
	} else {
		for _, issue := range deck.Validate(deck.ExtractJSON(raw)) {
			c.logger.Debug(ctx, "Slide JSON: %s", issue)
		}
	}

	if len(d.Slides) == 0 {
		outline := deck.ParseOutline(raw)
		if len(outline.Slides) > 0 {
			c.logger.Warn(ctx, "Recovered %d slides from text outline", len(outline.Slides))
			return outline, nil
		}
		return d, deck.ErrNoSlides
	}
	return d, nil
}
