package composer

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/deck-flow/internal/deck"
)

// slideFormat is shared by the topic and paragraph prompts. %s is the
// bullet description length hint.
const slideFormat = `- Return ONLY valid JSON, no explanations or markdown.
- Each slide must include:
  - "title": max 8 words
  - "insight": %s
  - "type": either "bullets" or "chart"
  - If "type" = "bullets", "data" must be an array of objects:
    {"point": "short phrase", "desc": "%s"}
  - If "type" = "chart", "data" must be JSON:
    {
      "type": "BAR" | "LINE" | "PIE" | "COLUMN" | "DOUGHNUT" | "AREA" | "SCATTER" | "STACKED_BAR",
      "data": [["Label1", 123], ["Label2", 456]],
      "source": "Source: Organization, 2025"
    }
    and optionally include "context": "Why this data matters"

JSON format:
{
  "intro": "short intro text",
  "slides": [
    {
      "title": "Slide Title",
      "insight": "Key insight",
      "type": "bullets",
      "data": [
        {"point": "Clarity", "desc": "Use straightforward language to avoid confusion"},
        {"point": "Audience Awareness", "desc": "Adapt tone and style to the readers"}
      ]
    },
    {
      "title": "Slide with Chart",
      "insight": "Data-driven point",
      "type": "chart",
      "data": {
        "type": "COLUMN",
        "data": [["X", 10], ["Y", 20]],
        "source": "Source: Example Org, 2025"
      },
      "context": "Why this data is important"
    }
  ]
}`

const topicPrompt = `You are preparing a professional, data-driven PowerPoint presentation outline
with exactly %d slides on the topic "%s".

Rules:
- "intro" must be maximum 1-2 lines (<=150 characters).
%s- Chart data must look like real figures for the topic, not placeholders.
` + "%s"

const classifyPrompt = `Classify the following text into one category:
- business
- academic
- technical
- educational
- motivational
- general

Text:
"""%s"""

Respond with only one word (the category).`

const refinePrompt = `Refine and summarize the following text for a professional %s presentation.
%s
Output 5-6 concise paragraphs, well-structured for slide generation.
Do not use bold, italics, underlines, Markdown symbols (like *, **, _), or any decorative formatting.
Only plain text should be returned.
Text:
"""%s"""

Refined version:`

const titlePrompt = `Generate a concise, professional presentation title (max 6 words) from this content:
"%s..."

Return only the title, no quotes or formatting.`

const paragraphPrompt = `You are preparing a professional %s PowerPoint presentation outline
based on the following refined content:

"""%s"""

Rules:
- Create between %d and %d slides depending on content richness.
- %s
- "intro" must be maximum 2-3 lines.
` + "%s"

const narrationPrompt = `Create a professional narration script for a PowerPoint presentation about "%s".
The script should be engaging, clear, and suitable for text-to-speech conversion.

Presentation data:
Introduction: %s

Slides:
%s
Create a narration script with the following structure:
1. Title slide: Welcome and introduction (20-30 seconds)
2. For each content slide: Explain the title, key insight, and main points (30-45 seconds each)
3. Keep the language conversational but professional
4. Use smooth transitions between slides
5. End with a brief conclusion

Return only a JSON object in this exact format:
{
    "title_narration": "Welcome text for title slide...",
    "slide_narrations": [
        "Narration for slide 1...",
        "Narration for slide 2..."
    ],
    "conclusion": "Brief closing remarks..."
}`

var refineGuidelines = map[Category]string{
	Business:     "Make it concise, factual, and strategic. Focus on insights, numbers, and implications.",
	Academic:     "Make it clear, explanatory, with definitions and logical flow.",
	Technical:    "Make it precise, structured, with focus on processes, systems, and technical clarity.",
	Educational:  "Make it simple, clear, and beginner-friendly with learning outcomes.",
	Motivational: "Make it inspiring, story-driven, with positive tone and key messages.",
	General:      "Make it well-structured, clear, and neutral.",
}

var styleInstructions = map[Category]string{
	Business:     "Use a McKinsey-style with charts, insights, and data-driven points.",
	Academic:     "Use an academic style with definitions, theories, and structured explanation.",
	Technical:    "Use a technical style with system diagrams, architecture, workflows, or pseudocode.",
	Educational:  "Use an educational style with simple language, learning outcomes, and key concepts.",
	Motivational: "Use a motivational style with quotes, storytelling, and call-to-action messages.",
	General:      "Use a general informative style with clarity and balanced explanation.",
}

func buildTopicPrompt(topic string, n int) string {
	chartRule := ""
	if n >= 3 {
		chartRule = "- Include at least one slide with \"type\": \"chart\".\n"
	}
	format := fmt.Sprintf(slideFormat, "one sentence", "1-2 line explanation")
	return fmt.Sprintf(topicPrompt, n, topic, chartRule, format)
}

func buildParagraphPrompt(text string, category Category, minSlides, maxSlides int) string {
	style, ok := styleInstructions[category]
	if !ok {
		style = styleInstructions[Business]
	}
	format := fmt.Sprintf(slideFormat, "one or two sentences summarizing the key takeaway", "5-6 line proper explanation")
	return fmt.Sprintf(paragraphPrompt, category, text, minSlides, maxSlides, style, format)
}

func buildRefinePrompt(text string, category Category) string {
	guidelines, ok := refineGuidelines[category]
	if !ok {
		guidelines = refineGuidelines[Business]
	}
	return fmt.Sprintf(refinePrompt, category, guidelines, text)
}

func buildTitlePrompt(text string) string {
	runes := []rune(text)
	if len(runes) > 200 {
		runes = runes[:200]
	}
	return fmt.Sprintf(titlePrompt, string(runes))
}

// buildNarrationPrompt lists every slide with at most three bullets so long
// decks stay within the model's context.
func buildNarrationPrompt(topic string, d deck.Deck) string {
	var b strings.Builder
	for i, s := range d.Slides {
		fmt.Fprintf(&b, "Slide %d: %s\n", i+1, s.Title)
		fmt.Fprintf(&b, "Key Insight: %s\n", s.Insight)

		if s.Type == deck.TypeChart {
			chartType, source := "Unknown", "No source"
			if s.Chart != nil {
				if s.Chart.Type != "" {
					chartType = s.Chart.Type
				}
				if s.Chart.Source != "" {
					source = s.Chart.Source
				}
			}
			fmt.Fprintf(&b, "Chart Type: %s\n", chartType)
			fmt.Fprintf(&b, "Chart Source: %s\n", source)
			if s.Context != "" {
				fmt.Fprintf(&b, "Context: %s\n", s.Context)
			}
			continue
		}

		for j, bullet := range s.Bullets {
			if j == 3 {
				break
			}
			if bullet.Desc != "" {
				fmt.Fprintf(&b, "- %s: %s\n", bullet.Point, bullet.Desc)
			} else {
				fmt.Fprintf(&b, "- %s\n", bullet.Point)
			}
		}
	}
	return fmt.Sprintf(narrationPrompt, topic, d.Intro, b.String())
}
