package composer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/deck-flow/internal/deck"
	"github.com/nguyentantai21042004/deck-flow/internal/llm"
	"github.com/nguyentantai21042004/deck-flow/internal/logger"
)

// fakeLLM answers prompts in order and records what it was asked.
type fakeLLM struct {
	answers []string
	errs    []error
	prompts []string
}

func (f *fakeLLM) Complete(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	i := len(f.prompts)
	f.prompts = append(f.prompts, prompt)
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	if i < len(f.answers) {
		return f.answers[i], err
	}
	return "", err
}

const twoSlides = "```json\n" + `{"intro":"Hello","slides":[
{"title":"A","insight":"a","type":"bullets","data":[{"point":"p","desc":"d"}]},
{"title":"B","insight":"b","type":"chart","data":{"type":"PIE","data":[["x",1],["y",2]],"source":"S"}}]}` + "\n```"

func TestTopic(t *testing.T) {
	f := &fakeLLM{answers: []string{twoSlides}}
	c := New(f, logger.Nop())

	d, err := c.Topic(context.Background(), "Cloud Costs", 4)
	if err != nil {
		t.Fatalf("Topic() error = %v", err)
	}
	if d.Intro != "Hello" || len(d.Slides) != 2 {
		t.Fatalf("Topic() = %+v", d)
	}
	if d.Slides[1].Chart == nil || d.Slides[1].Chart.Type != "PIE" {
		t.Errorf("chart slide = %+v", d.Slides[1])
	}
	prompt := f.prompts[0]
	for _, want := range []string{`exactly 4 slides`, `"Cloud Costs"`, `at least one slide with "type": "chart"`} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestTopicPromptSmallDeckHasNoChartRule(t *testing.T) {
	if strings.Contains(buildTopicPrompt("x", 2), "at least one slide") {
		t.Error("two slide prompt should not require a chart")
	}
}

func TestTopicFallsBackToOutline(t *testing.T) {
	outline := "Title: Growth\nKey Insight: It grows\nBullets:\n- one\n- two\n"
	c := New(&fakeLLM{answers: []string{outline}}, logger.Nop())

	d, err := c.Topic(context.Background(), "x", 1)
	if err != nil {
		t.Fatalf("Topic() error = %v", err)
	}
	if len(d.Slides) != 1 || d.Slides[0].Title != "Growth" {
		t.Errorf("Topic() = %+v", d)
	}
}

func TestTopicNoSlides(t *testing.T) {
	c := New(&fakeLLM{answers: []string{"sorry, I cannot help"}}, logger.Nop())
	if _, err := c.Topic(context.Background(), "x", 3); !errors.Is(err, deck.ErrNoSlides) {
		t.Errorf("Topic() error = %v, want ErrNoSlides", err)
	}
}

func TestTopicLLMError(t *testing.T) {
	c := New(&fakeLLM{errs: []error{errors.New("down")}}, logger.Nop())
	if _, err := c.Topic(context.Background(), "x", 3); err == nil {
		t.Error("Topic() expected error")
	}
}

func TestRegenerate(t *testing.T) {
	f := &fakeLLM{answers: []string{twoSlides}}
	slides, err := New(f, logger.Nop()).Regenerate(context.Background(), "Energy", 2)
	if err != nil {
		t.Fatalf("Regenerate() error = %v", err)
	}
	if len(slides) != 2 {
		t.Errorf("len = %d, want 2", len(slides))
	}
	if !strings.Contains(f.prompts[0], "exactly 2 slides") {
		t.Error("prompt should ask for the requested count")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		answer string
		err    error
		want   Category
	}{
		{answer: "technical", want: Technical},
		{answer: "  Academic.\n", want: Academic},
		{answer: "poetry", want: Business},
		{err: errors.New("timeout"), want: Business},
	}

	for _, tt := range tests {
		c := New(&fakeLLM{answers: []string{tt.answer}, errs: []error{tt.err}}, logger.Nop())
		if got := c.Classify(context.Background(), "text"); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.answer, got, tt.want)
		}
	}
}

func TestRefine(t *testing.T) {
	f := &fakeLLM{answers: []string{"  refined text  "}}
	c := New(f, logger.Nop())
	if got := c.Refine(context.Background(), "raw", Motivational); got != "refined text" {
		t.Errorf("Refine() = %q", got)
	}
	if !strings.Contains(f.prompts[0], "story-driven") {
		t.Error("refine prompt should use the motivational guidelines")
	}

	failing := New(&fakeLLM{errs: []error{errors.New("x")}}, logger.Nop())
	if got := failing.Refine(context.Background(), "raw", Business); got != "raw" {
		t.Errorf("Refine() on error = %q, want original", got)
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		answer string
		err    error
		want   string
	}{
		{answer: `"Future of Work"`, want: "Future of Work"},
		{answer: "  Solar Power Outlook\n", want: "Solar Power Outlook"},
		{answer: `""`, want: "Presentation"},
		{err: errors.New("x"), want: "Presentation"},
	}
	for _, tt := range tests {
		c := New(&fakeLLM{answers: []string{tt.answer}, errs: []error{tt.err}}, logger.Nop())
		if got := c.Title(context.Background(), "text"); got != tt.want {
			t.Errorf("Title(%q) = %q, want %q", tt.answer, got, tt.want)
		}
	}
}

func TestTitlePromptTruncates(t *testing.T) {
	p := buildTitlePrompt(strings.Repeat("a", 500))
	if strings.Contains(p, strings.Repeat("a", 201)) {
		t.Error("title prompt should use at most 200 characters")
	}
}

func TestParagraph(t *testing.T) {
	f := &fakeLLM{answers: []string{"educational", "refined", "Learning Go", twoSlides}}
	d, title, err := New(f, logger.Nop()).Paragraph(context.Background(), "some paragraph", 1)
	if err != nil {
		t.Fatalf("Paragraph() error = %v", err)
	}
	if title != "Learning Go" {
		t.Errorf("title = %q", title)
	}
	if len(d.Slides) != 1 {
		t.Errorf("slides = %d, want trimmed to 1", len(d.Slides))
	}
	last := f.prompts[3]
	for _, want := range []string{"professional educational PowerPoint", `"""refined"""`, "between 1 and 1 slides", "learning outcomes"} {
		if !strings.Contains(last, want) {
			t.Errorf("paragraph prompt missing %q", want)
		}
	}
}

func TestNarration(t *testing.T) {
	d := deck.Parse(twoSlides)

	t.Run("complete", func(t *testing.T) {
		f := &fakeLLM{answers: []string{`{"title_narration":"Hi","slide_narrations":["one","two"],"conclusion":"Bye"}`}}
		n := New(f, logger.Nop()).Narration(context.Background(), "Topic", d)
		if n.TitleNarration != "Hi" || len(n.SlideNarrations) != 2 || n.Conclusion != "Bye" {
			t.Errorf("Narration() = %+v", n)
		}
		if !strings.Contains(f.prompts[0], "Chart Type: PIE") || !strings.Contains(f.prompts[0], "- p: d") {
			t.Errorf("narration prompt missing slide details:\n%s", f.prompts[0])
		}
	})

	t.Run("partial", func(t *testing.T) {
		f := &fakeLLM{answers: []string{`{"slide_narrations":"bad"}`}}
		n := New(f, logger.Nop()).Narration(context.Background(), "Topic", d)
		if n.TitleNarration != "Welcome to this presentation about Topic." {
			t.Errorf("TitleNarration = %q", n.TitleNarration)
		}
		if n.Conclusion != "Thank you for your attention." {
			t.Errorf("Conclusion = %q", n.Conclusion)
		}
		want := FallbackNarration("Topic", d).SlideNarrations
		if len(n.SlideNarrations) != 2 || n.SlideNarrations[0] != want[0] || n.SlideNarrations[1] != want[1] {
			t.Errorf("SlideNarrations = %v, want %v", n.SlideNarrations, want)
		}
	})

	t.Run("short list", func(t *testing.T) {
		f := &fakeLLM{answers: []string{`{"title_narration":"Hi","slide_narrations":["one"],"conclusion":"Bye"}`}}
		n := New(f, logger.Nop()).Narration(context.Background(), "Topic", d)
		if len(n.SlideNarrations) != 2 {
			t.Fatalf("SlideNarrations = %v, want 2 entries", n.SlideNarrations)
		}
		if n.SlideNarrations[0] != "one" || n.SlideNarrations[1] != "This slide covers B. b" {
			t.Errorf("SlideNarrations = %v", n.SlideNarrations)
		}
	})

	t.Run("extra and blank entries", func(t *testing.T) {
		f := &fakeLLM{answers: []string{`{"slide_narrations":["  ","two","three"]}`}}
		n := New(f, logger.Nop()).Narration(context.Background(), "Topic", d)
		if len(n.SlideNarrations) != 2 || n.SlideNarrations[0] != "This slide covers A. a" || n.SlideNarrations[1] != "two" {
			t.Errorf("SlideNarrations = %v", n.SlideNarrations)
		}
	})

	t.Run("fallback", func(t *testing.T) {
		n := New(&fakeLLM{answers: []string{"not json"}}, logger.Nop()).Narration(context.Background(), "Topic", d)
		want := FallbackNarration("Topic", d)
		if n.TitleNarration != want.TitleNarration || n.Conclusion != want.Conclusion {
			t.Errorf("Narration() = %+v", n)
		}
		if len(n.SlideNarrations) != 2 || n.SlideNarrations[0] != "This slide covers A. a" {
			t.Errorf("SlideNarrations = %v", n.SlideNarrations)
		}
	})
}

func TestFallbackNarrationEmptySlide(t *testing.T) {
	n := FallbackNarration("T", deck.Deck{Slides: []deck.Slide{{}}})
	if n.SlideNarrations[0] != "This slide covers slide 1. Key information is presented here." {
		t.Errorf("got %q", n.SlideNarrations[0])
	}
}
