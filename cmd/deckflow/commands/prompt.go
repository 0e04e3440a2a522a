package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/deck-flow/internal/pipeline"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// prompter reads answers line by line from an interactive session.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// Line asks once and returns the trimmed answer; EOF yields "".
func (p *prompter) Line(label string) string {
	fmt.Fprint(p.out, label)
	line, _ := p.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// Slides asks for a slide count, clamping to 1..limit. A blank or invalid
// answer takes def.
func (p *prompter) Slides(label string, def, limit int) int {
	answer := p.Line(label)
	n, err := strconv.Atoi(answer)
	if err != nil {
		if answer != "" {
			fmt.Fprintf(p.out, "Invalid number. Using default of %d slides.\n", def)
		}
		return def
	}
	if n < 1 || n > limit {
		clamped := max(1, min(limit, n))
		fmt.Fprintf(p.out, "Slide count must be between 1 and %d. Using %d.\n", limit, clamped)
		return clamped
	}
	return n
}

// Mode asks topic (1) or paragraph (2); anything else is topic.
func (p *prompter) Mode() string {
	if p.Line("Choose input mode (1=Topic, 2=Paragraph): ") == "2" {
		return "paragraph"
	}
	return "topic"
}

// runInteractive is the bare `deckflow` command: ask for everything.
func runInteractive(cmd *cobra.Command) error {
	if !isTerminal() {
		return cmd.Help()
	}

	p := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
	cfg := appCtx.cfg

	var (
		res *pipeline.Result
		err error
	)
	switch p.Mode() {
	case "paragraph":
		text := p.Line("Enter paragraph/context for your presentation: ")
		res, err = appCtx.pipeline.RunParagraph(cmd.Context(), pipeline.ParagraphRequest{
			Text:      text,
			MaxSlides: cfg.Deck.MaxSlides,
			Video:     cfg.Video.Enabled,
			Handout:   cfg.Deck.Handout,
		})
	default:
		topic := p.Line("Enter your presentation topic: ")
		slides := p.Slides("Number of slides: ", cfg.Deck.DefaultSlides, cfg.Deck.MaxSlides)
		res, err = appCtx.pipeline.RunTopic(cmd.Context(), pipeline.TopicRequest{
			Topic:   topic,
			Slides:  slides,
			Video:   cfg.Video.Enabled,
			Handout: cfg.Deck.Handout,
		})
	}
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), res)
	return nil
}
