package commands

import (
	"fmt"

	"github.com/nguyentantai21042004/deck-flow/internal/pipeline"
	"github.com/spf13/cobra"
)

// topic: exactly N slides on one topic, repairing broken slides.
func topicCmd() *cobra.Command {
	var (
		topic       string
		slides      int
		withVideo   bool
		withHandout bool
	)

	cmd := &cobra.Command{
		Use:   "topic [topic]",
		Short: "Generate a deck with an exact number of slides on a topic",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if topic == "" && len(args) == 1 {
				topic = args[0]
			}

			p := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
			if topic == "" {
				if !isTerminal() {
					return fmt.Errorf("topic required (--topic)")
				}
				topic = p.Line("Enter your presentation topic: ")
			}
			if slides == 0 && isTerminal() {
				slides = p.Slides("Number of slides: ", appCtx.cfg.Deck.DefaultSlides, appCtx.cfg.Deck.MaxSlides)
			}

			res, err := appCtx.pipeline.RunTopic(cmd.Context(), pipeline.TopicRequest{
				Topic:   topic,
				Slides:  slides,
				Video:   flagOr(cmd, "video", withVideo, appCtx.cfg.Video.Enabled),
				Handout: flagOr(cmd, "handout", withHandout, appCtx.cfg.Deck.Handout),
			})
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&topic, "topic", "t", "", "presentation topic")
	cmd.Flags().IntVarP(&slides, "slides", "n", 0, "number of content slides (1-15)")
	cmd.Flags().BoolVar(&withVideo, "video", false, "also render a narrated video")
	cmd.Flags().BoolVar(&withHandout, "handout", false, "also write a .docx handout")
	return cmd
}

// flagOr returns the flag value when it was set, otherwise the config default.
func flagOr(cmd *cobra.Command, name string, value, fallback bool) bool {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}
