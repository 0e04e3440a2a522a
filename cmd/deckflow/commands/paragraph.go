package commands

import (
	"fmt"
	"os"

	"github.com/nguyentantai21042004/deck-flow/internal/pipeline"
	"github.com/spf13/cobra"
)

// paragraph: classify, refine and title free text, then up to N slides.
func paragraphCmd() *cobra.Command {
	var (
		text        string
		file        string
		slides      int
		withVideo   bool
		withHandout bool
	)

	cmd := &cobra.Command{
		Use:   "paragraph",
		Short: "Generate a deck from a paragraph of free text",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read %s: %w", file, err)
				}
				text = string(data)
			}

			if text == "" {
				if !isTerminal() {
					return fmt.Errorf("text required (--text or --file)")
				}
				text = newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr()).Line("Enter paragraph/context for your presentation: ")
			}

			res, err := appCtx.pipeline.RunParagraph(cmd.Context(), pipeline.ParagraphRequest{
				Text:      text,
				MaxSlides: slides,
				Video:     flagOr(cmd, "video", withVideo, appCtx.cfg.Video.Enabled),
				Handout:   flagOr(cmd, "handout", withHandout, appCtx.cfg.Deck.Handout),
			})
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "paragraph text")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the paragraph from a file")
	cmd.Flags().IntVarP(&slides, "slides", "n", 15, "maximum number of content slides")
	cmd.Flags().BoolVar(&withVideo, "video", false, "also render a narrated video")
	cmd.Flags().BoolVar(&withHandout, "handout", false, "also write a .docx handout")
	cmd.MarkFlagsMutuallyExclusive("text", "file")
	return cmd
}
