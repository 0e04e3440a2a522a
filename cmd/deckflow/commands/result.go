package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/nguyentantai21042004/deck-flow/internal/pipeline"
)

func printResult(w io.Writer, res *pipeline.Result) {
	fmt.Fprintf(w, "Presentation saved as: %s (%d slides)\n", res.DeckPath, res.Slides)
	if res.JSONPath != "" {
		fmt.Fprintf(w, "Slide data: %s\n", res.JSONPath)
	}
	if res.VideoPath != "" {
		fmt.Fprintf(w, "Video: %s\n", res.VideoPath)
	}
	if res.HandoutPath != "" {
		fmt.Fprintf(w, "Handout: %s\n", res.HandoutPath)
	}
	for _, uri := range res.Published {
		fmt.Fprintf(w, "Published: %s\n", uri)
	}
	fmt.Fprintf(w, "Done in %s\n", res.Elapsed.Round(time.Second))
}
