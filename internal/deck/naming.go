package deck

import "strings"

var unsafeFileChars = strings.NewReplacer(
	" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_",
	"?", "_", "\"", "_", "<", "_", ">", "_", "|", "_",
)

// FileStem turns a topic into the stem shared by every artifact of a run.
func FileStem(topic string) string {
	stem := unsafeFileChars.Replace(strings.TrimSpace(topic))
	if stem == "" {
		return "presentation"
	}
	return stem
}

func DeckFileName(topic string) string    { return FileStem(topic) + "_McKinsey_Style.pptx" }
func VideoFileName(topic string) string   { return FileStem(topic) + "_presentation.mp4" }
func HandoutFileName(topic string) string { return FileStem(topic) + "_handout.docx" }
func JSONFileName(topic string) string    { return FileStem(topic) + "_slides.json" }
