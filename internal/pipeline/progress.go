package pipeline

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
)

// progress reports the step a run is on.
type progress interface {
	Step(desc string)
	Done()
}

type nopProgress struct{}

func (nopProgress) Step(string) {}
func (nopProgress) Done()       {}

type barProgress struct {
	bar *progressbar.ProgressBar
}

func newProgress(enabled bool, steps int, title string) progress {
	if !enabled {
		return nopProgress{}
	}
	return &barProgress{
		bar: progressbar.NewOptions(steps,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription(title),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetRenderBlankState(true),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		),
	}
}

func (p *barProgress) Step(desc string) {
	p.bar.Describe(fmt.Sprintf("[cyan]%s[reset]", desc))
	p.bar.Add(1)
}

func (p *barProgress) Done() {
	p.bar.Finish()
	fmt.Fprintln(os.Stderr)
}
