package deck

import (
	"context"
	"fmt"
)

// Regenerator asks the model for count fresh slides on the same subject.
type Regenerator func(ctx context.Context, count int) ([]Slide, error)

// ReconcileReport counts what Reconcile changed.
type ReconcileReport struct {
	Attempts  int
	Replaced  int
	Appended  int
	Trimmed   int
	Padded    int
	Fallbacks int
	LastErr   error
}

var (
	paddingPoints = []string{
		"This area requires additional research and analysis",
		"Strategic implications need further evaluation",
		"Recommend follow-up discussion with stakeholders",
	}
	fallbackPoints = []string{
		"Comprehensive analysis of current market conditions",
		"Strategic recommendations for optimal outcomes",
		"Implementation roadmap and next steps",
	}
)

// Reconcile returns exactly n slides. Broken slides are regenerated in place
// so the surviving slides keep their positions; missing slides are appended;
// whatever is still short or broken after maxRetries attempts is replaced by
// generic filler. The input slice is not modified.
func Reconcile(ctx context.Context, slides []Slide, n int, regen Regenerator, maxRetries int) ([]Slide, ReconcileReport) {
	var report ReconcileReport
	if n <= 0 {
		return []Slide{}, report
	}

	out := make([]Slide, len(slides), max(len(slides), n))
	copy(out, slides)

	for attempt := 0; regen != nil && attempt < maxRetries; attempt++ {
		if ctx.Err() != nil {
			report.LastErr = ctx.Err()
			break
		}

		broken := brokenIndices(out)
		missing := max(0, n-len(out))
		needed := len(broken) + missing
		if needed == 0 {
			break
		}

		report.Attempts++
		fresh, err := regen(ctx, needed)
		if err != nil {
			report.LastErr = err
			break
		}

		next := 0
		for _, idx := range broken {
			for next < len(fresh) && IsBroken(fresh[next]) {
				next++
			}
			if next >= len(fresh) {
				break
			}
			out[idx] = fresh[next]
			next++
			report.Replaced++
		}
		for ; next < len(fresh) && len(out) < n; next++ {
			if IsBroken(fresh[next]) {
				continue
			}
			out = append(out, fresh[next])
			report.Appended++
		}
	}

	if len(out) > n {
		report.Trimmed = len(out) - n
		out = out[:n]
	}
	for i := len(out); i < n; i++ {
		out = append(out, bulletSlide(
			fmt.Sprintf("Additional Insights %d", i+1),
			"Further analysis and strategic considerations",
			paddingPoints...,
		))
		report.Padded++
	}

	for i := range out {
		if IsBroken(out[i]) {
			out[i] = bulletSlide(
				fmt.Sprintf("Key Topic %d", i+1),
				"Strategic analysis and recommendations",
				fallbackPoints...,
			)
			report.Fallbacks++
		}
	}
	return out, report
}

func brokenIndices(slides []Slide) []int {
	var idx []int
	for i, s := range slides {
		if IsBroken(s) {
			idx = append(idx, i)
		}
	}
	return idx
}
