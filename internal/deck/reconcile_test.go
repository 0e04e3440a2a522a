package deck

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func good(title string) Slide { return bulletSlide(title, "insight", "point") }
func broken(title string) Slide {
	return Slide{Title: title, Type: TypeBullets, Bullets: []Bullet{{Point: NoContent}}}
}

// fixedRegen hands out fresh slides named fresh-1, fresh-2, ... and records the
// counts it was asked for.
func fixedRegen(calls *[]int) Regenerator {
	next := 0
	return func(ctx context.Context, count int) ([]Slide, error) {
		*calls = append(*calls, count)
		out := make([]Slide, count)
		for i := range out {
			next++
			out[i] = good(fmt.Sprintf("fresh-%d", next))
		}
		return out, nil
	}
}

func TestReconcileAlwaysReturnsN(t *testing.T) {
	failing := func(ctx context.Context, count int) ([]Slide, error) {
		return nil, errors.New("llm down")
	}
	empty := func(ctx context.Context, count int) ([]Slide, error) { return nil, nil }

	inputs := map[string][]Slide{
		"none":        nil,
		"short":       {good("a")},
		"exact":       {good("a"), good("b"), good("c")},
		"long":        {good("a"), good("b"), good("c"), good("d"), good("e")},
		"all broken":  {broken("a"), broken("b"), broken("c")},
		"mixed":       {good("a"), broken("b")},
		"empty chart": {{Title: "c", Type: TypeChart}},
	}
	regens := map[string]Regenerator{
		"nil":     nil,
		"failing": failing,
		"empty":   empty,
	}

	for inName, in := range inputs {
		for rName, regen := range regens {
			for _, n := range []int{1, 3, 4} {
				t.Run(fmt.Sprintf("%s/%s/n=%d", inName, rName, n), func(t *testing.T) {
					out, _ := Reconcile(context.Background(), in, n, regen, 2)
					if len(out) != n {
						t.Fatalf("len = %d, want %d", len(out), n)
					}
					for i, s := range out {
						if IsBroken(s) {
							t.Errorf("slide %d still broken: %+v", i, s)
						}
					}
				})
			}
		}
	}
}

func TestReconcileReplacesInPlace(t *testing.T) {
	var calls []int
	in := []Slide{good("a"), broken("b"), good("c"), broken("d")}

	out, report := Reconcile(context.Background(), in, 5, fixedRegen(&calls), 2)

	wantTitles := []string{"a", "fresh-1", "c", "fresh-2", "fresh-3"}
	for i, want := range wantTitles {
		if out[i].Title != want {
			t.Errorf("slide %d = %q, want %q", i, out[i].Title, want)
		}
	}
	if len(calls) != 1 || calls[0] != 3 {
		t.Errorf("regenerator calls = %v, want [3]", calls)
	}
	if report.Replaced != 2 || report.Appended != 1 || report.Padded != 0 {
		t.Errorf("report = %+v", report)
	}
	if in[1].Title != "b" {
		t.Error("input slice must not be modified")
	}
}

func TestReconcileSkipsBrokenReplacements(t *testing.T) {
	attempt := 0
	regen := func(ctx context.Context, count int) ([]Slide, error) {
		attempt++
		if attempt == 1 {
			return []Slide{broken("still-bad")}, nil
		}
		return []Slide{good("second-try")}, nil
	}

	out, report := Reconcile(context.Background(), []Slide{broken("x"), good("y")}, 2, regen, 2)
	if out[0].Title != "second-try" || out[1].Title != "y" {
		t.Errorf("titles = %q, %q", out[0].Title, out[1].Title)
	}
	if report.Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", report.Attempts)
	}
}

func TestReconcileFallbacks(t *testing.T) {
	out, report := Reconcile(context.Background(), []Slide{broken("x")}, 3, nil, 2)

	if out[0].Title != "Key Topic 1" || out[0].Insight != "Strategic analysis and recommendations" {
		t.Errorf("slide 0 = %+v", out[0])
	}
	if out[1].Title != "Additional Insights 2" || out[2].Title != "Additional Insights 3" {
		t.Errorf("padding titles = %q, %q", out[1].Title, out[2].Title)
	}
	if len(out[1].Bullets) != 3 || out[1].Insight != "Further analysis and strategic considerations" {
		t.Errorf("padding slide = %+v", out[1])
	}
	if report.Padded != 2 || report.Fallbacks != 1 {
		t.Errorf("report = %+v", report)
	}
}

func TestReconcileTrims(t *testing.T) {
	in := []Slide{good("a"), good("b"), good("c")}
	out, report := Reconcile(context.Background(), in, 2, nil, 2)
	if len(out) != 2 || out[1].Title != "b" || report.Trimmed != 1 {
		t.Errorf("out = %+v, report = %+v", out, report)
	}
}

func TestReconcileStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls []int
	out, report := Reconcile(ctx, []Slide{broken("a")}, 1, fixedRegen(&calls), 2)
	if len(calls) != 0 {
		t.Errorf("regenerator should not run after cancel, calls = %v", calls)
	}
	if len(out) != 1 || !errors.Is(report.LastErr, context.Canceled) {
		t.Errorf("out = %+v, report = %+v", out, report)
	}
}

func TestReconcileZero(t *testing.T) {
	out, _ := Reconcile(context.Background(), []Slide{good("a")}, 0, nil, 2)
	if len(out) != 0 {
		t.Errorf("len = %d, want 0", len(out))
	}
}
