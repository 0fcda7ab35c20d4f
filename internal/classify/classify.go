// Package classify sorts a finished spacetime history into one of five
// qualitative behaviors.
//
// The background pattern is subtracted first so that only the active region is
// nonzero. The edges of that region in the first and last rows give a growth
// rate per side. Runs that die out or do not widen are settled by the edges
// alone. Wider runs go through two heuristics in turn: a search for a small
// tile repeated along the bottom rows, and a flood-fill density test that
// detects the large uniform areas of nested patterns.
package classify

import (
	"fmt"

	"ca-survey/internal/spacetime"
)

// Growth is the signed per-step horizontal speed of each edge of the active
// region. Positive values mean the edge moves outward.
type Growth struct {
	Left  float64
	Right float64
}

// Sum returns Left + Right, how fast the active region widens.
func (g Growth) Sum() float64 { return g.Left + g.Right }

// Result is the outcome of classifying one grid.
type Result struct {
	Category Category
	Growth   Growth
	// Activity is the width of the active region in each row, zero for rows
	// where it is empty.
	Activity []int
}

// Classifier applies a fixed set of thresholds.
type Classifier struct {
	cfg Config
}

// New returns a Classifier using cfg. Zero fields take their default value.
func New(cfg Config) *Classifier {
	return &Classifier{cfg: cfg.sanitized()}
}

// Config returns the thresholds in use.
func (c *Classifier) Config() Config { return c.cfg }

// Classify classifies g with the default thresholds.
func Classify(g *spacetime.Grid) (Result, error) {
	return New(DefaultConfig()).Classify(g)
}

// Classify runs the classification pipeline over g.
func (c *Classifier) Classify(g *spacetime.Grid) (Result, error) {
	active, err := Foreground(g)
	if err != nil {
		return Result{}, err
	}
	res := Result{Activity: activity(active)}

	growth, ok := shape(active)
	if !ok {
		res.Category = Vanishing
		return res, nil
	}
	res.Growth = growth
	switch {
	case growth.Sum() < c.cfg.LineThreshold:
		res.Category = Line
	case c.simplePattern(active, growth):
		res.Category = SimpleRepeating
	case c.fractal(active, growth):
		res.Category = Fractal
	default:
		res.Category = Complex
	}
	return res, nil
}

// Foreground returns g with its background pattern subtracted.
func Foreground(g *spacetime.Grid) (*spacetime.Grid, error) {
	bg, err := g.Background()
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}
	active, err := g.Difference(bg)
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}
	return active, nil
}

// Shape returns the growth rates of g's active region. It reports false when
// the first or last row has no active cells.
func Shape(g *spacetime.Grid) (Growth, bool, error) {
	active, err := Foreground(g)
	if err != nil {
		return Growth{}, false, err
	}
	growth, ok := shape(active)
	return growth, ok, nil
}

// shape measures edges on a grid whose background is already removed.
func shape(active *spacetime.Grid) (Growth, bool) {
	last := active.Size().H - 1
	if last < 1 {
		return Growth{}, false
	}
	l0, r0 := active.FindEdges(0)
	if l0 == -1 {
		return Growth{}, false
	}
	l1, r1 := active.FindEdges(last)
	if l1 == -1 {
		return Growth{}, false
	}
	return Growth{
		Left:  float64(l0-l1) / float64(last),
		Right: float64(r0-r1) / float64(last),
	}, true
}

func activity(active *spacetime.Grid) []int {
	size := active.Size()
	out := make([]int, size.H)
	for y := range out {
		l, r := active.FindEdges(y)
		if l == -1 {
			continue
		}
		out[y] = size.W - r - l
	}
	return out
}
