package classify

import (
	"ca-survey/internal/spacetime"
	"ca-survey/pkg/core"
)

// fractal samples the active region on a coarse lattice and flood fills from
// each sample. Nested patterns are made of large uniform areas, so their fills
// tend to run to the cutoff. The run is fractal when one state's distinct
// filled cells reach FractalRatio of what the fills could have accepted.
func (c *Classifier) fractal(g *spacetime.Grid, growth Growth) bool {
	points := c.samplePoints(g.Size(), growth)

	filled := make(map[uint8]map[core.Point]struct{})
	covered := make(map[core.Point]struct{})
	possible := 0
	for _, p := range points {
		if _, ok := covered[p]; ok {
			continue
		}
		possible += c.cfg.FillCutoff
		state, cells, err := g.Fill(p, c.cfg.FillCutoff)
		if err != nil {
			continue
		}
		set, ok := filled[state]
		if !ok {
			set = make(map[core.Point]struct{}, len(cells))
			filled[state] = set
		}
		for _, cell := range cells {
			set[cell] = struct{}{}
			covered[cell] = struct{}{}
		}
	}

	for _, set := range filled {
		if float64(len(set)) >= float64(possible)*c.cfg.FractalRatio {
			return true
		}
	}
	return false
}

// samplePoints returns lattice points strictly inside the cone traced by the
// two edges, assuming the run started from the middle of the top row.
func (c *Classifier) samplePoints(size core.Size, growth Growth) []core.Point {
	step := c.cfg.SampleSpacing
	mid := float64(size.W) / 2
	var points []core.Point
	for i := 0; i < size.W/step; i++ {
		for j := 0; j < size.H/step; j++ {
			x, y := float64(i*step), float64(j*step)
			if mid-x < y*growth.Left && x-mid < y*growth.Right {
				points = append(points, core.Point{X: i * step, Y: j * step})
			}
		}
	}
	return points
}
