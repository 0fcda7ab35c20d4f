package classify

import (
	"ca-survey/internal/spacetime"
	"ca-survey/pkg/core"
)

// probeDepth places the probe this far from the center towards the predicted
// edge, as a fraction of the distance between them.
const probeDepth = 0.8

// simplePattern looks for a small tile repeated along the bottom of the active
// region. Each widening side is probed near its edge, a little way in from
// where the growth rate says the edge should be.
//
// A tile counts as a candidate when the tile directly above it is identical.
// Identical tiles are then counted outward and inward from the candidate. If
// they cover FullMatch of the expected width of the whole region, the run
// repeats. If they only cover that share of the probed side, the other side
// must confirm it on its own.
func (c *Classifier) simplePattern(g *spacetime.Grid, growth Growth) bool {
	size := g.Size()
	w := float64(size.W)
	sizes := c.cfg.tileSizes()

	if growth.Left > c.cfg.SideThreshold {
		anchor := int(w / 2 * (1 - growth.Left*probeDepth))
		half := false
		for _, ts := range sizes {
			covered, ok := c.tileRun(g, anchor, ts, -1)
			if !ok {
				continue
			}
			if covered >= growth.Sum()/2*w*c.cfg.FullMatch {
				return true
			}
			if covered >= growth.Left/2*w*c.cfg.FullMatch {
				half = true
				break
			}
		}
		if !half {
			return false
		}
	}

	if growth.Right > c.cfg.SideThreshold {
		anchor := int(w / 2 * (1 + growth.Right*probeDepth))
		for _, ts := range sizes {
			covered, ok := c.tileRun(g, anchor, ts, 1)
			if !ok {
				continue
			}
			if covered >= growth.Right/2*w*c.cfg.FullMatch {
				return true
			}
		}
	}
	return false
}

// tileRun takes the tile of size ts whose left column is x and whose bottom
// row is the second-to-last row. It reports false unless the tile above it is
// identical. Otherwise it counts identical tiles stepping outward (dir) and
// then inward, and returns the number of cells they cover horizontally.
func (c *Classifier) tileRun(g *spacetime.Grid, x int, ts core.Size, dir int) (float64, bool) {
	y := g.Size().H - 1 - ts.H
	tile, err := g.Slice(core.Point{X: x, Y: y}, ts)
	if err != nil {
		return 0, false
	}
	if !matches(g, tile, core.Point{X: x, Y: y - ts.H}) {
		return 0, false
	}

	count := 1
	for cx := x + dir*ts.W; matches(g, tile, core.Point{X: cx, Y: y}); cx += dir * ts.W {
		count++
	}
	for cx := x - dir*ts.W; matches(g, tile, core.Point{X: cx, Y: y}); cx -= dir * ts.W {
		count++
	}
	return float64(count * ts.W), true
}

// matches reports whether the tile-sized rectangle at pos equals tile. A
// rectangle leaving the grid never matches.
func matches(g *spacetime.Grid, tile *spacetime.Grid, pos core.Point) bool {
	other, err := g.Slice(pos, tile.Size())
	if err != nil {
		return false
	}
	return tile.Equal(other)
}
