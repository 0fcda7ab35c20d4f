package spacetime

import (
	"fmt"

	"ca-survey/pkg/core"
)

// fillOffsets lists the 4-connected neighbors in exploration order.
var fillOffsets = [4]core.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1}}

const (
	markNone uint8 = iota
	markSeen
	markRejected
)

// Fill explores the region of cells sharing the state of start, breadth first,
// and returns that state with the accepted cells in visiting order.
//
// The search resists thin filaments. A cell entered by a horizontal step is
// only queued if the cell above or below it has the same state; one entered by
// a vertical step only if the cell to its left or right does. A same-state cell
// failing that test may still be queued later from another direction. The
// search stops once cutoff cells are accepted, so the result is at most cutoff
// cells long.
func (g *Grid) Fill(start core.Point, cutoff int) (uint8, []core.Point, error) {
	size := g.Size()
	if !start.In(size) {
		return 0, nil, fmt.Errorf("%w: fill start %v in %v", ErrOutOfRangeSlice, start, size)
	}
	state := g.At(start.X, start.Y)
	marks := make(map[core.Point]uint8)
	marks[start] = markSeen

	queue := []core.Point{start}
	var accepted []core.Point
	for head := 0; head < len(queue) && len(accepted) < cutoff; head++ {
		cur := queue[head]
		for _, d := range fillOffsets {
			next := cur.Add(d)
			if marks[next] != markNone || !next.In(size) {
				continue
			}
			if g.At(next.X, next.Y) != state {
				marks[next] = markRejected
				continue
			}
			var wide bool
			if d.X != 0 {
				wide = g.same(next.X, next.Y+1, state) || g.same(next.X, next.Y-1, state)
			} else {
				wide = g.same(next.X+1, next.Y, state) || g.same(next.X-1, next.Y, state)
			}
			if wide {
				marks[next] = markSeen
				queue = append(queue, next)
			}
		}
		accepted = append(accepted, cur)
	}
	return state, accepted, nil
}
