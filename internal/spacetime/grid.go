// Package spacetime provides a read-only analytic view over the history of a
// one-dimensional automaton. Row y holds the automaton's cells after y steps.
//
// Grids are immutable. Every derived grid (slices, differences, backgrounds)
// owns freshly allocated rows and never aliases or mutates its operands.
package spacetime

import (
	"fmt"

	"ca-survey/pkg/core"
)

// Grid stores k-state cell values as a list of equal-length rows.
type Grid struct {
	k    int
	w, h int
	rows [][]uint8
}

// New validates rows and returns a grid over them. The rows are borrowed, not
// copied; callers must not modify them afterwards.
func New(k int, rows [][]uint8) (*Grid, error) {
	if k < 2 {
		return nil, fmt.Errorf("%w: k=%d", ErrInvalidState, k)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, s := range row {
			if int(s) >= k {
				return nil, fmt.Errorf("%w: cell (%d,%d)=%d with k=%d", ErrInvalidState, x, y, s, k)
			}
		}
	}
	return Wrap(k, rows), nil
}

// Wrap returns a grid over rows without validating them. It is meant for
// producers that already guarantee rectangular rows with states below k.
func Wrap(k int, rows [][]uint8) *Grid {
	g := &Grid{k: k, h: len(rows), rows: rows}
	if g.h > 0 {
		g.w = len(rows[0])
	}
	return g
}

// K returns the number of states.
func (g *Grid) K() int { return g.k }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// At returns the state of the cell at column x, row y.
func (g *Grid) At(x, y int) uint8 { return g.rows[y][x] }

// Row returns row y. The slice must be treated as read-only.
func (g *Grid) Row(y int) []uint8 { return g.rows[y] }

// Rows returns a copy of the grid contents.
func (g *Grid) Rows() [][]uint8 {
	out := make([][]uint8, g.h)
	for y, row := range g.rows {
		out[y] = append([]uint8(nil), row...)
	}
	return out
}

// same reports whether (x, y) is inside the grid and holds state s.
func (g *Grid) same(x, y int, s uint8) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h && g.rows[y][x] == s
}

// Difference returns the cell-wise (g - other) mod k.
func (g *Grid) Difference(other *Grid) (*Grid, error) {
	if other == nil || g.w != other.w || g.h != other.h {
		return nil, fmt.Errorf("%w: %v vs %v", ErrDimensionMismatch, g.Size(), sizeOf(other))
	}
	if g.k != other.k {
		return nil, fmt.Errorf("%w: k=%d vs k=%d", ErrDimensionMismatch, g.k, other.k)
	}
	k := g.k
	out := make([][]uint8, g.h)
	for y := range g.rows {
		a, b := g.rows[y], other.rows[y]
		row := make([]uint8, g.w)
		for x := range row {
			row[x] = uint8((int(a[x]) - int(b[x]) + k) % k)
		}
		out[y] = row
	}
	return Wrap(k, out), nil
}

// Equal reports whether both grids have the same size, k and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.k != other.k || g.w != other.w || g.h != other.h {
		return false
	}
	for y := range g.rows {
		a, b := g.rows[y], other.rows[y]
		for x := range a {
			if a[x] != b[x] {
				return false
			}
		}
	}
	return true
}

// Slice returns the sub-grid with its top-left corner at pos. The rectangle
// must lie entirely inside the grid.
func (g *Grid) Slice(pos core.Point, size core.Size) (*Grid, error) {
	if size.W <= 0 || size.H <= 0 || pos.X < 0 || pos.Y < 0 ||
		pos.X+size.W > g.w || pos.Y+size.H > g.h {
		return nil, fmt.Errorf("%w: %v+%v in %v", ErrOutOfRangeSlice, pos, size, g.Size())
	}
	out := make([][]uint8, size.H)
	for i := range out {
		out[i] = append([]uint8(nil), g.rows[pos.Y+i][pos.X:pos.X+size.W]...)
	}
	return Wrap(g.k, out), nil
}

// FindEdges scans row y from both ends and returns the index of the first
// nonzero cell from the left and the index, counted from the right, of the
// first nonzero cell from the right. An all-zero row yields (-1, -1).
func (g *Grid) FindEdges(y int) (left, right int) {
	row := g.rows[y]
	left, right = -1, -1
	for i := range row {
		if left == -1 && row[i] != 0 {
			left = i
		}
		if right == -1 && row[len(row)-1-i] != 0 {
			right = i
		}
		if left != -1 && right != -1 {
			break
		}
	}
	return left, right
}

func sizeOf(g *Grid) core.Size {
	if g == nil {
		return core.Size{}
	}
	return g.Size()
}
