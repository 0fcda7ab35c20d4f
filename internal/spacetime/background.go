package spacetime

import (
	"fmt"
	"slices"

	"ca-survey/pkg/core"
)

// Background estimates the steady pattern the automaton settles into far from
// its active region, using the leftmost column of the first 2k rows. Rows 0..k-1
// are copied verbatim as a one-off prefix. The distinct states of rows k..2k-1,
// in first-occurrence order, form the pattern tiled over the remaining rows.
// Every row of the result is a single state across the full width.
func (g *Grid) Background() (*Grid, error) {
	column, err := g.Slice(core.Point{}, core.Size{W: 1, H: 2 * g.k})
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	prefix := make([]uint8, 0, g.k)
	pattern := make([]uint8, 0, g.k)
	for i := 0; i < g.k; i++ {
		prefix = append(prefix, column.At(0, i))
		if s := column.At(0, g.k+i); !slices.Contains(pattern, s) {
			pattern = append(pattern, s)
		}
	}
	return Regular(g.k, prefix, pattern, g.Size())
}

// Regular builds a grid of solid rows: first one row per prefix state, then the
// pattern repeated cyclically until the grid is size.H rows tall.
func Regular(k int, prefix, pattern []uint8, size core.Size) (*Grid, error) {
	if len(prefix) > size.H {
		return nil, fmt.Errorf("%w: %d > %d", ErrPrefixTooLong, len(prefix), size.H)
	}
	if len(pattern) == 0 && len(prefix) < size.H {
		return nil, ErrEmptyPattern
	}
	rows := make([][]uint8, 0, size.H)
	for _, s := range prefix {
		rows = append(rows, solidRow(s, size.W))
	}
	for i := 0; i < size.H-len(prefix); i++ {
		rows = append(rows, solidRow(pattern[i%len(pattern)], size.W))
	}
	return New(k, rows)
}

func solidRow(s uint8, w int) []uint8 {
	row := make([]uint8, w)
	for i := range row {
		row[i] = s
	}
	return row
}
