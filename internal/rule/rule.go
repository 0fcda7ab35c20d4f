// Package rule builds transition tables for one-dimensional cellular automata
// with k states and neighborhood radius r.
//
// A code selects one table out of the k^(k^(2r+1)) possible ones. Writing the
// code in base k, zero-padded to one digit per neighborhood, the most
// significant digit is the successor of the all-(k-1) neighborhood and the
// least significant digit is the successor of the all-zero neighborhood. For
// k=2, r=1 this is the usual Wolfram rule numbering.
package rule

import (
	"fmt"
	"math/big"
)

// MaxStates is the largest supported number of states. Conditions are written
// as one decimal digit per cell, which caps k at ten.
const MaxStates = 10

// Table maps every neighborhood, read as a base-k integer with the leftmost
// cell most significant, to the next state of its center cell.
type Table struct {
	k, r int
	next []uint8
}

// NeighborhoodCount returns k^(2r+1), the number of distinct neighborhoods.
func NeighborhoodCount(k, r int) int {
	n := 1
	for i := 0; i < 2*r+1; i++ {
		n *= k
	}
	return n
}

// MaxCode returns the largest valid code for k states and radius r.
func MaxCode(k, r int) *big.Int {
	limit := new(big.Int).Exp(big.NewInt(int64(k)), big.NewInt(int64(NeighborhoodCount(k, r))), nil)
	return limit.Sub(limit, big.NewInt(1))
}

// ParseCode parses a decimal rule code.
func ParseCode(s string) (*big.Int, error) {
	code, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a decimal integer", ErrInvalidCode, s)
	}
	return code, nil
}

// Build constructs the transition table selected by code.
func Build(k, r int, code *big.Int) (*Table, error) {
	if k < 2 || k > MaxStates || r < 0 {
		return nil, fmt.Errorf("%w: k=%d r=%d", ErrInvalidParams, k, r)
	}
	if code == nil || code.Sign() < 0 || code.Cmp(MaxCode(k, r)) > 0 {
		return nil, fmt.Errorf("%w: %v (max %v for k=%d r=%d)", ErrInvalidCode, code, MaxCode(k, r), k, r)
	}

	n := NeighborhoodCount(k, r)
	t := &Table{k: k, r: r, next: make([]uint8, n)}

	// Peeling base-k digits least significant first fills the table from the
	// all-zero neighborhood upwards, which is the descending assignment read
	// backwards.
	rest := new(big.Int).Set(code)
	base := big.NewInt(int64(k))
	digit := new(big.Int)
	for v := 0; v < n && rest.Sign() > 0; v++ {
		rest.QuoRem(rest, base, digit)
		t.next[v] = uint8(digit.Int64())
	}
	return t, nil
}

// K returns the number of states.
func (t *Table) K() int { return t.k }

// R returns the neighborhood radius.
func (t *Table) R() int { return t.r }

// Width returns the number of cells in a neighborhood, 2r+1.
func (t *Table) Width() int { return 2*t.r + 1 }

// Len returns the number of entries, one per neighborhood.
func (t *Table) Len() int { return len(t.next) }

// Next returns the successor state for the neighborhood with base-k value v.
func (t *Table) Next(v int) uint8 { return t.next[v] }

// Lookup returns the successor state for an explicit neighborhood.
func (t *Table) Lookup(neighborhood []uint8) uint8 {
	return t.next[t.Index(neighborhood)]
}

// Index converts a neighborhood to its base-k value.
func (t *Table) Index(neighborhood []uint8) int {
	v := 0
	for _, s := range neighborhood {
		v = v*t.k + int(s)
	}
	return v
}

// Neighborhood converts a base-k value back to its cells.
func (t *Table) Neighborhood(v int) []uint8 {
	cells := make([]uint8, t.Width())
	for i := len(cells) - 1; i >= 0; i-- {
		cells[i] = uint8(v % t.k)
		v /= t.k
	}
	return cells
}
