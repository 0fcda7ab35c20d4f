// Package automaton evolves a one-dimensional cellular automaton and records
// every generation in an append-only history.
package automaton

import (
	"fmt"
	"slices"

	"ca-survey/internal/rule"
	"ca-survey/internal/spacetime"
)

// Engine owns the evolving row of a single run.
//
// The initial condition is padded with r*maxSteps zero cells on each side. The
// active region grows by at most r cells per side per step, so treating the
// row as a ring never lets the two fronts meet within maxSteps.
type Engine struct {
	table    *rule.Table
	maxSteps int
	cur      []uint8
	history  [][]uint8

	// shift is k^(2r), the weight of the leftmost cell of a neighborhood.
	shift int
}

// New builds the rule table and initial row described by cfg.
func New(cfg Config) (*Engine, error) {
	code, err := rule.ParseCode(cfg.Code)
	if err != nil {
		return nil, err
	}
	table, err := rule.Build(cfg.States, cfg.Radius, code)
	if err != nil {
		return nil, err
	}
	ic, err := ParseCondition(cfg.Condition, cfg.States)
	if err != nil {
		return nil, err
	}
	return NewWithTable(table, ic, cfg.MaxSteps)
}

// NewWithTable starts a run of table from the initial condition ic.
func NewWithTable(table *rule.Table, ic []uint8, maxSteps int) (*Engine, error) {
	if len(ic) == 0 {
		return nil, ErrEmptyCondition
	}
	if maxSteps < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSteps, maxSteps)
	}
	for i, s := range ic {
		if int(s) >= table.K() {
			return nil, fmt.Errorf("%w: %d at position %d with k=%d", ErrInvalidDigit, s, i, table.K())
		}
	}

	pad := table.R() * maxSteps
	row := make([]uint8, len(ic)+2*pad)
	copy(row[pad:], ic)

	shift := 1
	for i := 0; i < 2*table.R(); i++ {
		shift *= table.K()
	}
	return &Engine{
		table:    table,
		maxSteps: maxSteps,
		cur:      row,
		history:  [][]uint8{row},
		shift:    shift,
	}, nil
}

// K returns the number of states.
func (e *Engine) K() int { return e.table.K() }

// R returns the neighborhood radius.
func (e *Engine) R() int { return e.table.R() }

// Table returns the transition table.
func (e *Engine) Table() *rule.Table { return e.table }

// MaxSteps returns the step budget the row was padded for.
func (e *Engine) MaxSteps() int { return e.maxSteps }

// Width returns the number of cells per row.
func (e *Engine) Width() int { return len(e.cur) }

// Steps returns how many steps have been computed so far.
func (e *Engine) Steps() int { return len(e.history) - 1 }

// Step computes the next generation and appends it to the history.
func (e *Engine) Step() {
	w := len(e.cur)
	r := e.table.R()
	k := e.table.K()
	next := make([]uint8, w)

	// Rolling base-k window: drop the leftmost cell, append the next one.
	v := 0
	for j := -r; j <= r; j++ {
		v = v*k + int(e.cur[wrap(j, w)])
	}
	for x := 0; x < w; x++ {
		next[x] = e.table.Next(v)
		v = (v%e.shift)*k + int(e.cur[wrap(x+r+1, w)])
	}

	e.cur = next
	e.history = append(e.history, next)
}

// RunSteps applies Step n times.
func (e *Engine) RunSteps(n int) {
	for i := 0; i < n; i++ {
		e.Step()
	}
}

// Run steps the automaton until MaxSteps generations have been computed.
func (e *Engine) Run() {
	e.RunSteps(e.maxSteps - e.Steps())
}

// Rows returns the history, one row per generation. Rows are never modified
// once appended and must be treated as read-only.
func (e *Engine) Rows() [][]uint8 { return slices.Clip(e.history) }

// Grid returns a read-only spacetime view of the history computed so far.
func (e *Engine) Grid() *spacetime.Grid {
	return spacetime.Wrap(e.table.K(), e.Rows())
}

func wrap(i, w int) int {
	return ((i % w) + w) % w
}
