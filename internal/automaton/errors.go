package automaton

import "errors"

var (
	// ErrInvalidDigit indicates an initial-condition symbol that is not a state.
	ErrInvalidDigit = errors.New("automaton: invalid initial condition symbol")
	// ErrEmptyCondition indicates an initial condition with no cells.
	ErrEmptyCondition = errors.New("automaton: empty initial condition")
	// ErrInvalidSteps indicates a negative step budget.
	ErrInvalidSteps = errors.New("automaton: step count must not be negative")
)
