package spacetime

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("spacetime: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("spacetime: all rows must have the same length")
	// ErrInvalidState indicates a cell value outside [0, k).
	ErrInvalidState = errors.New("spacetime: cell state out of range")
	// ErrDimensionMismatch indicates an operation across grids of different size or k.
	ErrDimensionMismatch = errors.New("spacetime: grid dimensions do not match")
	// ErrOutOfRangeSlice indicates a rectangle or cell not fully inside the grid.
	ErrOutOfRangeSlice = errors.New("spacetime: slice out of range")
	// ErrPrefixTooLong indicates a regular grid prefix longer than the grid height.
	ErrPrefixTooLong = errors.New("spacetime: prefix longer than grid height")
	// ErrEmptyPattern indicates a regular grid with rows left but nothing to tile them with.
	ErrEmptyPattern = errors.New("spacetime: empty background pattern")
)
