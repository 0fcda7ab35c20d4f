package core

// Size describes the dimensions of a spacetime grid: W cells per row, H rows.
type Size struct {
	W int
	H int
}

// Point addresses a single cell. X is the column, Y is the time step.
type Point struct {
	X int
	Y int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// In reports whether p lies inside a grid of the given size.
func (p Point) In(s Size) bool {
	return p.X >= 0 && p.X < s.W && p.Y >= 0 && p.Y < s.H
}
