package classify

import "fmt"

// Category is the long-term behavior of an automaton run.
type Category int

const (
	// Vanishing means every active cell dies out before the last step.
	Vanishing Category = iota
	// Line means the active region does not widen.
	Line
	// SimpleRepeating means the active region is tiled by a small pattern.
	SimpleRepeating
	// Fractal means the active region is dominated by large uniform areas.
	Fractal
	// Complex covers everything else.
	Complex
)

// Categories lists every category in order.
var Categories = []Category{Vanishing, Line, SimpleRepeating, Fractal, Complex}

var categoryNames = [...]string{"vanishing", "line", "simple repeating", "fractal", "complex"}

var categoryDescriptions = [...]string{
	"All active cells disappear before the end of the program.",
	"The code produces a line.",
	"The code produces a simple repeating pattern.",
	"The code produces a nested fractal pattern.",
	"The code produces a complex design which doesn't fall into any of the other categories.",
}

func (c Category) valid() bool { return c >= Vanishing && c <= Complex }

// String returns a short lowercase label.
func (c Category) String() string {
	if !c.valid() {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// Description returns a one-sentence explanation of the category.
func (c Category) Description() string {
	if !c.valid() {
		return ""
	}
	return categoryDescriptions[c]
}
