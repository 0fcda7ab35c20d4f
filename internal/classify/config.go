package classify

import "ca-survey/pkg/core"

// Config holds the heuristic thresholds used by the classifier.
type Config struct {
	// FillCutoff caps the cells accepted by a single flood fill.
	FillCutoff int
	// SampleSpacing is the lattice pitch of fractal sample points.
	SampleSpacing int
	// LineThreshold is the combined growth rate below which a run is a line.
	LineThreshold float64
	// SideThreshold is the growth rate a side needs to be checked for tiles.
	SideThreshold float64
	// MinTile and MaxTile bound the tile sizes tried by the pattern detector.
	MinTile core.Size
	MaxTile core.Size
	// FullMatch is the fraction of the expected width tiles must cover.
	FullMatch float64
	// FractalRatio is the share of the possible fill a single state must reach.
	FractalRatio float64
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		FillCutoff:    500,
		SampleSpacing: 50,
		LineThreshold: 0.2,
		SideThreshold: 0.1,
		MinTile:       core.Size{W: 2, H: 2},
		MaxTile:       core.Size{W: 15, H: 5},
		FullMatch:     0.8,
		FractalRatio:  1.0 / 3,
	}
}

func (c Config) sanitized() Config {
	d := DefaultConfig()
	if c.FillCutoff <= 0 {
		c.FillCutoff = d.FillCutoff
	}
	if c.SampleSpacing <= 0 {
		c.SampleSpacing = d.SampleSpacing
	}
	if c.LineThreshold <= 0 {
		c.LineThreshold = d.LineThreshold
	}
	if c.SideThreshold <= 0 {
		c.SideThreshold = d.SideThreshold
	}
	if c.MinTile.W <= 0 || c.MinTile.H <= 0 {
		c.MinTile = d.MinTile
	}
	if c.MaxTile.W < c.MinTile.W || c.MaxTile.H < c.MinTile.H {
		c.MaxTile = d.MaxTile
	}
	if c.FullMatch <= 0 {
		c.FullMatch = d.FullMatch
	}
	if c.FractalRatio <= 0 {
		c.FractalRatio = d.FractalRatio
	}
	return c
}

// tileSizes enumerates candidate tiles, width varying fastest, so the cheap
// check against the tile above keeps working through one height before
// moving to the next.
func (c Config) tileSizes() []core.Size {
	var sizes []core.Size
	for h := c.MinTile.H; h <= c.MaxTile.H; h++ {
		for w := c.MinTile.W; w <= c.MaxTile.W; w++ {
			sizes = append(sizes, core.Size{W: w, H: h})
		}
	}
	return sizes
}
