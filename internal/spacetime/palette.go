package spacetime

import (
	"image/color"
	"math"
)

// ColorOf maps a state to a gray level, white for 0 through black for k-1.
func (g *Grid) ColorOf(s uint8) color.RGBA {
	return Gray(g.k, s)
}

// Gray returns the display color of state s out of k.
func Gray(k int, s uint8) color.RGBA {
	level := uint8(math.Round(255 * (1 - float64(s)/float64(k-1))))
	return color.RGBA{R: level, G: level, B: level, A: 255}
}

// Palette returns the colors of all k states, indexed by state.
func (g *Grid) Palette() []color.RGBA {
	p := make([]color.RGBA, g.k)
	for s := range p {
		p[s] = g.ColorOf(uint8(s))
	}
	return p
}

// ColorSurface returns the grid as rows of colors for an external renderer.
func (g *Grid) ColorSurface() [][]color.RGBA {
	palette := g.Palette()
	out := make([][]color.RGBA, g.h)
	for y, row := range g.rows {
		line := make([]color.RGBA, g.w)
		for x, s := range row {
			line[x] = palette[s]
		}
		out[y] = line
	}
	return out
}

// FillRGBA writes the grid as row-major RGBA bytes into buf, which must hold
// at least 4*W*H bytes.
func (g *Grid) FillRGBA(buf []byte) {
	palette := g.Palette()
	for y, row := range g.rows {
		fillPaletteRGBA(buf[y*g.w*4:(y+1)*g.w*4], row, palette)
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
