//go:build ebiten

package render

import (
	"image"

	"ca-survey/internal/spacetime"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter holds a spacetime grid uploaded to a single RGBA image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
}

// NewGridPainter converts g to pixels once; the grid never changes afterwards.
func NewGridPainter(g *spacetime.Grid) *GridPainter {
	size := g.Size()
	buf := make([]byte, 4*size.W*size.H)
	g.FillRGBA(buf)
	img := ebiten.NewImage(size.W, size.H)
	img.WritePixels(buf)
	return &GridPainter{w: size.W, h: size.H, img: img}
}

// Blit draws the first rows of the grid scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, rows, scale int) {
	if rows <= 0 {
		return
	}
	rows = min(rows, gp.h)
	sub := gp.img.SubImage(image.Rect(0, 0, gp.w, rows)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(sub, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
