//go:build ebiten

package app

import (
	"errors"
	"fmt"

	"ca-survey/internal/core"
	"ca-survey/internal/render"
	"ca-survey/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 240

// Game adapts a finished run to the ebiten.Game interface, revealing the
// history one row at a time.
type Game struct {
	out     Outcome
	painter *render.GridPainter
	hud     *ui.HUD
	pacer   *core.FixedStep

	scale  int
	tps    int
	rows   int
	paused bool
}

// New constructs a Game for the provided run.
func New(out Outcome, scale, tps int) *Game {
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		out:     out,
		painter: render.NewGridPainter(out.Grid),
		hud:     ui.NewHUD(out.Parameters(), hudWidth),
		pacer:   core.NewFixedStep(tps),
		scale:   scale,
		tps:     tps,
	}
}

// Update handles per-frame logic and advances the reveal.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.rows = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.rows = g.out.Grid.Size().H
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.setTPS(g.tps * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.setTPS(g.tps / 2)
	}

	ticks := g.pacer.Ticks()
	if !g.paused {
		g.rows = min(g.rows+ticks, g.out.Grid.Size().H)
	}
	return nil
}

func (g *Game) setTPS(tps int) {
	g.tps = max(1, min(tps, 7680))
	g.pacer.SetTPS(g.tps)
}

// Draw renders the revealed rows and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.rows, g.scale)
	size := g.out.Grid.Size()
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.out.Grid.Size()
	return s.W*g.scale + hudWidth, s.H * g.scale
}

// Show opens a window displaying the run until it is closed.
func Show(out Outcome, scale, tps int) error {
	game := New(out, scale, tps)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(fmt.Sprintf("ca-survey: k=%d r=%d code %s", out.Info.States, out.Info.Radius, out.Info.Code))
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
