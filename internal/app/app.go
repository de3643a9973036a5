//go:build ebiten

// Package app adapts a generated world to the ebiten.Game interface so it
// can be browsed in a window.
package app

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"mapgen/internal/core"
	"mapgen/internal/render"
	"mapgen/internal/worldgen"
)

// Viewer displays a generated grid and regenerates it on key input.
type Viewer struct {
	cfg     worldgen.Config
	grid    *core.Grid
	painter *GridPainter
	scale   int
}

// New generates the initial world and constructs its viewer.
func New(cfg worldgen.Config, scale int) (*Viewer, error) {
	grid, err := worldgen.Generate(cfg)
	if err != nil {
		return nil, err
	}
	if scale < 1 {
		scale = 1
	}
	return &Viewer{
		cfg:     cfg,
		grid:    grid,
		painter: NewGridPainter(cfg.Width, cfg.Height),
		scale:   scale,
	}, nil
}

// regenerate rebuilds the world with the viewer's current config.
func (v *Viewer) regenerate() {
	grid, err := worldgen.Generate(v.cfg)
	if err != nil {
		// Config was valid at startup and dimensions never change.
		log.Printf("mapview: regenerate failed: %v", err)
		return
	}
	v.grid = grid
}

// Update handles key input: R regenerates the same seed, S rolls a new one,
// Q or Escape quits.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		v.cfg.Seed = time.Now().UnixNano()
		v.regenerate()
	}
	return nil
}

// Draw renders the current world.
func (v *Viewer) Draw(screen *ebiten.Image) {
	v.painter.Blit(screen, render.DisplayCells(v.grid), render.Palette(), v.scale)
}

// Layout returns the logical screen size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.cfg.Width * v.scale, v.cfg.Height * v.scale
}
