package render

import (
	"errors"
	"fmt"

	"mapgen/internal/core"
)

// ErrCapabilityMissing marks a render-time failure caused by an absent
// collaborator, detected only when the raster renderer is invoked.
var ErrCapabilityMissing = errors.New("capability missing")

// RasterWriter encodes an RGBA pixel buffer to a file. It is injected so the
// renderer itself never touches the filesystem.
type RasterWriter interface {
	Write(pix []uint8, w, h int, path string) error
}

// RasterRenderer maps each cell to an RGB color via the shared visual table
// and delegates file encoding to the writer collaborator.
type RasterRenderer struct {
	Writer RasterWriter
}

// Pixels builds the RGBA buffer for the grid, 4 bytes per cell.
func (r *RasterRenderer) Pixels(g *core.Grid) []uint8 {
	buf := make([]uint8, 4*g.W*g.H)
	FillPaletteRGBA(buf, DisplayCells(g), Palette())
	return buf
}

// Save renders the grid and writes it to path. A missing writer fails with
// ErrCapabilityMissing before anything touches the filesystem.
func (r *RasterRenderer) Save(g *core.Grid, path string) error {
	if r.Writer == nil {
		return fmt.Errorf("%w: no raster writer configured; graphics output needs the PNG writer, construct the renderer with render.NewGGWriter()", ErrCapabilityMissing)
	}
	return r.Writer.Write(r.Pixels(g), g.W, g.H, path)
}
