package worldgen

import (
	"mapgen/internal/core"
	"mapgen/pkg/noise"
)

// Octave blend weights for the three sampled scales (x1, x2, x4 of the
// configured frequency).
const (
	heightWeightBase   = 0.55
	heightWeightMid    = 0.30
	heightWeightDetail = 0.15
)

// buildHeightmap writes a normalized elevation into every cell. Raw blends
// are min-max rescaled across the grid so biome thresholds stay comparable
// between runs regardless of raw noise amplitude.
func buildHeightmap(g *core.Grid, field noise.Field, scale float64) {
	cells := g.Cells()
	min, max := 1.0, 0.0
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			fx := float64(x) * scale
			fy := float64(y) * scale
			e := heightWeightBase*field.Sample(fx, fy) +
				heightWeightMid*field.Sample(fx*2, fy*2) +
				heightWeightDetail*field.Sample(fx*4, fy*4)
			cells[g.Index(x, y)].Elevation = e
			if e < min {
				min = e
			}
			if e > max {
				max = e
			}
		}
	}

	span := max - min
	if span < 1e-9 {
		// Flat field (single cell or degenerate noise): pin to mid-range.
		for i := range cells {
			cells[i].Elevation = 0.5
		}
		return
	}
	for i := range cells {
		cells[i].Elevation = (cells[i].Elevation - min) / span
	}
}
