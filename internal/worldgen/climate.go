package worldgen

import (
	"mapgen/internal/core"
	"mapgen/pkg/noise"
)

// newClimateField builds one climate noise layer. Climate uses the smooth
// single-layer simplex strategy, but honors the configured fallback so the
// whole pipeline switches strategies together.
func newClimateField(cfg Config, tag string) noise.Field {
	opts := []noise.Option{noise.WithSimplex()}
	if cfg.FallbackNoise {
		opts = append(opts, noise.WithFallbackOnly())
	}
	return noise.New(core.SubSeed(cfg.Seed, tag), opts...)
}

// buildClimate derives temperature and moisture for every cell. Both are pure
// functions of position, seed and the configured thresholds: temperature is a
// latitude curve perturbed by noise, moisture an independent noise layer with
// a humidity bonus near sub-sea-level cells. Elevation never feeds back into
// climate, so terrain shape and climate stay independent.
func buildClimate(g *core.Grid, cfg Config) {
	tempNoise := newClimateField(cfg, "climate/temperature")
	moistNoise := newClimateField(cfg, "climate/moisture")

	w := cfg.Params.ClimateNoiseWeight
	mid := float64(g.H-1) / 2
	cells := g.Cells()

	for y := 0; y < g.H; y++ {
		lat := 1.0
		if mid > 0 {
			d := float64(y) - mid
			if d < 0 {
				d = -d
			}
			lat = 1 - d/mid
		}
		for x := 0; x < g.W; x++ {
			fx := float64(x) * cfg.Scale
			fy := float64(y) * cfg.Scale
			c := &cells[g.Index(x, y)]
			c.Temperature = clamp01((1-w)*lat + w*tempNoise.Sample(fx, fy))
			c.Moisture = clamp01(moistNoise.Sample(fx, fy))
		}
	}

	applyCoastalHumidity(g, cfg)
}

// applyCoastalHumidity boosts moisture within range of sub-sea-level cells.
// The mask derives from elevation alone, before classification, so climate
// remains position-pure.
func applyCoastalHumidity(g *core.Grid, cfg Config) {
	bonus := cfg.Params.CoastalHumidityBonus
	reach := cfg.Params.CoastalHumidityRange
	if bonus <= 0 || reach <= 0 {
		return
	}

	cells := g.Cells()
	nearWater := make([]bool, len(cells))
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if cells[g.Index(x, y)].Elevation >= cfg.Params.SeaLevel {
				continue
			}
			for dy := -reach; dy <= reach; dy++ {
				for dx := -reach; dx <= reach; dx++ {
					if g.InBounds(x+dx, y+dy) {
						nearWater[g.Index(x+dx, y+dy)] = true
					}
				}
			}
		}
	}
	for i := range cells {
		if nearWater[i] {
			cells[i].Moisture = clamp01(cells[i].Moisture + bonus)
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
