package worldgen

import (
	"math/rand"

	"mapgen/internal/core"
)

// placeVolcanoes marks a seeded random subset of mountain cells as volcanoes.
// Only bare mountain cells qualify, so volcanoes stay a subset of the
// mountain biome and never displace an earlier feature.
func placeVolcanoes(g *core.Grid, cfg Config) {
	if cfg.Params.VolcanoFraction <= 0 {
		return
	}
	rng := rand.New(rand.NewSource(core.SubSeed(cfg.Seed, "features/volcanoes")))

	cells := g.Cells()
	for i := range cells {
		c := &cells[i]
		if c.Biome != core.BiomeMountain {
			continue
		}
		if !core.CanClaim(c.Feature, core.FeatureVolcano) {
			continue
		}
		if rng.Float64() < cfg.Params.VolcanoFraction {
			c.Feature = core.FeatureVolcano
		}
	}
}
