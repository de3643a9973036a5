// Package worldgen synthesizes stylized world maps on a rectangular grid:
// noise-driven elevation, latitude-driven climate, threshold biome
// classification and elevation-aware feature overlay, all reproducible from a
// single seed.
package worldgen

import (
	"log"

	"mapgen/internal/core"
	"mapgen/pkg/noise"
)

// Generate runs the full pipeline and returns the finished grid. The stages
// are strictly sequential: heightmap, climate, classification, features.
// After return the grid is read-only by convention; only the feature stages
// ever mutate biome or feature data, and they have already run.
func Generate(cfg Config) (*core.Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var opts []noise.Option
	if cfg.FallbackNoise {
		opts = append(opts, noise.WithFallbackOnly())
	}
	field := noise.New(core.SubSeed(cfg.Seed, "terrain"), opts...)

	g := core.NewGrid(cfg.Width, cfg.Height)
	buildHeightmap(g, field, cfg.Scale)
	buildClimate(g, cfg)
	classifyGrid(g, cfg.Params)
	placeFeatures(g, cfg)
	return g, nil
}

// placeFeatures runs the feature sub-stages in fixed order. Each stage draws
// from its own sub-seed, so stages stay independently reproducible. A map
// with no habitable city site skips the remaining sub-stages entirely.
func placeFeatures(g *core.Grid, cfg Config) {
	cities := placeCities(g, cfg)
	if len(cities) == 0 {
		log.Printf("worldgen: no habitable city sites, skipping feature stages")
		return
	}
	placeRivers(g, cfg)
	placeRoads(g, cfg, cities)
	placeVolcanoes(g, cfg)
}
