// Command biome-census generates a run of worlds and prints the biome and
// feature distribution per seed, for eyeballing threshold changes.
package main

import (
	"flag"
	"fmt"
	"log"

	"mapgen/internal/core"
	"mapgen/internal/worldgen"
)

func main() {
	width := flag.Int("width", 120, "map width for census runs")
	height := flag.Int("height", 80, "map height for census runs")
	scale := flag.Float64("scale", 0.1, "noise frequency scale")
	startSeed := flag.Int64("seed", 1, "first seed of the sweep")
	runs := flag.Int("runs", 5, "number of consecutive seeds to generate")
	flag.Parse()

	cfg := worldgen.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.Scale = *scale

	for i := 0; i < *runs; i++ {
		cfg.Seed = *startSeed + int64(i)
		grid, err := worldgen.Generate(cfg)
		if err != nil {
			log.Fatalf("biome-census: seed %d: %v", cfg.Seed, err)
		}

		var biomes [core.BiomeCount]int
		var features [core.FeatureCount]int
		for _, c := range grid.Cells() {
			biomes[c.Biome]++
			features[c.Feature]++
		}

		total := len(grid.Cells())
		fmt.Printf("seed %d (%dx%d, %d cells)\n", cfg.Seed, cfg.Width, cfg.Height, total)
		for b := 0; b < core.BiomeCount; b++ {
			if biomes[b] == 0 {
				continue
			}
			fmt.Printf("  %-10s %6d  %5.1f%%\n", core.Biome(b), biomes[b], 100*float64(biomes[b])/float64(total))
		}
		for f := int(core.FeatureCity); f < core.FeatureCount; f++ {
			if features[f] == 0 {
				continue
			}
			fmt.Printf("  %-10s %6d\n", core.Feature(f), features[f])
		}
	}
}
