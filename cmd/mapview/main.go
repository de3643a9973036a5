//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"mapgen/internal/app"
	"mapgen/internal/worldgen"
)

func main() {
	cfg := worldgen.DefaultConfig()
	scale := 4
	flag.IntVar(&cfg.Width, "width", 160, "map width in cells")
	flag.IntVar(&cfg.Height, "height", 100, "map height in cells")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world seed")
	flag.Float64Var(&cfg.Scale, "scale", cfg.Scale, "noise frequency scale")
	flag.IntVar(&scale, "pixels", scale, "pixel scale multiplier")
	flag.BoolVar(&cfg.FallbackNoise, "fallback-noise", false, "use the hashed noise fallback")
	flag.Parse()

	viewer, err := app.New(cfg, scale)
	if err != nil {
		log.Fatalf("mapview: %v", err)
	}

	ebiten.SetWindowTitle("mapview")
	ebiten.SetWindowSize(cfg.Width*scale, cfg.Height*scale)

	if err := ebiten.RunGame(viewer); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
