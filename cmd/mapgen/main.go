package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/term"

	"mapgen/internal/render"
	"mapgen/internal/worldgen"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: mapgen <ascii|graphics> [flags]")
	fmt.Fprintln(os.Stderr, "  ascii     print a colored glyph map to stdout")
	fmt.Fprintln(os.Stderr, "  graphics  write a PNG map (see -output)")
	os.Exit(2)
}

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		usage()
	}
	mode := os.Args[1]
	if mode != "ascii" && mode != "graphics" {
		usage()
	}

	cfg := worldgen.DefaultConfig()
	width := 0
	height := 0
	var seed int64
	output := "world.png"

	fs := flag.NewFlagSet("mapgen "+mode, flag.ExitOnError)
	fs.IntVar(&width, "width", 0, "map width (0 = terminal width for ascii)")
	fs.IntVar(&height, "height", 0, "map height (0 = terminal height for ascii)")
	fs.Int64Var(&seed, "seed", 0, "world seed (0 = random)")
	fs.Float64Var(&cfg.Scale, "scale", cfg.Scale, "noise frequency scale")
	fs.BoolVar(&cfg.FallbackNoise, "fallback-noise", false, "use the hashed noise fallback instead of gradient noise")
	if mode == "graphics" {
		fs.StringVar(&output, "output", output, "output image path")
	}
	fs.Parse(os.Args[2:])

	if width == 0 || height == 0 {
		tw, th := defaultSize(mode)
		if width == 0 {
			width = tw
		}
		if height == 0 {
			height = th
		}
	}
	cfg.Width = width
	cfg.Height = height

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg.Seed = seed

	grid, err := worldgen.Generate(cfg)
	if err != nil {
		if errors.Is(err, worldgen.ErrInvalidConfig) {
			log.Fatalf("mapgen: %v", err)
		}
		log.Fatalf("mapgen: generation failed: %v", err)
	}

	switch mode {
	case "ascii":
		fmt.Print(render.NewTextRenderer().Render(grid))
	case "graphics":
		r := &render.RasterRenderer{Writer: render.NewGGWriter()}
		if err := r.Save(grid, output); err != nil {
			log.Fatalf("mapgen: %v", err)
		}
		fmt.Printf("Saved image to %s\n", output)
	}
}

// defaultSize resolves missing dimensions: terminal size for ascii output
// when stdout is a terminal, otherwise the classic 80x40 map.
func defaultSize(mode string) (int, int) {
	if mode == "ascii" {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 1 {
			// Leave one row for the shell prompt.
			return w, h - 1
		}
	}
	return 80, 40
}
