package worldgen

import (
	"log"
	"math/rand"

	"mapgen/internal/core"
)

// riverScanOrder is the fixed 8-connected neighbor order used to break
// elevation ties during descent.
var riverScanOrder = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// placeRivers spawns rivers at high-elevation cells and traces each one
// downhill until it drains.
func placeRivers(g *core.Grid, cfg Config) {
	rng := rand.New(rand.NewSource(core.SubSeed(cfg.Seed, "features/rivers")))

	var sources []core.Point
	cells := g.Cells()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := cells[g.Index(x, y)]
			if c.Elevation >= cfg.Params.RiverSourceLevel && c.Biome != core.BiomeOcean {
				sources = append(sources, core.Point{X: x, Y: y})
			}
		}
	}
	if len(sources) == 0 {
		return
	}

	want := g.W * g.H / cfg.Params.RiverAreaPerSpawn
	if want > cfg.Params.MaxRivers {
		want = cfg.Params.MaxRivers
	}
	if want < 1 {
		want = 1
	}

	rng.Shuffle(len(sources), func(i, j int) {
		sources[i], sources[j] = sources[j], sources[i]
	})
	if len(sources) > want {
		sources = sources[:want]
	}

	for _, src := range sources {
		traceRiver(g, src)
	}
}

// traceRiver follows the steepest descent from start, claiming traversed
// cells as river, until it reaches ocean, the map boundary, or the step
// bound. Local minima terminate the trace in place; that is a recovered
// condition, not an error. The visited set lives only for the trace.
func traceRiver(g *core.Grid, start core.Point) []core.Point {
	visited := make([]bool, g.W*g.H)
	bound := g.W + g.H

	var path []core.Point
	x, y := start.X, start.Y

	for step := 0; step < bound; step++ {
		visited[g.Index(x, y)] = true
		cell := g.At(x, y)

		if cell.Biome == core.BiomeOcean {
			break // drained
		}
		if core.CanClaim(cell.Feature, core.FeatureRiver) {
			cell.Feature = core.FeatureRiver
			path = append(path, core.Point{X: x, Y: y})
		}

		nx, ny, ok := lowestUnvisitedNeighbor(g, visited, x, y, cell.Elevation)
		if !ok {
			if !g.OnBoundary(x, y) {
				log.Printf("worldgen: river from (%d,%d) stuck at local minimum (%d,%d) after %d steps", start.X, start.Y, x, y, step)
			}
			break
		}
		x, y = nx, ny
	}
	return path
}

// lowestUnvisitedNeighbor picks the lowest 8-connected unvisited neighbor not
// above the current elevation, scanning in fixed order so ties resolve
// deterministically.
func lowestUnvisitedNeighbor(g *core.Grid, visited []bool, x, y int, elev float64) (int, int, bool) {
	bestX, bestY := 0, 0
	bestElev := elev
	found := false
	for _, d := range riverScanOrder {
		nx, ny := x+d[0], y+d[1]
		if !g.InBounds(nx, ny) || visited[g.Index(nx, ny)] {
			continue
		}
		ne := g.At(nx, ny).Elevation
		if ne > bestElev {
			continue
		}
		if found && ne == bestElev {
			continue
		}
		bestX, bestY = nx, ny
		bestElev = ne
		found = true
	}
	return bestX, bestY, found
}
