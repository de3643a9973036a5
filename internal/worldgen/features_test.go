package worldgen

import (
	"testing"

	"mapgen/internal/core"
)

// rampGrid builds a west-to-east descending strip ending in ocean.
func rampGrid() *core.Grid {
	g := core.NewGrid(5, 1)
	elevs := []float64{0.9, 0.7, 0.5, 0.4, 0.1}
	for x, e := range elevs {
		c := g.At(x, 0)
		c.Elevation = e
		c.Biome = core.BiomeGrassland
	}
	g.At(4, 0).Biome = core.BiomeOcean
	return g
}

func TestTraceRiverDescendsToOcean(t *testing.T) {
	g := rampGrid()
	path := traceRiver(g, core.Point{X: 0, Y: 0})

	if len(path) != 4 {
		t.Fatalf("expected 4 river cells before the ocean, got %d", len(path))
	}
	prev := 2.0
	for _, pt := range path {
		c := g.At(pt.X, pt.Y)
		if c.Feature != core.FeatureRiver {
			t.Fatalf("cell (%d,%d) on the trace is not river", pt.X, pt.Y)
		}
		if c.Elevation > prev {
			t.Fatalf("river elevation increased at (%d,%d): %0.2f > %0.2f", pt.X, pt.Y, c.Elevation, prev)
		}
		prev = c.Elevation
	}
	if g.At(4, 0).Feature != core.FeatureNone {
		t.Fatal("ocean cell should not be claimed by the river")
	}
}

func TestTraceRiverBoundedSteps(t *testing.T) {
	g := core.NewGrid(6, 3)
	for i := range g.Cells() {
		g.Cells()[i].Biome = core.BiomeGrassland
		g.Cells()[i].Elevation = 0.5
	}
	path := traceRiver(g, core.Point{X: 3, Y: 1})
	if len(path) > g.W+g.H {
		t.Fatalf("river length %d exceeds bound %d", len(path), g.W+g.H)
	}
}

func TestTraceRiverStuckAtLocalMinimum(t *testing.T) {
	g := core.NewGrid(3, 3)
	for i := range g.Cells() {
		g.Cells()[i].Biome = core.BiomeGrassland
		g.Cells()[i].Elevation = 0.9
	}
	g.At(1, 1).Elevation = 0.2

	path := traceRiver(g, core.Point{X: 1, Y: 1})
	if len(path) != 1 {
		t.Fatalf("stuck river should claim only its source, got %d cells", len(path))
	}
	if g.At(1, 1).Feature != core.FeatureRiver {
		t.Fatal("stuck river should still mark its source cell")
	}
}

func TestTraceRiverRespectsCityClaim(t *testing.T) {
	g := rampGrid()
	g.At(1, 0).Feature = core.FeatureCity

	traceRiver(g, core.Point{X: 0, Y: 0})

	if g.At(1, 0).Feature != core.FeatureCity {
		t.Fatal("river must not overwrite a city cell")
	}
	if g.At(2, 0).Feature != core.FeatureRiver {
		t.Fatal("river should continue past the city")
	}
}

func flatLandGrid(w, h int) *core.Grid {
	g := core.NewGrid(w, h)
	for i := range g.Cells() {
		g.Cells()[i].Biome = core.BiomeGrassland
		g.Cells()[i].Elevation = 0.5
	}
	return g
}

// roadNetworkConnected walks road and city cells 4-connected from one city
// and reports whether it reaches the other.
func roadNetworkConnected(g *core.Grid, from, to core.Point) bool {
	passable := func(x, y int) bool {
		f := g.At(x, y).Feature
		return f == core.FeatureRoad || f == core.FeatureCity
	}
	seen := make([]bool, g.W*g.H)
	queue := []core.Point{from}
	seen[g.Index(from.X, from.Y)] = true
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p == to {
			return true
		}
		for _, d := range roadScanOrder {
			nx, ny := p.X+d[0], p.Y+d[1]
			if g.InBounds(nx, ny) && !seen[g.Index(nx, ny)] && passable(nx, ny) {
				seen[g.Index(nx, ny)] = true
				queue = append(queue, core.Point{X: nx, Y: ny})
			}
		}
	}
	return false
}

func TestPlaceRoadsConnectsCities(t *testing.T) {
	cfg := DefaultConfig()
	g := flatLandGrid(7, 5)
	a := core.Point{X: 0, Y: 2}
	b := core.Point{X: 6, Y: 2}
	g.At(a.X, a.Y).Feature = core.FeatureCity
	g.At(b.X, b.Y).Feature = core.FeatureCity

	placeRoads(g, cfg, []core.Point{a, b})

	if !roadNetworkConnected(g, a, b) {
		t.Fatal("road network should link the two cities")
	}
	if g.At(a.X, a.Y).Feature != core.FeatureCity || g.At(b.X, b.Y).Feature != core.FeatureCity {
		t.Fatal("road endpoints must stay city cells")
	}
}

func TestPlaceRoadsAvoidsOcean(t *testing.T) {
	cfg := DefaultConfig()
	g := flatLandGrid(7, 5)
	// Ocean wall at x=3 with one land gap at y=4.
	for y := 0; y < 4; y++ {
		g.At(3, y).Biome = core.BiomeOcean
		g.At(3, y).Elevation = 0.1
	}
	a := core.Point{X: 0, Y: 0}
	b := core.Point{X: 6, Y: 0}
	g.At(a.X, a.Y).Feature = core.FeatureCity
	g.At(b.X, b.Y).Feature = core.FeatureCity

	placeRoads(g, cfg, []core.Point{a, b})

	for i, c := range g.Cells() {
		if c.Feature == core.FeatureRoad && c.Biome == core.BiomeOcean {
			t.Fatalf("road placed on ocean at index %d", i)
		}
	}
	if !roadNetworkConnected(g, a, b) {
		t.Fatal("road should route around the ocean wall")
	}
}

func TestPlaceRoadsSkipsUnreachablePair(t *testing.T) {
	cfg := DefaultConfig()
	g := flatLandGrid(7, 5)
	for y := 0; y < 5; y++ {
		g.At(3, y).Biome = core.BiomeOcean
	}
	a := core.Point{X: 0, Y: 2}
	b := core.Point{X: 6, Y: 2}
	g.At(a.X, a.Y).Feature = core.FeatureCity
	g.At(b.X, b.Y).Feature = core.FeatureCity

	placeRoads(g, cfg, []core.Point{a, b}) // must not panic

	for i, c := range g.Cells() {
		if c.Feature == core.FeatureRoad {
			t.Fatalf("no road should exist across a full ocean wall, found at %d", i)
		}
	}
}

func TestPlaceCitiesRespectsTerrainAndSpacing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 20
	cfg.Height = 20
	cfg.Seed = 11

	g := flatLandGrid(20, 20)
	// Sprinkle forbidden terrain.
	for x := 0; x < 20; x++ {
		g.At(x, 0).Biome = core.BiomeOcean
		g.At(x, 19).Biome = core.BiomeMountain
	}

	cities := placeCities(g, cfg)
	if len(cities) == 0 {
		t.Fatal("expected at least one city on a mostly habitable map")
	}
	if len(cities) > cfg.Params.MaxCities {
		t.Fatalf("city count %d exceeds cap %d", len(cities), cfg.Params.MaxCities)
	}

	minDist := cfg.cityMinDistance()
	for i, a := range cities {
		biome := g.At(a.X, a.Y).Biome
		if biome == core.BiomeOcean || biome == core.BiomeMountain || biome == core.BiomeIceCap {
			t.Fatalf("city %d on forbidden biome %v", i, biome)
		}
		if g.At(a.X, a.Y).Feature != core.FeatureCity {
			t.Fatalf("city site %d not marked", i)
		}
		for j := i + 1; j < len(cities); j++ {
			b := cities[j]
			dx, dy := a.X-b.X, a.Y-b.Y
			if dx*dx+dy*dy < minDist*minDist {
				t.Fatalf("cities %d and %d closer than %d", i, j, minDist)
			}
		}
	}
}

func TestPlaceCitiesAllOcean(t *testing.T) {
	cfg := DefaultConfig()
	g := core.NewGrid(10, 10)
	for i := range g.Cells() {
		g.Cells()[i].Biome = core.BiomeOcean
	}
	if cities := placeCities(g, cfg); cities != nil {
		t.Fatalf("expected no cities on an all-ocean map, got %d", len(cities))
	}
}

func TestPlaceVolcanoesSubsetOfMountains(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.VolcanoFraction = 1

	g := flatLandGrid(6, 6)
	for x := 0; x < 6; x++ {
		g.At(x, 0).Biome = core.BiomeMountain
	}
	g.At(0, 0).Feature = core.FeatureRiver // already claimed

	placeVolcanoes(g, cfg)

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := g.At(x, y)
			if c.Feature == core.FeatureVolcano && c.Biome != core.BiomeMountain {
				t.Fatalf("volcano off-mountain at (%d,%d)", x, y)
			}
			if y == 0 && x > 0 && c.Feature != core.FeatureVolcano {
				t.Fatalf("fraction 1 should mark every bare mountain, missing at (%d,%d)", x, y)
			}
		}
	}
	if g.At(0, 0).Feature != core.FeatureRiver {
		t.Fatal("volcano must not displace an existing feature")
	}
}

func TestPlaceRiversDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 24
	cfg.Height = 24
	cfg.Seed = 900

	build := func() *core.Grid {
		g, err := Generate(cfg)
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		return g
	}
	a := build()
	b := build()
	for i := range a.Cells() {
		if a.Cells()[i].Feature != b.Cells()[i].Feature {
			t.Fatalf("feature placement diverged at cell %d", i)
		}
	}
}
