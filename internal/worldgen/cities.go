package worldgen

import (
	"math"
	"math/rand"
	"sort"

	"mapgen/internal/core"
)

// placeCities scores candidate sites and greedily selects the best ones under
// a minimum pairwise distance constraint. Returns the selected sites; an
// empty result means the map offered no habitable ground.
func placeCities(g *core.Grid, cfg Config) []core.Point {
	rng := rand.New(rand.NewSource(core.SubSeed(cfg.Seed, "features/cities")))

	type scored struct {
		pt    core.Point
		score float64
	}
	var candidates []scored

	cells := g.Cells()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := cells[g.Index(x, y)]
			if c.Biome == core.BiomeOcean || c.Biome == core.BiomeMountain || c.Biome == core.BiomeIceCap {
				continue
			}
			candidates = append(candidates, scored{
				pt:    core.Point{X: x, Y: y},
				score: citySuitability(c, rng),
			})
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	// Stable order: score descending, index ascending on ties.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	want := g.W * g.H / cfg.Params.CityAreaPerSite
	if want > cfg.Params.MaxCities {
		want = cfg.Params.MaxCities
	}
	if want < 1 {
		want = 1
	}
	minDist := cfg.cityMinDistance()

	var sites []core.Point
	for _, cand := range candidates {
		if len(sites) >= want {
			break
		}
		if tooClose(cand.pt, sites, minDist) {
			continue
		}
		cell := g.At(cand.pt.X, cand.pt.Y)
		if !core.CanClaim(cell.Feature, core.FeatureCity) {
			continue
		}
		cell.Feature = core.FeatureCity
		sites = append(sites, cand.pt)
	}
	return sites
}

// citySuitability favors moderate elevation and available moisture, with a
// small seeded jitter so equally scored plains do not all cluster at the
// scan origin.
func citySuitability(c core.Cell, rng *rand.Rand) float64 {
	elevFit := 1 - math.Abs(c.Elevation-0.5)*2
	return elevFit + 0.5*c.Moisture + 0.1*rng.Float64()
}

func tooClose(p core.Point, sites []core.Point, minDist int) bool {
	for _, s := range sites {
		dx := p.X - s.X
		dy := p.Y - s.Y
		if dx*dx+dy*dy < minDist*minDist {
			return true
		}
	}
	return false
}
