package worldgen

import "mapgen/internal/core"

// classify maps one (elevation, temperature, moisture) triple to a biome.
// The ladder order is fixed: elevation bands first (temperature and moisture
// ignored below sea level), then the temperature/moisture quadrants. The
// function is total over [0,1]^3.
func classify(elev, temp, moist float64, p Params) core.Biome {
	switch {
	case elev < p.SeaLevel:
		return core.BiomeOcean
	case elev < p.SeaLevel+p.CoastBand:
		return core.BiomeCoast
	case elev >= p.MountainLevel:
		if temp < p.IceCapTemp {
			return core.BiomeIceCap
		}
		return core.BiomeMountain
	}

	switch {
	case temp < p.TundraTemp:
		return core.BiomeTundra
	case moist < p.DesertMoisture && temp > p.DesertTemp:
		return core.BiomeDesert
	case moist > p.SwampMoisture && elev < p.SwampElevation:
		return core.BiomeSwamp
	case moist > p.ForestMoisture:
		return core.BiomeForest
	default:
		return core.BiomeGrassland
	}
}

// classifyGrid assigns a biome to every cell from its continuous fields.
func classifyGrid(g *core.Grid, p Params) {
	cells := g.Cells()
	for i := range cells {
		c := &cells[i]
		c.Biome = classify(c.Elevation, c.Temperature, c.Moisture, p)
	}
}
