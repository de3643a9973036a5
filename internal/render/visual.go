// Package render turns a generated grid into output artifacts: a colored
// glyph grid for terminals or an RGBA pixel buffer for raster files. Both
// renderers read the same biome/feature visual table.
package render

import (
	"image/color"

	"mapgen/internal/core"
)

// visual pairs the terminal and raster appearance of one biome or feature.
type visual struct {
	glyph string
	ansi  string // 256-color code for lipgloss
	rgba  color.RGBA
}

var biomeVisuals = [core.BiomeCount]visual{
	core.BiomeOcean:     {"~", "27", color.RGBA{R: 25, G: 70, B: 180, A: 255}},
	core.BiomeCoast:     {".", "180", color.RGBA{R: 194, G: 178, B: 128, A: 255}},
	core.BiomeDesert:    {":", "220", color.RGBA{R: 216, G: 190, B: 98, A: 255}},
	core.BiomeGrassland: {",", "70", color.RGBA{R: 110, G: 170, B: 70, A: 255}},
	core.BiomeForest:    {"T", "22", color.RGBA{R: 40, G: 100, B: 55, A: 255}},
	core.BiomeSwamp:     {"%", "64", color.RGBA{R: 86, G: 110, B: 60, A: 255}},
	core.BiomeTundra:    {"-", "250", color.RGBA{R: 190, G: 200, B: 195, A: 255}},
	core.BiomeMountain:  {"^", "245", color.RGBA{R: 150, G: 150, B: 160, A: 255}},
	core.BiomeIceCap:    {"*", "255", color.RGBA{R: 235, G: 240, B: 250, A: 255}},
}

// Feature visuals override the biome underneath; FeatureNone has no entry.
var featureVisuals = [core.FeatureCount]visual{
	core.FeatureCity:    {"#", "203", color.RGBA{R: 220, G: 70, B: 70, A: 255}},
	core.FeatureRiver:   {"~", "45", color.RGBA{R: 60, G: 150, B: 230, A: 255}},
	core.FeatureRoad:    {"=", "137", color.RGBA{R: 150, G: 110, B: 70, A: 255}},
	core.FeatureVolcano: {"!", "202", color.RGBA{R: 235, G: 90, B: 30, A: 255}},
}

// visualFor resolves the appearance of a cell, letting its feature override
// the biome.
func visualFor(c core.Cell) visual {
	if c.Feature != core.FeatureNone {
		return featureVisuals[c.Feature]
	}
	return biomeVisuals[c.Biome]
}

// DisplayIndex maps a cell to its palette slot: biomes first, then features.
func DisplayIndex(c core.Cell) uint8 {
	if c.Feature != core.FeatureNone {
		return uint8(core.BiomeCount + int(c.Feature) - 1)
	}
	return uint8(c.Biome)
}

// Palette returns the RGBA lookup table indexed by DisplayIndex.
func Palette() []color.RGBA {
	palette := make([]color.RGBA, core.BiomeCount+core.FeatureCount-1)
	for b, v := range biomeVisuals {
		palette[b] = v.rgba
	}
	for f := core.FeatureCity; f < core.Feature(core.FeatureCount); f++ {
		palette[core.BiomeCount+int(f)-1] = featureVisuals[f].rgba
	}
	return palette
}
