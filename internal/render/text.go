package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mapgen/internal/core"
)

// TextRenderer renders a grid as colored glyph rows for terminal output.
type TextRenderer struct {
	biomeStyles   [core.BiomeCount]lipgloss.Style
	featureStyles [core.FeatureCount]lipgloss.Style
}

// NewTextRenderer builds a renderer with one cached style per visual.
func NewTextRenderer() *TextRenderer {
	r := &TextRenderer{}
	for b, v := range biomeVisuals {
		r.biomeStyles[b] = lipgloss.NewStyle().Foreground(lipgloss.Color(v.ansi))
	}
	for f := core.FeatureCity; f < core.Feature(core.FeatureCount); f++ {
		r.featureStyles[f] = lipgloss.NewStyle().Foreground(lipgloss.Color(featureVisuals[f].ansi))
	}
	return r
}

// Render concatenates the colored glyph rows. Every row has the same
// printable width as the grid, one trailing newline per row.
func (r *TextRenderer) Render(g *core.Grid) string {
	var b strings.Builder
	cells := g.Cells()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := cells[g.Index(x, y)]
			if c.Feature != core.FeatureNone {
				b.WriteString(r.featureStyles[c.Feature].Render(featureVisuals[c.Feature].glyph))
			} else {
				b.WriteString(r.biomeStyles[c.Biome].Render(biomeVisuals[c.Biome].glyph))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
