package noise

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// simplexField is a single-layer normalized simplex sampler. It trades the
// octave detail of the gradient field for a smoother, cheaper signal suited to
// broad scalar layers like climate.
type simplexField struct {
	n opensimplex.Noise
}

func newSimplexField(seed int64) *simplexField {
	return &simplexField{n: opensimplex.NewNormalized(seed)}
}

func (f *simplexField) Sample(x, y float64) float64 {
	return clamp01(f.n.Eval2(x, y))
}
