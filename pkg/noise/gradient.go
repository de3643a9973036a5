package noise

import "github.com/aquilax/go-perlin"

// gradientField sums Perlin octaves with halving amplitude and doubling
// frequency, producing large coherent regions.
type gradientField struct {
	p       *perlin.Perlin
	octaves int
}

func newGradientField(seed int64, octaves int) *gradientField {
	// alpha=2, beta=2, n=3 gives terrain-like noise.
	return &gradientField{
		p:       perlin.NewPerlin(2, 2, 3, seed),
		octaves: octaves,
	}
}

// Sample returns octave-blended gradient noise remapped into [0, 1].
func (f *gradientField) Sample(x, y float64) float64 {
	total := 0.0
	amplitude := 1.0
	frequency := 1.0
	norm := 0.0
	for i := 0; i < f.octaves; i++ {
		total += f.p.Noise2D(x*frequency, y*frequency) * amplitude
		norm += amplitude
		amplitude *= 0.5
		frequency *= 2
	}
	return clamp01(total/norm*0.5 + 0.5)
}
