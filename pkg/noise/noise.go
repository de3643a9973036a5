// Package noise provides deterministic 2D scalar field samplers for terrain
// synthesis. Two interchangeable strategies share the Field contract: coherent
// gradient noise for smooth terrain, and a hashed fallback that needs no
// gradient tables at all.
package noise

// Field samples a continuous scalar field. Sample returns a value in [0, 1]
// and is deterministic for a fixed (seed, x, y).
type Field interface {
	Sample(x, y float64) float64
}

type options struct {
	octaves      int
	simplex      bool
	fallbackOnly bool
}

// Option adjusts field construction.
type Option func(*options)

// WithOctaves sets the number of gradient octaves. Values are clamped to the
// 2..4 range the sampler supports.
func WithOctaves(n int) Option {
	return func(o *options) {
		if n < 2 {
			n = 2
		}
		if n > 4 {
			n = 4
		}
		o.octaves = n
	}
}

// WithSimplex selects the single-layer simplex strategy instead of octave
// gradient noise. WithFallbackOnly still takes precedence.
func WithSimplex() Option {
	return func(o *options) { o.simplex = true }
}

// WithFallbackOnly forces the hashed fallback strategy regardless of which
// coherent strategy was requested.
func WithFallbackOnly() Option {
	return func(o *options) { o.fallbackOnly = true }
}

// New constructs a Field for the given seed. The strategy is fixed at
// construction; callers only ever see the Field contract.
func New(seed int64, opts ...Option) Field {
	o := options{octaves: 3}
	for _, opt := range opts {
		opt(&o)
	}
	if o.fallbackOnly {
		return &fallbackField{seed: seed}
	}
	if o.simplex {
		return newSimplexField(seed)
	}
	return newGradientField(seed, o.octaves)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
