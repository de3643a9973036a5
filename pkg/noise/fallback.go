package noise

import "math"

// fallbackField hashes quantized coordinates into pseudo-random values and
// averages a 3x3 neighborhood so the result is not pure static. It has no
// dependencies, which is the point: it is the strategy of last resort.
type fallbackField struct {
	seed int64
}

const fallbackQuantum = 1000

// Sample returns the smoothed hash value for the quantized coordinates.
func (f *fallbackField) Sample(x, y float64) float64 {
	qx := int64(math.Floor(x * fallbackQuantum))
	qy := int64(math.Floor(y * fallbackQuantum))

	sum := 0.0
	for dy := int64(-1); dy <= 1; dy++ {
		for dx := int64(-1); dx <= 1; dx++ {
			sum += hash01(f.seed, qx+dx, qy+dy)
		}
	}
	return sum / 9
}

// hash01 mixes (seed, x, y) into a uniform value in [0, 1). The constants are
// the splitmix64 finalizer multipliers.
func hash01(seed, x, y int64) float64 {
	h := uint64(seed) * 0x9E3779B97F4A7C15
	h ^= uint64(x) * 0xBF58476D1CE4E5B9
	h = (h << 31) | (h >> 33)
	h ^= uint64(y) * 0x94D049BB133111EB
	h ^= h >> 33
	h *= 0xFF51AFD7ED558CCD
	h ^= h >> 33
	return float64(h>>11) / float64(1<<53)
}
