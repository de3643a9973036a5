package worldgen

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig marks configuration errors detected before any generation
// work starts.
var ErrInvalidConfig = errors.New("invalid config")

// Params holds the tunable thresholds and rates of the generation pipeline.
// Classification order is fixed; only the constants move.
type Params struct {
	SeaLevel      float64
	CoastBand     float64
	MountainLevel float64
	IceCapTemp    float64

	TundraTemp     float64
	DesertMoisture float64
	DesertTemp     float64
	SwampMoisture  float64
	SwampElevation float64
	ForestMoisture float64

	ClimateNoiseWeight   float64
	CoastalHumidityBonus float64
	CoastalHumidityRange int

	CityAreaPerSite   int
	MaxCities         int
	CityMinDistance   int
	RiverAreaPerSpawn int
	MaxRivers         int
	RiverSourceLevel  float64
	RoadSlopeCost     float64
	VolcanoFraction   float64
}

// Config controls a single generation run.
type Config struct {
	Width  int
	Height int
	Seed   int64
	Scale  float64

	// FallbackNoise forces the hashed noise strategy even though the
	// gradient sampler is available.
	FallbackNoise bool

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  80,
		Height: 40,
		Seed:   1337,
		Scale:  0.1,
		Params: Params{
			SeaLevel:      0.30,
			CoastBand:     0.04,
			MountainLevel: 0.75,
			IceCapTemp:    0.25,

			TundraTemp:     0.25,
			DesertMoisture: 0.25,
			DesertTemp:     0.50,
			SwampMoisture:  0.70,
			SwampElevation: 0.45,
			ForestMoisture: 0.45,

			ClimateNoiseWeight:   0.2,
			CoastalHumidityBonus: 0.15,
			CoastalHumidityRange: 2,

			CityAreaPerSite:   150,
			MaxCities:         9,
			CityMinDistance:   0, // 0 means derive from grid size
			RiverAreaPerSpawn: 96,
			MaxRivers:         12,
			RiverSourceLevel:  0.65,
			RoadSlopeCost:     8,
			VolcanoFraction:   0.04,
		},
	}
}

// Validate rejects configurations that cannot produce a grid. It runs before
// any allocation so a failed run leaves no partial state.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfig, c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("%w: height must be positive, got %d", ErrInvalidConfig, c.Height)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("%w: scale must be positive, got %g", ErrInvalidConfig, c.Scale)
	}
	return nil
}

// cityMinDistance resolves the effective minimum pairwise city spacing.
func (c Config) cityMinDistance() int {
	if c.Params.CityMinDistance > 0 {
		return c.Params.CityMinDistance
	}
	min := c.Width
	if c.Height < min {
		min = c.Height
	}
	d := min / 4
	if d < 3 {
		d = 3
	}
	return d
}
