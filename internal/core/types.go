package core

// Biome classifies a cell's terrain from its elevation, temperature and
// moisture values.
type Biome uint8

const (
	BiomeOcean Biome = iota
	BiomeCoast
	BiomeDesert
	BiomeGrassland
	BiomeForest
	BiomeSwamp
	BiomeTundra
	BiomeMountain
	BiomeIceCap

	BiomeCount = int(BiomeIceCap) + 1
)

// String returns a human-readable biome name.
func (b Biome) String() string {
	switch b {
	case BiomeOcean:
		return "ocean"
	case BiomeCoast:
		return "coast"
	case BiomeDesert:
		return "desert"
	case BiomeGrassland:
		return "grassland"
	case BiomeForest:
		return "forest"
	case BiomeSwamp:
		return "swamp"
	case BiomeTundra:
		return "tundra"
	case BiomeMountain:
		return "mountain"
	case BiomeIceCap:
		return "icecap"
	default:
		return "unknown"
	}
}

// Feature marks a discrete overlay placed on top of a classified cell. A cell
// holds at most one feature.
type Feature uint8

const (
	FeatureNone Feature = iota
	FeatureCity
	FeatureRiver
	FeatureRoad
	FeatureVolcano

	FeatureCount = int(FeatureVolcano) + 1
)

// String returns a human-readable feature name.
func (f Feature) String() string {
	switch f {
	case FeatureNone:
		return "none"
	case FeatureCity:
		return "city"
	case FeatureRiver:
		return "river"
	case FeatureRoad:
		return "road"
	case FeatureVolcano:
		return "volcano"
	default:
		return "unknown"
	}
}

// featureRank is the fixed overwrite precedence: lower ranks win. The table,
// not stage call order, decides whether a feature may replace another.
var featureRank = [FeatureCount]int{
	FeatureNone:    FeatureCount,
	FeatureCity:    0,
	FeatureRiver:   1,
	FeatureRoad:    2,
	FeatureVolcano: 3,
}

// CanClaim reports whether incoming may occupy a cell currently holding
// existing. Empty cells are always claimable; otherwise the precedence table
// decides.
func CanClaim(existing, incoming Feature) bool {
	if existing == FeatureNone {
		return true
	}
	return featureRank[incoming] < featureRank[existing]
}

// Cell is one grid position of the generated world.
type Cell struct {
	Elevation   float64
	Temperature float64
	Moisture    float64
	Biome       Biome
	Feature     Feature
}

// Point addresses a grid cell.
type Point struct {
	X int
	Y int
}
