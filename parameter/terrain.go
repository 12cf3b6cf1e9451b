package parameter

// Terrain noise field
const (
	// TerrainOctaves is the fixed number of Perlin octaves summed per sample
	TerrainOctaves = 3

	// TerrainAlpha weights successive octaves (amplitude divisor)
	TerrainAlpha = 2.0

	// TerrainBeta scales frequency between octaves
	TerrainBeta = 2.0

	// TerrainFrequency multiplies height-normalized coordinates before sampling
	TerrainFrequency = 4.0

	// TerrainLowBelow: samples below are low ground
	TerrainLowBelow = 0.0

	// TerrainHighFrom: samples at or above are high ground
	TerrainHighFrom = 0.4
)
