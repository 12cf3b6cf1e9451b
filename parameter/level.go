package parameter

// Track walk defaults
const (
	// DefaultTrackLength is the tile count requested when none is given
	DefaultTrackLength = 40

	// DefaultSeed drives track shape, terrain and decor
	DefaultSeed = 42

	// WalkMaxAttempts caps whole-walk restarts before a track is declared ungenerable
	WalkMaxAttempts = 10000

	// PlayfieldWidth and PlayfieldHeight are the renderable grid in cells
	PlayfieldWidth  = 24
	PlayfieldHeight = 16
)

// Outline track (hull + Chaikin) defaults, in playfield pixels
const (
	OutlinePoints      = 20
	OutlineWidth       = 1200
	OutlineHeight      = 800
	OutlinePadding     = 100
	OutlineAmplitude   = 200.0
	OutlineRefinements = 3
)
