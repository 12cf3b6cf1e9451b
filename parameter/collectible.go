package parameter

// Decor scatter
const (
	// DefaultDecorCount is the number of decor items requested per generation
	DefaultDecorCount = 25

	// DecorMaxResamples caps random samples spent on one decor item
	DecorMaxResamples = 200

	// DecorScaleMin and DecorScaleMax bound the random footprint scale factor
	DecorScaleMin = 0.75
	DecorScaleMax = 1.25
)
