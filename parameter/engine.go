package parameter

import "time"

// Viewer loop timing
const (
	// FrameUpdateInterval is the redraw interval when idle (10 FPS)
	FrameUpdateInterval = 100 * time.Millisecond

	// RegenerateDebounce ignores repeated regenerate keys arriving faster than this
	RegenerateDebounce = 50 * time.Millisecond
)
