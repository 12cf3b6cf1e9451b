package parameter

// Layout & Margins
const (
	// BottomMargin keeps one line for the status bar
	BottomMargin = 1

	// PanStep is the number of cells an arrow key moves the viewport
	PanStep = 2
)

// Status bar
const (
	StatusTemplate = " seed %d  length %d  decor %d  attempts %d "
	DebugIndicator = " DEBUG "
	AudioStr       = "♫ "
)
