package render

import "github.com/gdamore/tcell/v2"

// Cell is one composed screen cell
type Cell struct {
	Rune      rune
	Fg        tcell.Color
	Bg        tcell.Color
	Underline bool
}

// Style converts the cell colors to a tcell style
func (c Cell) Style() tcell.Style {
	s := tcell.StyleDefault.Foreground(c.Fg).Background(c.Bg)
	if c.Underline {
		s = s.Underline(true)
	}
	return s
}

// RenderBuffer is a compositor over a flat cell array with touch tracking.
// Layers write in order; Flush pushes touched cells to a screen.
type RenderBuffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blank background using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: RgbBackground, Bg: RgbBackground}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Bounds returns buffer dimensions
func (b *RenderBuffer) Bounds() (int, int) { return b.width, b.height }

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y); out of bounds yields a zero cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Set replaces the cell at (x, y)
func (b *RenderBuffer) Set(x, y int, c Cell) {
	if !b.inBounds(x, y) {
		return
	}
	i := y*b.width + x
	b.cells[i] = c
	b.touched[i] = true
}

// SetRune writes a glyph and foreground, keeping the background underneath
func (b *RenderBuffer) SetRune(x, y int, r rune, fg tcell.Color) {
	if !b.inBounds(x, y) {
		return
	}
	c := b.Get(x, y)
	c.Rune, c.Fg = r, fg
	b.Set(x, y, c)
}

// Touched reports whether (x, y) was written since the last Clear
func (b *RenderBuffer) Touched(x, y int) bool {
	return b.inBounds(x, y) && b.touched[y*b.width+x]
}

// Flush writes every cell to screen
func (b *RenderBuffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			screen.SetContent(x, y, c.Rune, nil, c.Style())
		}
	}
}
