package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tile-track/generator"
	"github.com/lixenwraith/tile-track/grid"
	"github.com/lixenwraith/tile-track/parameter"
)

// TerminalRenderer composes draw calls into a buffer, one cell per grid cell, and shows it on a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	buf    *RenderBuffer
	view   grid.Point // grid cell shown at the screen origin
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{screen: screen, buf: NewRenderBuffer(w, h)}
}

// Buffer exposes the composed frame
func (r *TerminalRenderer) Buffer() *RenderBuffer { return r.buf }

// Pan moves the viewport by d cells
func (r *TerminalRenderer) Pan(d grid.Point) {
	r.view = r.view.Add(d)
}

// ResetView returns the viewport to the origin
func (r *TerminalRenderer) ResetView() {
	r.view = grid.Point{}
}

// View returns the grid cell at the screen origin
func (r *TerminalRenderer) View() grid.Point { return r.view }

// RenderFrame renders the entire frame: scene, optional debug overlay, status bar
func (r *TerminalRenderer) RenderFrame(res *generator.Result, calls []DrawCall, debug bool, status string) {
	w, h := r.screen.Size()
	if bw, bh := r.buf.Bounds(); bw != w || bh != h {
		r.buf.Resize(w, h)
	} else {
		r.buf.Clear()
	}

	r.Draw(calls)
	if debug && res != nil {
		r.DrawDebug(res)
	}
	r.drawStatusBar(status, res != nil && res.DecorWarning != nil)

	r.screen.Clear()
	r.buf.Flush(r.screen)
	r.screen.Show()
}

// Draw paints calls in order; later calls overwrite earlier ones
func (r *TerminalRenderer) Draw(calls []DrawCall) {
	for _, c := range calls {
		x, y, ok := r.toScreen(c.Pos)
		if !ok {
			continue
		}
		switch c.Layer {
		case LayerTerrain:
			r.buf.Set(x, y, Cell{Rune: ' ', Fg: RgbBackground, Bg: TerrainColor(c.Terrain)})
		case LayerDecor:
			glyph, color := DecorGlyph(c.Shape)
			r.buf.SetRune(x, y, glyph, color)
		case LayerTrack:
			fg := RgbTrackLine
			if c.Index == 0 {
				fg = RgbTrackStart
			}
			r.buf.Set(x, y, Cell{Rune: TrackGlyph(c.Sides[0], c.Sides[1]), Fg: fg, Bg: RgbTrackSurface})
		}
	}
}

// DrawDebug overlays claimed cells without a path glyph, the track rect border and tile indices
func (r *TerminalRenderer) DrawDebug(res *generator.Result) {
	for _, p := range res.Track.Occupancy.Cells() {
		x, y, ok := r.toScreen(p)
		if !ok {
			continue
		}
		if c := r.buf.Get(x, y); c.Bg != RgbTrackSurface {
			r.buf.Set(x, y, Cell{Rune: '•', Fg: RgbDebug, Bg: RgbTrackSurface})
		}
	}

	rect := res.Track.Rect
	for _, p := range rect.Cells() {
		if p.X != rect.Min.X && p.X != rect.Max.X && p.Y != rect.Min.Y && p.Y != rect.Max.Y {
			continue
		}
		x, y, ok := r.toScreen(p)
		if !ok {
			continue
		}
		c := r.buf.Get(x, y)
		c.Underline = true
		r.buf.Set(x, y, c)
	}

	for i, p := range res.Track.Tiles {
		x, y, ok := r.toScreen(p.EntryCell())
		if !ok {
			continue
		}
		r.buf.SetRune(x, y, rune('0'+i%10), RgbDebugIndex)
	}
}

// StatusLine formats the default status text for a result
func StatusLine(res *generator.Result) string {
	if res == nil {
		return ""
	}
	return fmt.Sprintf(parameter.StatusTemplate, res.Config.Seed, len(res.Track.Tiles), len(res.Decor), res.Track.Attempts)
}

func (r *TerminalRenderer) drawStatusBar(text string, warn bool) {
	w, h := r.buf.Bounds()
	if h < 1 {
		return
	}
	bg := RgbStatusBar
	if warn {
		bg = RgbStatusWarn
	}
	runes := []rune(text)
	for x := 0; x < w; x++ {
		ch := ' '
		if x < len(runes) {
			ch = runes[x]
		}
		r.buf.Set(x, h-1, Cell{Rune: ch, Fg: RgbStatusText, Bg: bg})
	}
}

// toScreen maps a grid cell into the drawable area above the status bar
func (r *TerminalRenderer) toScreen(p grid.Point) (int, int, bool) {
	w, h := r.buf.Bounds()
	x, y := p.X-r.view.X, p.Y-r.view.Y
	if x < 0 || y < 0 || x >= w || y >= h-parameter.BottomMargin {
		return 0, 0, false
	}
	return x, y, true
}
