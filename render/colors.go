package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tile-track/terrain"
	"github.com/lixenwraith/tile-track/track"
)

// RGB color definitions, palette from coolors 274c77-8fa7a7-c20114-db3a34-76bed0
var (
	RgbBackground = tcell.NewRGBColor(38, 64, 39) // Field green behind everything

	RgbTerrainLow  = tcell.NewRGBColor(45, 80, 46)
	RgbTerrainMid  = tcell.NewRGBColor(62, 104, 60)
	RgbTerrainHigh = tcell.NewRGBColor(96, 128, 80)

	RgbTrackSurface = tcell.NewRGBColor(39, 76, 119)   // Asphalt blue
	RgbTrackLine    = tcell.NewRGBColor(143, 167, 167) // Lane paint
	RgbTrackStart   = tcell.NewRGBColor(194, 1, 20)    // Start tile marker

	RgbBush = tcell.NewRGBColor(118, 190, 208)
	RgbRock = tcell.NewRGBColor(160, 160, 150)
	RgbTree = tcell.NewRGBColor(20, 140, 40)

	RgbDebug      = tcell.NewRGBColor(219, 58, 52) // Occupancy and rect overlay
	RgbDebugIndex = tcell.NewRGBColor(255, 255, 0)

	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255)
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)
	RgbStatusWarn = tcell.NewRGBColor(255, 165, 0)
)

// TerrainColor returns the background for a terrain band
func TerrainColor(k terrain.Kind) tcell.Color {
	switch k {
	case terrain.Low:
		return RgbTerrainLow
	case terrain.Mid:
		return RgbTerrainMid
	default:
		return RgbTerrainHigh
	}
}

// decorGlyphs maps shape name prefixes to glyph and color
var decorGlyphs = map[string]struct {
	r     rune
	color tcell.Color
}{
	"bush": {'♣', RgbBush},
	"rock": {'●', RgbRock},
	"tree": {'♠', RgbTree},
}

// DecorGlyph returns the glyph and color for a shape name
func DecorGlyph(name string) (rune, tcell.Color) {
	if len(name) >= 4 {
		if g, ok := decorGlyphs[name[:4]]; ok {
			return g.r, g.color
		}
	}
	return '*', RgbRock
}

// TrackGlyph returns the box-drawing rune joining two sides
func TrackGlyph(a, b track.Direction) rune {
	has := func(d track.Direction) bool { return a == d || b == d }
	switch {
	case has(track.Left) && has(track.Right):
		return '━'
	case has(track.Top) && has(track.Bottom):
		return '┃'
	case has(track.Bottom) && has(track.Right):
		return '┏'
	case has(track.Bottom) && has(track.Left):
		return '┓'
	case has(track.Top) && has(track.Right):
		return '┗'
	case has(track.Top) && has(track.Left):
		return '┛'
	}
	return '╋'
}
