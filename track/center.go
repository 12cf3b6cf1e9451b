package track

import "github.com/lixenwraith/tile-track/grid"

// CenterOffset returns the translation placing the middle of rect on the middle of a width x height field
func CenterOffset(rect grid.Rect, width, height int) grid.Point {
	return grid.Point{
		X: grid.FloorDiv(width-rect.Width(), 2) - rect.Min.X,
		Y: grid.FloorDiv(height-rect.Height(), 2) - rect.Min.Y,
	}
}

// Center translates tiles, occupancy and rect onto the middle of the playfield.
// Tracks larger than the field are not clipped.
func Center(t Track, width, height int) Track {
	d := CenterOffset(t.Rect, width, height)
	tiles := make([]PlacedTile, len(t.Tiles))
	for i, p := range t.Tiles {
		p.Pos = p.Pos.Add(d)
		tiles[i] = p
	}
	out := Track{
		Tiles:    tiles,
		Rect:     t.Rect.Translate(d),
		Attempts: t.Attempts,
	}
	if t.Occupancy != nil {
		out.Occupancy = t.Occupancy.Translate(d)
	}
	return out
}
