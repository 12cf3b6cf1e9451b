package render

import (
	"github.com/lixenwraith/tile-track/decor"
	"github.com/lixenwraith/tile-track/generator"
	"github.com/lixenwraith/tile-track/grid"
	"github.com/lixenwraith/tile-track/terrain"
	"github.com/lixenwraith/tile-track/track"
)

// Layer groups draw calls; lower layers are drawn first
type Layer uint8

const (
	LayerTerrain Layer = iota
	LayerDecor
	LayerTrack
)

// DrawCall is one cell-level draw request, independent of the output device.
// Fields not relevant to the layer are zero.
type DrawCall struct {
	Layer Layer
	Pos   grid.Point

	// Track
	Index       int // tile position in walk order
	Artwork     int
	Orientation int
	Sides       [2]track.Direction // connectors of this cell

	// Terrain
	Terrain terrain.Kind

	// Decor
	Shape    string
	Rotation float64
	Scale    float64
	Tier     int
}

// BuildDrawList flattens a generation result back to front: terrain, decor by tier, track
func BuildDrawList(res *generator.Result) []DrawCall {
	calls := make([]DrawCall, 0, len(res.Terrain.Cells)+len(res.Decor)+len(res.Track.Tiles)*2)

	for _, c := range res.Terrain.Cells {
		calls = append(calls, DrawCall{Layer: LayerTerrain, Pos: c.Pos, Terrain: c.Kind})
	}
	// decor arrives tier-sorted from the placer
	for _, it := range res.Decor {
		calls = append(calls, decorCall(it))
	}
	for i, p := range res.Track.Tiles {
		for _, tc := range TrackCells(p) {
			calls = append(calls, DrawCall{
				Layer:       LayerTrack,
				Pos:         tc.Pos,
				Index:       i,
				Artwork:     p.Tile.Index,
				Orientation: p.Tile.Orientation,
				Sides:       tc.Sides,
			})
		}
	}
	return calls
}

func decorCall(it decor.Item) DrawCall {
	return DrawCall{
		Layer:    LayerDecor,
		Pos:      it.Pos,
		Shape:    it.Shape.Name,
		Rotation: it.Rotation,
		Scale:    it.Size,
		Tier:     it.Tier,
	}
}

// TrackCell is one footprint cell a track path runs through
type TrackCell struct {
	Pos   grid.Point
	Sides [2]track.Direction
}

// TrackCells returns the path cells of a placed tile.
// A big turn runs through three of its four cells: straight in, the corner, straight out.
func TrackCells(p track.PlacedTile) []TrackCell {
	if !p.Tile.Big {
		return []TrackCell{{Pos: p.Pos, Sides: [2]track.Direction{p.Entry, p.Exit}}}
	}
	in := p.EntryCell()
	corner := in.Add(track.Vector(track.Opposite(p.Entry)))
	out := p.ExitCell()
	return []TrackCell{
		{Pos: in, Sides: [2]track.Direction{p.Entry, track.Opposite(p.Entry)}},
		{Pos: corner, Sides: [2]track.Direction{p.Entry, p.Exit}},
		{Pos: out, Sides: [2]track.Direction{track.Opposite(p.Exit), p.Exit}},
	}
}
