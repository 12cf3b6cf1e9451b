package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tile-track/generator"
	"github.com/lixenwraith/tile-track/grid"
	"github.com/lixenwraith/tile-track/track"
)

func generate(t *testing.T) *generator.Result {
	t.Helper()
	// A 12 tile walk spans at most 25 cells, so the whole track stays on a 30x30 field
	cfg := generator.DefaultConfig()
	cfg.Length = 12
	cfg.Width, cfg.Height = 30, 30
	res, err := generator.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return res
}

func newScreen(t *testing.T, w, h int) tcell.Screen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestBuildDrawListLayerOrder(t *testing.T) {
	res := generate(t)
	calls := BuildDrawList(res)

	var terrainN, decorN, trackN int
	last := LayerTerrain
	for i, c := range calls {
		if c.Layer < last {
			t.Fatalf("call %d: layer %d after layer %d", i, c.Layer, last)
		}
		last = c.Layer
		switch c.Layer {
		case LayerTerrain:
			terrainN++
		case LayerDecor:
			decorN++
		case LayerTrack:
			trackN++
		}
	}

	if want := res.Config.Width * res.Config.Height; terrainN != want {
		t.Errorf("terrain calls = %d, want %d", terrainN, want)
	}
	if decorN != len(res.Decor) {
		t.Errorf("decor calls = %d, want %d", decorN, len(res.Decor))
	}
	wantTrack := 0
	for _, p := range res.Track.Tiles {
		wantTrack += len(TrackCells(p))
	}
	if trackN != wantTrack {
		t.Errorf("track calls = %d, want %d", trackN, wantTrack)
	}
}

func TestBuildDrawListDecorTierOrder(t *testing.T) {
	calls := BuildDrawList(generate(t))
	prev := -1
	for _, c := range calls {
		if c.Layer != LayerDecor {
			continue
		}
		if c.Tier < prev {
			t.Fatalf("decor tier %d drawn after tier %d", c.Tier, prev)
		}
		prev = c.Tier
	}
}

func TestTrackCellsSmall(t *testing.T) {
	p := track.PlacedTile{
		Tile:  track.DefaultCatalog().At(0),
		Pos:   grid.Point{X: 3, Y: 4},
		Entry: track.Left,
		Exit:  track.Right,
	}
	cells := TrackCells(p)
	if len(cells) != 1 || cells[0].Pos != p.Pos {
		t.Fatalf("TrackCells = %+v, want single cell at %v", cells, p.Pos)
	}
	if got := TrackGlyph(cells[0].Sides[0], cells[0].Sides[1]); got != '━' {
		t.Errorf("glyph = %q, want ━", got)
	}
}

func TestTrackCellsBigTurn(t *testing.T) {
	var big track.TileKind
	found := false
	for _, tk := range track.DefaultCatalog().Tiles() {
		if tk.Big && tk.Connects(track.Left) && tk.Connects(track.Bottom) {
			big, found = tk, true
			break
		}
	}
	if !found {
		t.Fatal("no big Left/Bottom turn in default catalog")
	}

	// Heading right from the origin: footprint (1,0)-(2,1)
	anchor, next, _ := track.Placement(big, grid.Point{}, track.Right)
	p := track.PlacedTile{Tile: big, Pos: anchor, Entry: track.Left, Exit: track.Bottom}

	cells := TrackCells(p)
	want := []struct {
		pos   grid.Point
		glyph rune
	}{
		{grid.Point{X: 1, Y: 0}, '━'},
		{grid.Point{X: 2, Y: 0}, '┓'},
		{grid.Point{X: 2, Y: 1}, '┃'},
	}
	if len(cells) != len(want) {
		t.Fatalf("got %d cells, want %d", len(cells), len(want))
	}
	for i, w := range want {
		if cells[i].Pos != w.pos {
			t.Errorf("cell %d at %v, want %v", i, cells[i].Pos, w.pos)
		}
		if g := TrackGlyph(cells[i].Sides[0], cells[i].Sides[1]); g != w.glyph {
			t.Errorf("cell %d glyph %q, want %q", i, g, w.glyph)
		}
	}
	if last := cells[len(cells)-1].Pos; last != next {
		t.Errorf("last path cell %v, want walk position %v", last, next)
	}
}

func TestTrackGlyph(t *testing.T) {
	tests := []struct {
		a, b track.Direction
		want rune
	}{
		{track.Left, track.Right, '━'},
		{track.Right, track.Left, '━'},
		{track.Top, track.Bottom, '┃'},
		{track.Bottom, track.Right, '┏'},
		{track.Left, track.Bottom, '┓'},
		{track.Top, track.Right, '┗'},
		{track.Left, track.Top, '┛'},
		{track.Top, track.Top, '╋'},
	}
	for _, tt := range tests {
		if got := TrackGlyph(tt.a, tt.b); got != tt.want {
			t.Errorf("TrackGlyph(%v, %v) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDecorGlyph(t *testing.T) {
	if r, c := DecorGlyph("tree_01"); r != '♠' || c != RgbTree {
		t.Errorf("tree_01 = %q, want ♠", r)
	}
	if r, _ := DecorGlyph("x"); r != '*' {
		t.Errorf("unknown shape glyph = %q, want *", r)
	}
}

func TestRenderBufferClearAndTouch(t *testing.T) {
	buf := NewRenderBuffer(5, 3)
	buf.Set(2, 1, Cell{Rune: 'x', Fg: RgbDebug, Bg: RgbTrackSurface})
	if !buf.Touched(2, 1) || buf.Touched(0, 0) {
		t.Fatal("touch tracking wrong after Set")
	}

	buf.SetRune(2, 1, 'y', RgbDebugIndex)
	if c := buf.Get(2, 1); c.Rune != 'y' || c.Bg != RgbTrackSurface {
		t.Errorf("SetRune lost background: %+v", c)
	}

	buf.Set(-1, 0, Cell{Rune: 'z'}) // ignored
	buf.Clear()
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			if c := buf.Get(x, y); c.Rune != ' ' || c.Bg != RgbBackground || buf.Touched(x, y) {
				t.Fatalf("cell (%d,%d) not cleared: %+v", x, y, c)
			}
		}
	}
}

func TestRenderFrame(t *testing.T) {
	res := generate(t)
	screen := newScreen(t, 60, 40)
	r := NewTerminalRenderer(screen)

	status := StatusLine(res)
	r.RenderFrame(res, BuildDrawList(res), false, status)

	buf := r.Buffer()
	w, h := buf.Bounds()
	if w != 60 || h != 40 {
		t.Fatalf("buffer %dx%d, want 60x40", w, h)
	}

	var line strings.Builder
	for x := 0; x < len([]rune(status)); x++ {
		line.WriteRune(buf.Get(x, h-1).Rune)
	}
	if line.String() != status {
		t.Errorf("status row = %q, want %q", line.String(), status)
	}

	for i, p := range res.Track.Tiles {
		for _, tc := range TrackCells(p) {
			if c := buf.Get(tc.Pos.X, tc.Pos.Y); c.Bg != RgbTrackSurface {
				t.Fatalf("tile %d cell %v not drawn as track: %+v", i, tc.Pos, c)
			}
		}
	}
}

func TestRenderFrameDebugMarksOccupancy(t *testing.T) {
	res := generate(t)
	r := NewTerminalRenderer(newScreen(t, 60, 40))
	r.RenderFrame(res, BuildDrawList(res), true, "")

	buf := r.Buffer()
	for _, p := range res.Track.Occupancy.Cells() {
		if c := buf.Get(p.X, p.Y); c.Bg != RgbTrackSurface {
			t.Fatalf("occupied cell %v not overlaid: %+v", p, c)
		}
	}
	corner := res.Track.Rect.Min
	if !buf.Get(corner.X, corner.Y).Underline {
		t.Error("rect corner not underlined in debug view")
	}
}

func TestPanShiftsView(t *testing.T) {
	res := generate(t)
	r := NewTerminalRenderer(newScreen(t, 60, 40))
	r.Pan(grid.Point{X: -2, Y: -1})
	if r.View() != (grid.Point{X: -2, Y: -1}) {
		t.Fatalf("View = %v", r.View())
	}
	r.RenderFrame(res, BuildDrawList(res), false, "")

	start := res.Track.Tiles[0].Pos
	if c := r.Buffer().Get(start.X+2, start.Y+1); c.Fg != RgbTrackStart {
		t.Errorf("start tile not shifted by pan: %+v", c)
	}

	r.ResetView()
	if r.View() != (grid.Point{}) {
		t.Errorf("ResetView left %v", r.View())
	}
}
