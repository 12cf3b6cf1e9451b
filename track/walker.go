package track

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/lixenwraith/tile-track/grid"
	"github.com/lixenwraith/tile-track/parameter"
)

var (
	// ErrDeadEnd means no catalog tile fits the current walk position.
	// It is recovered by restarting the whole walk.
	ErrDeadEnd = errors.New("track: dead end")

	// ErrUngenerable means every attempt within the retry ceiling hit a dead end
	ErrUngenerable = errors.New("track: ungenerable")

	// ErrInvalidLength is returned for lengths below 1
	ErrInvalidLength = errors.New("track: length must be at least 1")
)

// UngenerableError carries the parameters of an exhausted generation
type UngenerableError struct {
	Length   int
	Attempts int
}

func (e *UngenerableError) Error() string {
	return fmt.Sprintf("track: no %d-tile walk within %d attempts", e.Length, e.Attempts)
}

func (e *UngenerableError) Unwrap() error { return ErrUngenerable }

// PlacedTile is a catalog tile committed at an anchor cell.
// Pos is the top-left cell of the footprint.
type PlacedTile struct {
	Tile  TileKind
	Pos   grid.Point
	Entry Direction // side the walk came in through
	Exit  Direction // side the walk leaves through
}

// Footprint returns every cell the tile covers
func (p PlacedTile) Footprint() []grid.Point {
	n := p.Tile.Size() - 1
	return grid.Rect{Min: p.Pos, Max: p.Pos.Add(grid.Point{X: n, Y: n})}.Cells()
}

// EntryCell is the footprint cell touching the entry side
func (p PlacedTile) EntryCell() grid.Point {
	return p.corner(p.Entry, Opposite(p.Exit))
}

// ExitCell is the footprint cell the walk leaves from
func (p PlacedTile) ExitCell() grid.Point {
	return p.corner(p.Exit, Opposite(p.Entry))
}

// corner returns the footprint cell on sides a and b; small tiles have one cell
func (p PlacedTile) corner(a, b Direction) grid.Point {
	c := p.Pos
	if !p.Tile.Big {
		return c
	}
	if a == Right || b == Right {
		c.X++
	}
	if a == Bottom || b == Bottom {
		c.Y++
	}
	return c
}

// Track is the result of one successful walk
type Track struct {
	Tiles     []PlacedTile
	Occupancy *grid.Occupancy
	Rect      grid.Rect
	Attempts  int // walks consumed, including the successful one
}

// candidate is a tile that fits at the current walk position
type candidate struct {
	tile   TileKind
	anchor grid.Point
	next   grid.Point
	exit   Direction
	hitbox []grid.Point
}

// Placement computes where tile lands when the walk leaves pos heading dir.
// The hitbox always contains pos+dir; big tiles extend one more cell along dir
// and one cell toward their exit side.
func Placement(tile TileKind, pos grid.Point, dir Direction) (anchor, next grid.Point, hitbox []grid.Point) {
	entered := pos.Add(Vector(dir))
	if !tile.Big {
		return entered, entered, []grid.Point{entered}
	}
	exit := tile.Exit(Opposite(dir))
	next = entered.Add(Vector(dir)).Add(Vector(exit))
	box := grid.Span(entered, next)
	return box.Min, next, box.Cells()
}

// Walker grows tracks from a catalog with a bounded number of restarts
type Walker struct {
	Catalog     *Catalog
	MaxAttempts int
}

// NewWalker returns a walker over catalog; a nil catalog selects DefaultCatalog
func NewWalker(catalog *Catalog, maxAttempts int) *Walker {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if maxAttempts < 1 {
		maxAttempts = parameter.WalkMaxAttempts
	}
	return &Walker{Catalog: catalog, MaxAttempts: maxAttempts}
}

// AttemptWalk runs a single walk of length tiles from cell (0,0) heading start.
// Returns ErrDeadEnd as soon as a step has no collision-free candidate.
func (w *Walker) AttemptWalk(rng *rand.Rand, length int, start Direction) (Track, error) {
	if length < 1 {
		return Track{}, ErrInvalidLength
	}

	pos := grid.Point{}
	first, dir := w.Catalog.startTile(start)
	t := Track{
		Tiles:     make([]PlacedTile, 0, length),
		Occupancy: grid.NewOccupancy(pos),
		Rect:      grid.RectAt(pos),
	}
	t.Tiles = append(t.Tiles, PlacedTile{Tile: first, Pos: pos, Entry: first.Exit(dir), Exit: dir})

	candidates := make([]candidate, 0, w.Catalog.Len())
	for i := 1; i < length; i++ {
		candidates = w.candidates(candidates[:0], t.Occupancy, pos, dir)
		if len(candidates) == 0 {
			return Track{}, ErrDeadEnd
		}

		c := candidates[rng.IntN(len(candidates))]
		t.Occupancy.Claim(c.hitbox)
		for _, p := range c.hitbox {
			t.Rect.Extend(p)
		}
		t.Tiles = append(t.Tiles, PlacedTile{Tile: c.tile, Pos: c.anchor, Entry: Opposite(dir), Exit: c.exit})

		dir = c.exit
		pos = c.next
	}
	return t, nil
}

// candidates appends every tile that enters through Opposite(dir) without collision
func (w *Walker) candidates(dst []candidate, occ *grid.Occupancy, pos grid.Point, dir Direction) []candidate {
	entry := Opposite(dir)
	for _, tile := range w.Catalog.tiles {
		if !tile.Connects(entry) {
			continue
		}
		anchor, next, hitbox := Placement(tile, pos, dir)
		if occ.HasAny(hitbox) {
			continue
		}
		dst = append(dst, candidate{
			tile:   tile,
			anchor: anchor,
			next:   next,
			exit:   tile.Exit(entry),
			hitbox: hitbox,
		})
	}
	return dst
}

// Generate repeats AttemptWalk on the same stream until one succeeds or MaxAttempts is reached.
// The start heading is the first side of catalog entry 0.
func (w *Walker) Generate(rng *rand.Rand, length int) (Track, error) {
	if length < 1 {
		return Track{}, ErrInvalidLength
	}
	start := w.Catalog.At(0).SideA
	for attempt := 1; attempt <= w.MaxAttempts; attempt++ {
		t, err := w.AttemptWalk(rng, length, start)
		if errors.Is(err, ErrDeadEnd) {
			continue
		}
		if err != nil {
			return Track{}, err
		}
		t.Attempts = attempt
		return t, nil
	}
	return Track{}, &UngenerableError{Length: length, Attempts: w.MaxAttempts}
}

// NewRand returns the PCG stream used for a seed
func NewRand(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s))
}

// Generate builds a track of length tiles from seed with the default catalog
func Generate(length int, seed int64) (Track, error) {
	return NewWalker(nil, parameter.WalkMaxAttempts).Generate(NewRand(seed), length)
}
