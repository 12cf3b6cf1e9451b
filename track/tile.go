package track

import (
	"errors"
	"fmt"
)

// Artwork ids of the base shapes
const (
	ArtStraight = 1
	ArtTurn     = 2
	ArtBigTurn  = 3
)

var (
	// ErrEmptyCatalog is returned when a catalog is built without tiles
	ErrEmptyCatalog = errors.New("track: empty tile catalog")

	// ErrInvalidTile is returned for tiles the walker cannot place
	ErrInvalidTile = errors.New("track: invalid tile")
)

// TileKind is an immutable catalog entry connecting two sides
type TileKind struct {
	Index       int // artwork id
	Orientation int // counter-clockwise quarter turns applied to the artwork
	SideA       Direction
	SideB       Direction
	Big         bool // 2x2 footprint
}

// Size returns the footprint edge length in cells
func (t TileKind) Size() int {
	if t.Big {
		return 2
	}
	return 1
}

// Connects reports whether the tile has a connector on side d
func (t TileKind) Connects(d Direction) bool {
	return t.SideA == d || t.SideB == d
}

// Exit returns the side leaving the tile when it is entered through entry.
// A tile with both connectors on one side passes straight through.
func (t TileKind) Exit(entry Direction) Direction {
	if t.SideA == t.SideB {
		return Opposite(entry)
	}
	if t.SideA == entry {
		return t.SideB
	}
	return t.SideA
}

func (t TileKind) String() string {
	return fmt.Sprintf("(%d, %d, %s:%s)", t.Index, t.Orientation, t.SideA, t.SideB)
}

// Catalog is the ordered, read-only tile set used by a walker.
// Entry 0 is the canonical start tile.
type Catalog struct {
	tiles []TileKind
}

// NewCatalog copies tiles into a catalog
func NewCatalog(tiles ...TileKind) (*Catalog, error) {
	if len(tiles) == 0 {
		return nil, ErrEmptyCatalog
	}
	for i, t := range tiles {
		if t.SideA > Left || t.SideB > Left {
			return nil, fmt.Errorf("%w: tile %d has side outside the 4-cycle", ErrInvalidTile, i)
		}
		// big tiles are turns: a 2x2 block needs one horizontal and one vertical connector
		if t.Big && (t.SideA == t.SideB || t.SideA == Opposite(t.SideB)) {
			return nil, fmt.Errorf("%w: big tile %d %s must connect perpendicular sides", ErrInvalidTile, i, t)
		}
	}
	return &Catalog{tiles: append([]TileKind(nil), tiles...)}, nil
}

// DefaultCatalog builds the 10-tile set: 2 straights, 4 small turns, 4 big turns
func DefaultCatalog() *Catalog {
	var tiles []TileKind
	tiles = append(tiles, rotations(TileKind{Index: ArtStraight, SideA: Right, SideB: Left}, 2)...)
	tiles = append(tiles, rotations(TileKind{Index: ArtTurn, SideA: Bottom, SideB: Left}, 4)...)
	tiles = append(tiles, rotations(TileKind{Index: ArtBigTurn, SideA: Bottom, SideB: Left, Big: true}, 4)...)
	return &Catalog{tiles: tiles}
}

// rotations returns the first n quarter-turn variants of base
func rotations(base TileKind, n int) []TileKind {
	out := make([]TileKind, 0, n)
	for k := 0; k < n; k++ {
		t := base
		t.Orientation = k
		t.SideA = Rotate(base.SideA, k)
		t.SideB = Rotate(base.SideB, k)
		out = append(out, t)
	}
	return out
}

// Len returns the number of tiles
func (c *Catalog) Len() int { return len(c.tiles) }

// At returns tile i
func (c *Catalog) At(i int) TileKind { return c.tiles[i] }

// Tiles returns a copy of the tile list
func (c *Catalog) Tiles() []TileKind {
	return append([]TileKind(nil), c.tiles...)
}

// Matching returns tiles with a connector on side entry, in catalog order
func (c *Catalog) Matching(entry Direction) []TileKind {
	var out []TileKind
	for _, t := range c.tiles {
		if t.Connects(entry) {
			out = append(out, t)
		}
	}
	return out
}

// startTile picks the first tile connecting to heading, falling back to entry 0
func (c *Catalog) startTile(heading Direction) (TileKind, Direction) {
	for _, t := range c.tiles {
		if t.Connects(heading) {
			return t, heading
		}
	}
	return c.tiles[0], c.tiles[0].SideA
}
