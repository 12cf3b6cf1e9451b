package grid

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Occupancy is the set of cells claimed by placed footprints.
// A cell is claimed at most once; Claim rejects any batch that touches a claimed cell.
type Occupancy struct {
	cells mapset.Set[Point]
}

// NewOccupancy returns an occupancy holding the given cells
func NewOccupancy(cells ...Point) *Occupancy {
	o := &Occupancy{cells: mapset.New[Point]()}
	for _, c := range cells {
		o.cells.Put(c)
	}
	return o
}

// Has reports whether p is claimed
func (o *Occupancy) Has(p Point) bool {
	return o.cells.Has(p)
}

// HasAny reports whether any of cells is claimed
func (o *Occupancy) HasAny(cells []Point) bool {
	for _, c := range cells {
		if o.cells.Has(c) {
			return true
		}
	}
	return false
}

// Claim inserts all cells if none is already claimed.
// Returns false and leaves the set untouched on collision, including duplicates within cells.
func (o *Occupancy) Claim(cells []Point) bool {
	if o.HasAny(cells) {
		return false
	}
	for i, c := range cells {
		if slices.Contains(cells[:i], c) {
			return false
		}
	}
	for _, c := range cells {
		o.cells.Put(c)
	}
	return true
}

// Len returns the number of claimed cells
func (o *Occupancy) Len() int {
	return o.cells.Size()
}

// Cells returns claimed cells in row-major order
func (o *Occupancy) Cells() []Point {
	out := make([]Point, 0, o.cells.Size())
	o.cells.Each(func(p Point) {
		out = append(out, p)
	})
	slices.SortFunc(out, func(a, b Point) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return out
}

// Bounds returns the rect covering all claimed cells; ok is false when empty
func (o *Occupancy) Bounds() (r Rect, ok bool) {
	o.cells.Each(func(p Point) {
		if !ok {
			r, ok = RectAt(p), true
			return
		}
		r.Extend(p)
	})
	return r, ok
}

// Translate returns a new occupancy with every cell shifted by d
func (o *Occupancy) Translate(d Point) *Occupancy {
	out := NewOccupancy()
	o.cells.Each(func(p Point) {
		out.cells.Put(p.Add(d))
	})
	return out
}

// Clone returns an independent copy
func (o *Occupancy) Clone() *Occupancy {
	return o.Translate(Point{})
}
