package outline

import (
	"math"

	"github.com/lixenwraith/tile-track/grid"
)

// Rasterize maps line from a width x height pixel playfield onto a cols x rows
// cell grid and returns every cell a segment passes through
func Rasterize(line []Vec, width, height float64, cols, rows int) *grid.Occupancy {
	occ := grid.NewOccupancy()
	if cols <= 0 || rows <= 0 || width <= 0 || height <= 0 {
		return occ
	}
	sx, sy := float64(cols)/width, float64(rows)/height

	toCell := func(v Vec) (grid.Point, bool) {
		p := grid.Point{X: int(math.Floor(v.X * sx)), Y: int(math.Floor(v.Y * sy))}
		return p, p.X >= 0 && p.X < cols && p.Y >= 0 && p.Y < rows
	}

	for i := range line {
		a := line[i]
		b := a
		if i+1 < len(line) {
			b = line[i+1]
		}
		d := b.Sub(a)
		steps := int(math.Ceil(math.Max(math.Abs(d.X*sx), math.Abs(d.Y*sy)))) * 2
		for s := 0; s <= steps; s++ {
			t := 0.0
			if steps > 0 {
				t = float64(s) / float64(steps)
			}
			if p, ok := toCell(a.Lerp(b, t)); ok && !occ.Has(p) {
				occ.Claim([]grid.Point{p})
			}
		}
	}
	return occ
}
