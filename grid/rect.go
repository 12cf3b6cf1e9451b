package grid

// Rect is an inclusive cell range from Min to Max
type Rect struct {
	Min, Max Point
}

// RectAt returns the 1x1 rect covering p
func RectAt(p Point) Rect {
	return Rect{Min: p, Max: p}
}

// Span returns the smallest rect containing both a and b
func Span(a, b Point) Rect {
	r := RectAt(a)
	r.Extend(b)
	return r
}

// Extend grows r to include p
func (r *Rect) Extend(p Point) {
	if p.X < r.Min.X {
		r.Min.X = p.X
	}
	if p.X > r.Max.X {
		r.Max.X = p.X
	}
	if p.Y < r.Min.Y {
		r.Min.Y = p.Y
	}
	if p.Y > r.Max.Y {
		r.Max.Y = p.Y
	}
}

// Width returns the number of columns covered
func (r Rect) Width() int { return r.Max.X - r.Min.X + 1 }

// Height returns the number of rows covered
func (r Rect) Height() int { return r.Max.Y - r.Min.Y + 1 }

// Contains reports whether p lies inside r
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Translate returns r shifted by d
func (r Rect) Translate(d Point) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// Cells lists every cell of r in row-major order
func (r Rect) Cells() []Point {
	if r.Max.X < r.Min.X || r.Max.Y < r.Min.Y {
		return nil
	}
	cells := make([]Point, 0, r.Width()*r.Height())
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		for x := r.Min.X; x <= r.Max.X; x++ {
			cells = append(cells, Point{X: x, Y: y})
		}
	}
	return cells
}
