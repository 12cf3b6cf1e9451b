// Package outline builds a smooth closed racing line from random points:
// convex hull, alternating side bulges per edge, then Chaikin corner cutting.
package outline

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/lixenwraith/tile-track/parameter"
)

// ErrDegenerateHull means the sampled points span no area
var ErrDegenerateHull = errors.New("outline: sampled points are collinear")

// Config shapes the outline
type Config struct {
	Points      int     // random points before the hull
	Width       float64 // playfield size in pixels
	Height      float64
	Padding     float64 // keep-out band along the playfield edges
	Amplitude   float64 // peak bulge offset along each hull edge
	Refinements int     // Chaikin passes
}

// DefaultConfig returns the stock outline
func DefaultConfig() Config {
	return Config{
		Points:      parameter.OutlinePoints,
		Width:       parameter.OutlineWidth,
		Height:      parameter.OutlineHeight,
		Padding:     parameter.OutlinePadding,
		Amplitude:   parameter.OutlineAmplitude,
		Refinements: parameter.OutlineRefinements,
	}
}

// Validate checks the config domain
func (c Config) Validate() error {
	switch {
	case c.Points < 3:
		return fmt.Errorf("outline: need at least 3 points, got %d", c.Points)
	case c.Width <= 2*c.Padding || c.Height <= 2*c.Padding:
		return fmt.Errorf("outline: padding %g leaves no room in %gx%g", c.Padding, c.Width, c.Height)
	case c.Padding < 0 || c.Amplitude < 0:
		return errors.New("outline: padding and amplitude must be non-negative")
	case c.Refinements < 0:
		return fmt.Errorf("outline: refinements must be non-negative, got %d", c.Refinements)
	}
	return nil
}

// Outline is a generated line with its intermediate stages
type Outline struct {
	Samples []Vec // raw random points
	Hull    []Vec // closed: last equals first
	Bulged  []Vec // hull with three offset points per edge
	Line    []Vec // smoothed polyline
}

// bulgeAt are the edge fractions that receive an offset point
var bulgeAt = [3]float64{0.25, 0.5, 0.75}

// Generate builds an outline from seed
func Generate(cfg Config, seed int64) (Outline, error) {
	if err := cfg.Validate(); err != nil {
		return Outline{}, err
	}
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))

	var o Outline
	o.Samples = samplePoints(cfg, rng)
	o.Hull = ConvexHull(o.Samples)
	if len(o.Hull) < 4 {
		return o, ErrDegenerateHull
	}
	o.Bulged = Bulge(o.Hull, cfg.Amplitude)
	o.Line = Chaikin(o.Bulged, cfg.Refinements)
	return o, nil
}

// samplePoints draws integer pixel positions inside the padded playfield
func samplePoints(cfg Config, rng *rand.Rand) []Vec {
	spanX := max(1, int(cfg.Width-2*cfg.Padding))
	spanY := max(1, int(cfg.Height-2*cfg.Padding))
	pts := make([]Vec, cfg.Points)
	for i := range pts {
		pts[i] = Vec{
			X: cfg.Padding + float64(rng.IntN(spanX)),
			Y: cfg.Padding + float64(rng.IntN(spanY)),
		}
	}
	return pts
}

// ConvexHull returns the hull of pts by monotone chain, starting at the
// lowest-x point, closed by repeating the first vertex. Collinear points are dropped.
func ConvexHull(pts []Vec) []Vec {
	p := slices.Clone(pts)
	slices.SortFunc(p, func(a, b Vec) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.Y, b.Y)
	})
	p = slices.Compact(p)
	if len(p) < 3 {
		return p
	}

	hull := make([]Vec, 0, 2*len(p))
	for _, v := range p {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], v) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, v)
	}
	lower := len(hull) + 1
	for i := len(p) - 2; i >= 0; i-- {
		v := p[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], v) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, v)
	}
	// last vertex is p[0] again, which closes the ring
	return hull
}

// Bulge inserts three points along every edge of poly, pushed out along the edge
// normal by amplitude*cos of their distance from the midpoint. The push side flips
// from one edge to the next.
func Bulge(poly []Vec, amplitude float64) []Vec {
	if len(poly) < 2 {
		return slices.Clone(poly)
	}
	out := make([]Vec, 0, len(poly)*4)
	side := 1.0
	for i := 0; i+1 < len(poly); i++ {
		a, b := poly[i], poly[i+1]
		out = append(out, a)

		edge := b.Sub(a)
		l := edge.Len()
		if l > 0 {
			normal := Vec{-edge.Y / l, edge.X / l}
			for _, t := range bulgeAt {
				delta := side * amplitude * math.Cos((t-0.5)*math.Pi)
				out = append(out, a.Lerp(b, t).Add(normal.Scale(delta)))
			}
		}
		side = -side
	}
	return append(out, poly[len(poly)-1])
}

// Chaikin applies n rounds of corner cutting to an open polyline.
// Each round replaces every segment with its 1/4 and 3/4 points.
func Chaikin(line []Vec, n int) []Vec {
	out := slices.Clone(line)
	for range n {
		if len(out) < 2 {
			break
		}
		next := make([]Vec, 0, 2*(len(out)-1))
		for i := 0; i+1 < len(out); i++ {
			a, b := out[i], out[i+1]
			next = append(next, a.Lerp(b, 0.25), a.Lerp(b, 0.75))
		}
		out = next
	}
	return out
}
