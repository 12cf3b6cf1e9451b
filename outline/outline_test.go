package outline

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/lixenwraith/tile-track/grid"
)

func near(a, b Vec) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestConvexHullSquare(t *testing.T) {
	pts := []Vec{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {2, 2}, {1, 3}, {4, 2}}
	hull := ConvexHull(pts)

	if len(hull) != 5 {
		t.Fatalf("hull = %v, want 4 corners closed", hull)
	}
	if hull[0] != hull[len(hull)-1] {
		t.Errorf("hull not closed: %v", hull)
	}
	for _, corner := range []Vec{{0, 0}, {4, 0}, {4, 4}, {0, 4}} {
		if !slices.Contains(hull, corner) {
			t.Errorf("corner %v missing from hull", corner)
		}
	}
	for _, inner := range []Vec{{2, 2}, {1, 3}, {4, 2}} {
		if slices.Contains(hull, inner) {
			t.Errorf("non-vertex %v kept in hull", inner)
		}
	}
}

func TestConvexHullCollinear(t *testing.T) {
	hull := ConvexHull([]Vec{{0, 0}, {1, 1}, {2, 2}, {3, 3}})
	if len(hull) >= 4 {
		t.Errorf("collinear hull = %v, want degenerate", hull)
	}
}

func TestGenerateHullIsConvex(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		o, err := Generate(DefaultConfig(), seed)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		h := o.Hull
		sign := 0.0
		for i := 0; i+2 < len(h)+1; i++ {
			a, b, c := h[i], h[(i+1)%(len(h)-1)], h[(i+2)%(len(h)-1)]
			z := cross(a, b, c)
			if z == 0 {
				t.Fatalf("seed %d: collinear hull vertices at %d", seed, i)
			}
			if sign == 0 {
				sign = z
			} else if (z > 0) != (sign > 0) {
				t.Fatalf("seed %d: hull turns both ways at %d", seed, i)
			}
		}
	}
}

func TestGenerateSamplesInsidePadding(t *testing.T) {
	cfg := DefaultConfig()
	o, err := Generate(cfg, 42)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(o.Samples) != cfg.Points {
		t.Fatalf("got %d samples, want %d", len(o.Samples), cfg.Points)
	}
	for _, p := range o.Samples {
		if p.X < cfg.Padding || p.X >= cfg.Width-cfg.Padding || p.Y < cfg.Padding || p.Y >= cfg.Height-cfg.Padding {
			t.Errorf("sample %v outside padded playfield", p)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(DefaultConfig(), 7)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, _ := Generate(DefaultConfig(), 7)
	if !slices.Equal(a.Line, b.Line) {
		t.Error("same seed produced different lines")
	}
	c, _ := Generate(DefaultConfig(), 8)
	if slices.Equal(a.Line, c.Line) {
		t.Error("different seeds produced identical lines")
	}
}

func TestGenerateStageSizes(t *testing.T) {
	cfg := DefaultConfig()
	o, err := Generate(cfg, 42)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	edges := len(o.Hull) - 1
	if want := edges*4 + 1; len(o.Bulged) != want {
		t.Errorf("bulged has %d points, want %d", len(o.Bulged), want)
	}
	n := len(o.Bulged)
	for range cfg.Refinements {
		n = 2 * (n - 1)
	}
	if len(o.Line) != n {
		t.Errorf("line has %d points, want %d", len(o.Line), n)
	}
}

func TestBulge(t *testing.T) {
	got := Bulge([]Vec{{0, 0}, {4, 0}, {8, 0}}, 1)
	h := math.Cos(0.25 * math.Pi)
	want := []Vec{
		{0, 0}, {1, h}, {2, 1}, {3, h},
		{4, 0}, {5, -h}, {6, -1}, {7, -h},
		{8, 0},
	}
	if len(got) != len(want) {
		t.Fatalf("Bulge = %v, want %d points", got, len(want))
	}
	for i := range want {
		if !near(got[i], want[i]) {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestChaikin(t *testing.T) {
	got := Chaikin([]Vec{{0, 0}, {4, 0}, {4, 4}}, 1)
	want := []Vec{{1, 0}, {3, 0}, {4, 1}, {4, 3}}
	if len(got) != len(want) {
		t.Fatalf("Chaikin = %v", got)
	}
	for i := range want {
		if !near(got[i], want[i]) {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}

	if zero := Chaikin([]Vec{{1, 2}}, 3); len(zero) != 1 {
		t.Errorf("single point changed: %v", zero)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"too few points", func(c *Config) { c.Points = 2 }},
		{"padding fills width", func(c *Config) { c.Padding = c.Width / 2 }},
		{"negative amplitude", func(c *Config) { c.Amplitude = -1 }},
		{"negative refinements", func(c *Config) { c.Refinements = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if _, err := Generate(cfg, 1); err == nil {
				t.Error("invalid config accepted")
			} else if errors.Is(err, ErrDegenerateHull) {
				t.Errorf("got hull error %v, want validation error", err)
			}
		})
	}
}

func TestRasterize(t *testing.T) {
	occ := Rasterize([]Vec{{0, 55}, {100, 55}}, 100, 100, 10, 10)
	if occ.Len() != 10 {
		t.Fatalf("rasterized %d cells, want 10: %v", occ.Len(), occ.Cells())
	}
	for x := 0; x < 10; x++ {
		if !occ.Has(grid.Point{X: x, Y: 5}) {
			t.Errorf("cell (%d,5) not marked", x)
		}
	}

	if empty := Rasterize([]Vec{{0, 0}}, 100, 100, 0, 10); empty.Len() != 0 {
		t.Error("zero-width grid marked cells")
	}
}

func TestRasterizeOutlineStaysOnGrid(t *testing.T) {
	cfg := DefaultConfig()
	o, err := Generate(cfg, 42)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	occ := Rasterize(o.Line, cfg.Width, cfg.Height, 60, 40)
	if occ.Len() == 0 {
		t.Fatal("outline rasterized to nothing")
	}
	for _, p := range occ.Cells() {
		if p.X < 0 || p.X >= 60 || p.Y < 0 || p.Y >= 40 {
			t.Errorf("cell %v off grid", p)
		}
	}
}
