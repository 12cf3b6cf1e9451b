// Package decor scatters decor items onto playfield cells not claimed by the track.
package decor

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/tile-track/grid"
	"github.com/lixenwraith/tile-track/parameter"
)

// Mode selects the exclusion policy
type Mode uint8

const (
	// ModeFootprint rejects samples whose scaled square footprint touches the track
	ModeFootprint Mode = iota
	// ModePoint places one-cell items on free cells not used earlier in the batch
	ModePoint
)

func (m Mode) String() string {
	if m == ModePoint {
		return "point"
	}
	return "footprint"
}

// ParseMode maps "point" or "footprint" to a Mode
func ParseMode(s string) (Mode, error) {
	switch s {
	case "point":
		return ModePoint, nil
	case "footprint", "":
		return ModeFootprint, nil
	}
	return ModeFootprint, fmt.Errorf("decor: unknown mode %q", s)
}

// ErrPlacementExhausted means an item could not be placed within its resample budget
var ErrPlacementExhausted = errors.New("decor: placement exhausted")

// PlacementExhaustedError reports a partial batch; the placed items are still returned
type PlacementExhaustedError struct {
	Requested int
	Placed    int
	Samples   int
}

func (e *PlacementExhaustedError) Error() string {
	return fmt.Sprintf("decor: placed %d of %d items, gave up after %d samples", e.Placed, e.Requested, e.Samples)
}

func (e *PlacementExhaustedError) Unwrap() error { return ErrPlacementExhausted }

// Item is a placed decor object
type Item struct {
	Pos       grid.Point // top-left footprint cell
	Shape     Shape
	Size      float64 // scaled multiplier, fractional
	Footprint int     // footprint edge in cells
	Rotation  float64 // degrees, visual only
	Tier      int
}

// Cells returns the footprint cells of the item
func (it Item) Cells() []grid.Point {
	n := it.Footprint - 1
	return grid.Rect{Min: it.Pos, Max: it.Pos.Add(grid.Point{X: n, Y: n})}.Cells()
}

// Config controls a placer
type Config struct {
	Mode         Mode
	Width        int
	Height       int
	ScaleMin     float64
	ScaleMax     float64
	MaxResamples int // samples allowed per item
	Catalog      []Shape
}

// DefaultConfig returns footprint mode over the default playfield and shapes
func DefaultConfig() Config {
	return Config{
		Mode:         ModeFootprint,
		Width:        parameter.PlayfieldWidth,
		Height:       parameter.PlayfieldHeight,
		ScaleMin:     parameter.DecorScaleMin,
		ScaleMax:     parameter.DecorScaleMax,
		MaxResamples: parameter.DecorMaxResamples,
		Catalog:      DefaultCatalog(),
	}
}

// Validate checks the config domain
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("decor: playfield must be positive, got %dx%d", c.Width, c.Height)
	case len(c.Catalog) == 0:
		return errors.New("decor: empty shape catalog")
	case c.ScaleMin <= 0 || c.ScaleMax < c.ScaleMin:
		return fmt.Errorf("decor: invalid scale range [%g, %g)", c.ScaleMin, c.ScaleMax)
	case c.MaxResamples < 1:
		return fmt.Errorf("decor: max resamples must be at least 1, got %d", c.MaxResamples)
	}
	return nil
}

// Placer scatters decor with an explicit random stream
type Placer struct {
	cfg Config
	rng *rand.Rand
}

// NewPlacer binds cfg to rng
func NewPlacer(cfg Config, rng *rand.Rand) *Placer {
	if cfg.MaxResamples < 1 {
		cfg.MaxResamples = parameter.DecorMaxResamples
	}
	if len(cfg.Catalog) == 0 {
		cfg.Catalog = DefaultCatalog()
	}
	return &Placer{cfg: cfg, rng: rng}
}

// Place returns up to count items avoiding occ, stable-sorted by tier.
// On exhaustion the items placed so far are returned with a *PlacementExhaustedError.
func (p *Placer) Place(occ *grid.Occupancy, count int) ([]Item, error) {
	if count <= 0 {
		return []Item{}, nil
	}
	if occ == nil {
		occ = grid.NewOccupancy()
	}

	var (
		items []Item
		err   error
	)
	if p.cfg.Mode == ModePoint {
		items, err = p.placePoints(occ, count)
	} else {
		items, err = p.placeFootprints(occ, count)
	}
	sortByTier(items)
	return items, err
}

// sortByTier orders items back to front; equal tiers keep insertion order
func sortByTier(items []Item) {
	slices.SortStableFunc(items, func(a, b Item) int {
		return a.Tier - b.Tier
	})
}

func (p *Placer) placePoints(occ *grid.Occupancy, count int) ([]Item, error) {
	items := make([]Item, 0, count)
	used := mapset.New[grid.Point]()
	samples := 0

	for len(items) < count {
		shape := p.cfg.Catalog[p.rng.IntN(len(p.cfg.Catalog))]
		placed := false
		for try := 0; try < p.cfg.MaxResamples; try++ {
			samples++
			c := grid.Point{X: p.rng.IntN(p.cfg.Width), Y: p.rng.IntN(p.cfg.Height)}
			if occ.Has(c) || used.Has(c) {
				continue
			}
			used.Put(c)
			items = append(items, Item{
				Pos:       c,
				Shape:     shape,
				Size:      1,
				Footprint: 1,
				Rotation:  p.rng.Float64() * 360,
				Tier:      shape.Tier,
			})
			placed = true
			break
		}
		if !placed {
			return items, &PlacementExhaustedError{Requested: count, Placed: len(items), Samples: samples}
		}
	}
	return items, nil
}

func (p *Placer) placeFootprints(occ *grid.Occupancy, count int) ([]Item, error) {
	items := make([]Item, 0, count)
	samples := 0

	for len(items) < count {
		shape := p.cfg.Catalog[p.rng.IntN(len(p.cfg.Catalog))]
		scale := p.cfg.ScaleMin + p.rng.Float64()*(p.cfg.ScaleMax-p.cfg.ScaleMin)
		size := float64(shape.Mult) * scale
		edge := int(math.Ceil(size))
		if edge < 1 {
			edge = 1
		}

		placed := false
		// footprints wider than the field can never fit; the budget still bounds the attempt
		maxX, maxY := p.cfg.Width-edge, p.cfg.Height-edge
		for try := 0; try < p.cfg.MaxResamples; try++ {
			samples++
			if maxX < 0 || maxY < 0 {
				continue
			}
			it := Item{
				Pos:       grid.Point{X: p.rng.IntN(maxX + 1), Y: p.rng.IntN(maxY + 1)},
				Shape:     shape,
				Size:      size,
				Footprint: edge,
				Tier:      shape.Tier,
			}
			if occ.HasAny(it.Cells()) {
				continue
			}
			it.Rotation = p.rng.Float64() * 360
			items = append(items, it)
			placed = true
			break
		}
		if !placed {
			return items, &PlacementExhaustedError{Requested: count, Placed: len(items), Samples: samples}
		}
	}
	return items, nil
}

// Place scatters count items around occ with a fresh stream for seed
func Place(occ *grid.Occupancy, count int, seed int64, cfg Config) ([]Item, error) {
	s := uint64(seed)
	return NewPlacer(cfg, rand.New(rand.NewPCG(s, s))).Place(occ, count)
}
