// Package terrain classifies every playfield cell into a height band from Perlin noise.
// The field is independent of the track and covers the whole grid.
package terrain

import (
	"errors"
	"fmt"

	"github.com/aquilax/go-perlin"

	"github.com/lixenwraith/tile-track/grid"
	"github.com/lixenwraith/tile-track/parameter"
)

// Kind is a terrain band, ordered by noise value
type Kind uint8

const (
	Low Kind = iota
	Mid
	High
)

func (k Kind) String() string {
	switch k {
	case Low:
		return "low"
	case Mid:
		return "mid"
	case High:
		return "high"
	}
	return "invalid"
}

// ErrThresholds is returned when band thresholds are not increasing
var ErrThresholds = errors.New("terrain: low threshold must be below high threshold")

// Config holds the noise shape and band thresholds
type Config struct {
	Octaves   int32
	Alpha     float64
	Beta      float64
	Frequency float64
	LowBelow  float64 // samples below are Low
	HighFrom  float64 // samples at or above are High
}

// DefaultConfig returns the stock noise configuration
func DefaultConfig() Config {
	return Config{
		Octaves:   parameter.TerrainOctaves,
		Alpha:     parameter.TerrainAlpha,
		Beta:      parameter.TerrainBeta,
		Frequency: parameter.TerrainFrequency,
		LowBelow:  parameter.TerrainLowBelow,
		HighFrom:  parameter.TerrainHighFrom,
	}
}

// Validate checks threshold ordering and octave count
func (c Config) Validate() error {
	if c.LowBelow >= c.HighFrom {
		return fmt.Errorf("%w (%g >= %g)", ErrThresholds, c.LowBelow, c.HighFrom)
	}
	if c.Octaves < 1 {
		return fmt.Errorf("terrain: octaves must be at least 1, got %d", c.Octaves)
	}
	return nil
}

// Classify maps a noise sample to its band
func (c Config) Classify(v float64) Kind {
	switch {
	case v < c.LowBelow:
		return Low
	case v < c.HighFrom:
		return Mid
	default:
		return High
	}
}

// Cell is one classified playfield cell
type Cell struct {
	Pos  grid.Point
	Kind Kind
}

// Field holds one cell per playfield position in row-major order
type Field struct {
	Width, Height int
	Cells         []Cell
}

// At returns the cell at p; ok is false outside the field
func (f *Field) At(p grid.Point) (Cell, bool) {
	if p.X < 0 || p.Y < 0 || p.X >= f.Width || p.Y >= f.Height {
		return Cell{}, false
	}
	return f.Cells[p.Y*f.Width+p.X], true
}

// Counts returns the number of cells in each band
func (f *Field) Counts() [3]int {
	var n [3]int
	for _, c := range f.Cells {
		n[c.Kind]++
	}
	return n
}

// Generate samples the noise at coordinates normalized by height and bands every cell.
// The same seed and dimensions always produce the same field.
func Generate(cfg Config, width, height int, seed int64) *Field {
	f := &Field{Width: width, Height: height}
	if width <= 0 || height <= 0 {
		return f
	}
	noise := perlin.NewPerlin(cfg.Alpha, cfg.Beta, cfg.Octaves, seed)
	norm := float64(height)

	f.Cells = make([]Cell, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := noise.Noise2D(float64(x)/norm*cfg.Frequency, float64(y)/norm*cfg.Frequency)
			f.Cells = append(f.Cells, Cell{Pos: grid.Point{X: x, Y: y}, Kind: cfg.Classify(v)})
		}
	}
	return f
}
