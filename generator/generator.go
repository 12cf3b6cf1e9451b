// Package generator runs the full pipeline: walk, center, terrain, decor.
// Stages run in order on one random stream owned by the call.
package generator

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/lixenwraith/tile-track/decor"
	"github.com/lixenwraith/tile-track/parameter"
	"github.com/lixenwraith/tile-track/terrain"
	"github.com/lixenwraith/tile-track/track"
)

// Config describes one generation request
type Config struct {
	Length      int
	Seed        int64
	DecorCount  int
	Width       int
	Height      int
	MaxAttempts int

	Catalog *track.Catalog // nil selects track.DefaultCatalog
	Terrain terrain.Config
	Decor   decor.Config // Width/Height are taken from the request

	Logger *log.Logger // nil discards
}

// DefaultConfig returns the stock request
func DefaultConfig() Config {
	return Config{
		Length:      parameter.DefaultTrackLength,
		Seed:        parameter.DefaultSeed,
		DecorCount:  parameter.DefaultDecorCount,
		Width:       parameter.PlayfieldWidth,
		Height:      parameter.PlayfieldHeight,
		MaxAttempts: parameter.WalkMaxAttempts,
		Terrain:     terrain.DefaultConfig(),
		Decor:       decor.DefaultConfig(),
	}
}

// Validate enforces the input domain
func (c Config) Validate() error {
	switch {
	case c.Length < 1:
		return fmt.Errorf("generator: %w, got %d", track.ErrInvalidLength, c.Length)
	case c.DecorCount < 0:
		return fmt.Errorf("generator: decor count must be non-negative, got %d", c.DecorCount)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("generator: playfield must be positive, got %dx%d", c.Width, c.Height)
	case c.MaxAttempts < 1:
		return fmt.Errorf("generator: max attempts must be at least 1, got %d", c.MaxAttempts)
	}
	if err := c.Terrain.Validate(); err != nil {
		return err
	}
	return c.decorConfig().Validate()
}

// WithSeed returns a copy of c with the seed shifted by delta
func (c Config) WithSeed(delta int64) Config {
	c.Seed += delta
	return c
}

// WithLength returns a copy of c with the length shifted by delta, never below 1
func (c Config) WithLength(delta int) Config {
	c.Length += delta
	if c.Length < 1 {
		c.Length = 1
	}
	return c
}

func (c Config) decorConfig() decor.Config {
	d := c.Decor
	d.Width, d.Height = c.Width, c.Height
	return d
}

func (c Config) logger() *log.Logger {
	if c.Logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return c.Logger
}

// Result holds every entity of a successful generation
type Result struct {
	Config  Config
	Track   track.Track // centered on the playfield
	Terrain *terrain.Field
	Decor   []decor.Item // sorted by tier

	// DecorWarning is a *decor.PlacementExhaustedError when fewer than DecorCount items fit
	DecorWarning error
}

// Generate builds a centered track, its terrain and decor.
// A track that cannot be walked within MaxAttempts returns track.ErrUngenerable;
// decor exhaustion is reported through Result.DecorWarning instead.
func Generate(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.logger()
	rng := track.NewRand(cfg.Seed)

	walker := track.NewWalker(cfg.Catalog, cfg.MaxAttempts)
	raw, err := walker.Generate(rng, cfg.Length)
	if err != nil {
		logger.Printf("track length %d seed %d: %v", cfg.Length, cfg.Seed, err)
		return nil, fmt.Errorf("generator: %w", err)
	}
	logger.Printf("track length %d seed %d walked in %d attempts", cfg.Length, cfg.Seed, raw.Attempts)

	t := track.Center(raw, cfg.Width, cfg.Height)
	if t.Rect.Width() > cfg.Width || t.Rect.Height() > cfg.Height {
		logger.Printf("track rect %dx%d exceeds playfield %dx%d", t.Rect.Width(), t.Rect.Height(), cfg.Width, cfg.Height)
	}

	res := &Result{
		Config:  cfg,
		Track:   t,
		Terrain: terrain.Generate(cfg.Terrain, cfg.Width, cfg.Height, cfg.Seed),
	}

	res.Decor, err = decor.NewPlacer(cfg.decorConfig(), rng).Place(t.Occupancy, cfg.DecorCount)
	if err != nil {
		if !errors.Is(err, decor.ErrPlacementExhausted) {
			return nil, fmt.Errorf("generator: %w", err)
		}
		logger.Printf("warning: %v", err)
		res.DecorWarning = err
	}
	return res, nil
}
