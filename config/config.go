// Package config loads generation settings from YAML and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/tile-track/audio"
	"github.com/lixenwraith/tile-track/decor"
	"github.com/lixenwraith/tile-track/generator"
	"github.com/lixenwraith/tile-track/parameter"
	"github.com/lixenwraith/tile-track/terrain"
)

const (
	EnvSeed       = "TRACK_SEED"
	EnvLength     = "TRACK_LENGTH"
	EnvDecorCount = "TRACK_DECOR_COUNT"
	EnvDecorMode  = "TRACK_DECOR_MODE"
)

type Config struct {
	Seed        int64 `yaml:"seed"`
	Length      int   `yaml:"length"`
	MaxAttempts int   `yaml:"max_attempts"`

	Playfield Playfield         `yaml:"playfield"`
	Terrain   Terrain           `yaml:"terrain"`
	Decor     Decor             `yaml:"decor"`
	Audio     audio.AudioConfig `yaml:"audio"`
}

type Playfield struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Terrain struct {
	Octaves   int32   `yaml:"octaves"`
	Alpha     float64 `yaml:"alpha"`
	Beta      float64 `yaml:"beta"`
	Frequency float64 `yaml:"frequency"`
	LowBelow  float64 `yaml:"low_below"`
	HighFrom  float64 `yaml:"high_from"`
}

type Decor struct {
	Count        int     `yaml:"count"`
	Mode         string  `yaml:"mode"` // footprint | point
	ScaleMin     float64 `yaml:"scale_min"`
	ScaleMax     float64 `yaml:"scale_max"`
	MaxResamples int     `yaml:"max_resamples"`
}

// Default returns the settings used when no file or environment is given
func Default() Config {
	tc := terrain.DefaultConfig()
	dc := decor.DefaultConfig()
	return Config{
		Seed:        parameter.DefaultSeed,
		Length:      parameter.DefaultTrackLength,
		MaxAttempts: parameter.WalkMaxAttempts,
		Playfield: Playfield{
			Width:  parameter.PlayfieldWidth,
			Height: parameter.PlayfieldHeight,
		},
		Terrain: Terrain{
			Octaves:   tc.Octaves,
			Alpha:     tc.Alpha,
			Beta:      tc.Beta,
			Frequency: tc.Frequency,
			LowBelow:  tc.LowBelow,
			HighFrom:  tc.HighFrom,
		},
		Decor: Decor{
			Count:        parameter.DefaultDecorCount,
			Mode:         dc.Mode.String(),
			ScaleMin:     dc.ScaleMin,
			ScaleMax:     dc.ScaleMax,
			MaxResamples: dc.MaxResamples,
		},
		Audio: *audio.DefaultAudioConfig(),
	}
}

// Load reads path over the defaults; keys missing from the file keep their default.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides c from TRACK_* environment variables
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvLength); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLength, err)
		}
		c.Length = n
	}
	if v := os.Getenv(EnvDecorCount); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDecorCount, err)
		}
		c.Decor.Count = n
	}
	if v := os.Getenv(EnvDecorMode); v != "" {
		c.Decor.Mode = v
	}
	audio.ApplyEnv(&c.Audio)
	return nil
}

// Validate checks every field against the generator's input domain
func (c Config) Validate() error {
	g, err := c.ToGenerator()
	if err != nil {
		return err
	}
	return g.Validate()
}

// ToGenerator maps the settings to a pipeline request
func (c Config) ToGenerator() (generator.Config, error) {
	mode, err := decor.ParseMode(c.Decor.Mode)
	if err != nil {
		return generator.Config{}, fmt.Errorf("config: %w", err)
	}

	g := generator.DefaultConfig()
	g.Seed = c.Seed
	g.Length = c.Length
	g.MaxAttempts = c.MaxAttempts
	g.Width = c.Playfield.Width
	g.Height = c.Playfield.Height
	g.DecorCount = c.Decor.Count

	g.Terrain = terrain.Config{
		Octaves:   c.Terrain.Octaves,
		Alpha:     c.Terrain.Alpha,
		Beta:      c.Terrain.Beta,
		Frequency: c.Terrain.Frequency,
		LowBelow:  c.Terrain.LowBelow,
		HighFrom:  c.Terrain.HighFrom,
	}

	g.Decor.Mode = mode
	g.Decor.ScaleMin = c.Decor.ScaleMin
	g.Decor.ScaleMax = c.Decor.ScaleMax
	g.Decor.MaxResamples = c.Decor.MaxResamples
	return g, nil
}
