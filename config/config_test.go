package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/tile-track/decor"
	"github.com/lixenwraith/tile-track/parameter"
	"github.com/lixenwraith/tile-track/terrain"
	"github.com/lixenwraith/tile-track/track"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "track.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Length != parameter.DefaultTrackLength || cfg.Seed != parameter.DefaultSeed {
		t.Errorf("defaults length=%d seed=%d", cfg.Length, cfg.Seed)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") differs from Default()")
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, `
seed: 7
length: 12
decor:
  count: 5
  mode: point
terrain:
  high_from: 0.6
audio:
  enabled: false
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Seed != 7 || cfg.Length != 12 {
		t.Errorf("seed=%d length=%d, want 7 12", cfg.Seed, cfg.Length)
	}
	if cfg.Decor.Count != 5 || cfg.Decor.Mode != "point" {
		t.Errorf("decor = %+v", cfg.Decor)
	}
	if cfg.Terrain.HighFrom != 0.6 {
		t.Errorf("high_from = %g, want 0.6", cfg.Terrain.HighFrom)
	}
	if cfg.Audio.Enabled {
		t.Error("audio should be disabled")
	}

	// Untouched keys keep defaults
	if cfg.Playfield.Width != parameter.PlayfieldWidth {
		t.Errorf("playfield width = %d, want default %d", cfg.Playfield.Width, parameter.PlayfieldWidth)
	}
	if cfg.Decor.ScaleMax != parameter.DecorScaleMax {
		t.Errorf("scale_max = %g, want default", cfg.Decor.ScaleMax)
	}
	if cfg.Audio.MasterVolume != 0.5 {
		t.Errorf("master_volume = %g, want default 0.5", cfg.Audio.MasterVolume)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want ErrNotExist", err)
	}
	if _, err := Load(writeFile(t, "seed: [1, 2\n")); err == nil {
		t.Error("malformed yaml accepted")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvSeed, "99")
	t.Setenv(EnvLength, "15")
	t.Setenv(EnvDecorCount, "0")
	t.Setenv(EnvDecorMode, "point")
	t.Setenv("TRACK_AUDIO_ENABLED", "false")

	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}
	if cfg.Seed != 99 || cfg.Length != 15 || cfg.Decor.Count != 0 || cfg.Decor.Mode != "point" {
		t.Errorf("env not applied: %+v", cfg)
	}
	if cfg.Audio.Enabled {
		t.Error("TRACK_AUDIO_ENABLED=false not applied")
	}
}

func TestApplyEnvMalformed(t *testing.T) {
	for _, key := range []string{EnvSeed, EnvLength, EnvDecorCount} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, "many")
			cfg := Default()
			if err := cfg.ApplyEnv(); err == nil {
				t.Errorf("%s=many accepted", key)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		target error
	}{
		{"zero length", func(c *Config) { c.Length = 0 }, track.ErrInvalidLength},
		{"negative decor", func(c *Config) { c.Decor.Count = -1 }, nil},
		{"empty playfield", func(c *Config) { c.Playfield.Width = 0 }, nil},
		{"thresholds inverted", func(c *Config) { c.Terrain.LowBelow = 0.5; c.Terrain.HighFrom = 0.1 }, terrain.ErrThresholds},
		{"no attempts", func(c *Config) { c.MaxAttempts = 0 }, nil},
		{"unknown mode", func(c *Config) { c.Decor.Mode = "scatter" }, nil},
		{"bad scale", func(c *Config) { c.Decor.ScaleMin = 0 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate accepted invalid config")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("error %v does not wrap %v", err, tt.target)
			}
		})
	}
}

func TestToGenerator(t *testing.T) {
	cfg := Default()
	cfg.Seed = 3
	cfg.Length = 9
	cfg.Decor.Mode = "point"
	cfg.Decor.Count = 4
	cfg.Playfield = Playfield{Width: 30, Height: 20}

	g, err := cfg.ToGenerator()
	if err != nil {
		t.Fatalf("ToGenerator failed: %v", err)
	}
	if g.Seed != 3 || g.Length != 9 || g.DecorCount != 4 {
		t.Errorf("generator config = %+v", g)
	}
	if g.Width != 30 || g.Height != 20 {
		t.Errorf("playfield = %dx%d", g.Width, g.Height)
	}
	if g.Decor.Mode != decor.ModePoint {
		t.Errorf("mode = %v, want point", g.Decor.Mode)
	}
	if g.Terrain != terrain.DefaultConfig() {
		t.Errorf("terrain = %+v, want defaults", g.Terrain)
	}
}
