// Package config loads the game configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pmx-16/arcane-conquest/internal/sim"
)

// DefaultPath is where the game looks for its configuration.
const DefaultPath = "arcane.yaml"

type Window struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TileSize  int    `yaml:"tile_size"`  // screen pixels per map cell
	FOVRadius int    `yaml:"fov_radius"` // cells; 0 disables the field of view
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Stats struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type Audio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0..1
}

type Assets struct {
	Dir string `yaml:"dir"`
}

// Config is the whole configuration file. Fields absent from the file keep
// their defaults.
type Config struct {
	Seed   int64      `yaml:"seed"` // 0 picks a time-based seed
	Window Window     `yaml:"window"`
	Log    Log        `yaml:"log"`
	Stats  Stats      `yaml:"stats"`
	Audio  Audio      `yaml:"audio"`
	Assets Assets     `yaml:"assets"`
	Sim    sim.Tuning `yaml:"sim"`
}

// Default returns the shipped configuration.
func Default() Config {
	return Config{
		Window: Window{Width: 1280, Height: 720, Title: "Arcane Conquest", TileSize: 16, FOVRadius: 45},
		Log:    Log{Level: "info", Format: "text"},
		Stats:  Stats{Enabled: true, Path: "gamedata.csv"},
		Audio:  Audio{Enabled: true, Volume: 0.5},
		Assets: Assets{Dir: "assets"},
		Sim:    sim.DefaultTuning(),
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("tile_size %d must be positive", c.Window.TileSize))
	}
	if c.Sim.MapWidth <= 0 || c.Sim.MapHeight <= 0 {
		errs = append(errs, fmt.Errorf("map size %dx%d must be positive", c.Sim.MapWidth, c.Sim.MapHeight))
	}
	if c.Sim.MinCooldown <= 0 || c.Sim.BaseCooldown < c.Sim.MinCooldown {
		errs = append(errs, fmt.Errorf("base_cooldown %.2f must be at least min_cooldown %.2f > 0",
			c.Sim.BaseCooldown, c.Sim.MinCooldown))
	}
	if c.Sim.PickupRadius <= c.Sim.MeleeLockRadius {
		errs = append(errs, fmt.Errorf("pickup_radius %.2f must exceed melee_lock_radius %.2f",
			c.Sim.PickupRadius, c.Sim.MeleeLockRadius))
	}
	if c.Sim.ExplosionRadius <= c.Sim.MeleeLockRadius {
		errs = append(errs, fmt.Errorf("explosion_radius %.2f must exceed melee_lock_radius %.2f",
			c.Sim.ExplosionRadius, c.Sim.MeleeLockRadius))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio volume %.2f must be within [0,1]", c.Audio.Volume))
	}
	if c.Stats.Enabled && c.Stats.Path == "" {
		errs = append(errs, errors.New("stats path is empty"))
	}
	return errors.Join(errs...)
}

// ViewCells is the camera view size in map cells.
func (c Config) ViewCells() (int, int) {
	return c.Window.Width / c.Window.TileSize, c.Window.Height / c.Window.TileSize
}
