// Package config loads ritzel settings from TOML files.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/ritzel/internal/gear"
)

const (
	appName        = "ritzel"
	configFileName = "config.toml"
	localFileName  = "ritzel.toml"
)

// ErrInvalidConfig is returned for settings that cannot be defaulted.
var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	// Initial gear values
	Defaults DefaultsConfig `koanf:"defaults"`

	// Per-field step and bounds
	Teeth TeethConfig `koanf:"teeth"`
	Ratio RatioConfig `koanf:"ratio"`

	Input InputConfig `koanf:"input"`
	Log   LogConfig   `koanf:"log"`
}

// DefaultsConfig holds the values shown at startup.
type DefaultsConfig struct {
	LeftTeeth  int     `koanf:"left_teeth"`  // default: 10
	RightTeeth int     `koanf:"right_teeth"` // default: 15
	GivenRatio float64 `koanf:"given_ratio"` // default: 1.5
	Locked     string  `koanf:"locked"`      // "left", "ratio" or "right" (default: "ratio")
}

// TeethConfig holds the teeth spinner settings.
type TeethConfig struct {
	Step int `koanf:"step"` // default: 1
	Min  int `koanf:"min"`  // default: 1
	Max  int `koanf:"max"`  // 0 means unbounded
}

// RatioConfig holds the ratio spinner settings.
type RatioConfig struct {
	Step      float64 `koanf:"step"`      // default: 0.1
	Min       float64 `koanf:"min"`       // default: 0.1
	Max       float64 `koanf:"max"`       // default: 100
	Precision *int    `koanf:"precision"` // decimals shown, 0-6 (default: 2)
}

// InputConfig holds mouse settings.
type InputConfig struct {
	DragRows int `koanf:"drag_rows"` // rows of drag per step (default: 2)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `koanf:"level"` // zerolog level name (default: "info")
	File  string `koanf:"file"`  // empty means the XDG state directory
}

// Load reads the user and local config files, then explicitPath if set.
// Later files override earlier ones. Missing user or local files are
// skipped; a missing explicitPath is an error.
func Load(explicitPath string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	if explicitPath != "" {
		path := expandPath(explicitPath)
		if _, err := os.Stat(path); err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	if _, err := cfg.LockedSlot(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/ritzel/config.toml
		filepath.Join(xdg.ConfigHome, appName, configFileName),
		// 2. ./ritzel.toml (pwd)
		localFileName,
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// LockedSlot returns the configured initial lock, Ratio when unset.
func (c *Config) LockedSlot() (gear.Slot, error) {
	if c.Defaults.Locked == "" {
		return gear.DefaultLocked, nil
	}
	slot, err := gear.ParseSlot(c.Defaults.Locked)
	if err != nil {
		return 0, fmt.Errorf("%w: defaults.locked: %w", ErrInvalidConfig, err)
	}
	return slot, nil
}

// InitialState builds the gear state shown at startup. Missing or invalid
// teeth and ratio values fall back to the built-in defaults.
func (c *Config) InitialState() (gear.State, error) {
	locked, err := c.LockedSlot()
	if err != nil {
		return gear.State{}, err
	}

	d := c.Defaults
	if d.LeftTeeth < gear.MinTeeth {
		d.LeftTeeth = gear.DefaultLeftTeeth
	}
	if d.RightTeeth < gear.MinTeeth {
		d.RightTeeth = gear.DefaultRightTeeth
	}
	if !(d.GivenRatio > 0) || math.IsInf(d.GivenRatio, 0) {
		d.GivenRatio = gear.DefaultGivenRatio
	}

	return gear.New(d.LeftTeeth, d.RightTeeth, d.GivenRatio, locked)
}

// GetTeethConfig returns the teeth spinner settings with defaults applied.
func (c *Config) GetTeethConfig() TeethConfig {
	cfg := c.Teeth

	if cfg.Step <= 0 {
		cfg.Step = 1
	}
	if cfg.Min < gear.MinTeeth {
		cfg.Min = gear.MinTeeth
	}
	if cfg.Max < 0 || (cfg.Max != 0 && cfg.Max <= cfg.Min) {
		cfg.Max = 0
	}

	return cfg
}

// GetRatioConfig returns the ratio spinner settings with defaults applied.
func (c *Config) GetRatioConfig() RatioConfig {
	cfg := c.Ratio

	precision := 2
	if cfg.Precision != nil && *cfg.Precision >= 0 && *cfg.Precision <= 6 {
		precision = *cfg.Precision
	}
	cfg.Precision = &precision

	// Steps finer than the displayed precision would never move the value.
	minStep := math.Pow10(-precision)
	if !(cfg.Step > 0) || math.IsInf(cfg.Step, 0) {
		cfg.Step = 0.1
	}
	cfg.Step = max(cfg.Step, minStep)

	if !(cfg.Min > 0) || math.IsInf(cfg.Min, 0) {
		cfg.Min = 0.1
	}
	if !(cfg.Max > cfg.Min) || math.IsInf(cfg.Max, 0) {
		cfg.Max = max(100, cfg.Min*10)
	}

	return cfg
}

// GetInputConfig returns the input settings with defaults applied.
func (c *Config) GetInputConfig() InputConfig {
	cfg := c.Input

	if cfg.DragRows <= 0 {
		cfg.DragRows = 2
	}

	return cfg
}

// GetLogConfig returns the log settings with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log

	if cfg.Level == "" {
		cfg.Level = "info"
	}

	return cfg
}
