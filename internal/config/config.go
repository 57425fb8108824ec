// Package config loads the drop laser settings file and keeps a live snapshot
// of it for the frame loop.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"droplaser/internal/components"
	"droplaser/internal/laser"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownKey   = errors.New("config: unknown key name")
	ErrInvalidValue = errors.New("config: invalid value")
)

// File is the on-disk layout.
type File struct {
	General General `yaml:"general"`
	Laser   Laser   `yaml:"laser"`
}

type General struct {
	EnableLogging bool `yaml:"enable_logging"`
}

type Laser struct {
	EnableLaser      bool    `yaml:"enable_laser"`
	UseCustomColor   bool    `yaml:"use_custom_color"`
	CustomColor      string  `yaml:"custom_color"`
	StartWidth       float32 `yaml:"start_width"`
	EndWidth         float32 `yaml:"end_width"`
	MaxDistance      float32 `yaml:"max_distance"`
	LightIntensity   float32 `yaml:"light_intensity"`
	LightRange       float32 `yaml:"light_range"`
	ToggleKey        string  `yaml:"toggle_key"`
	AutoEnableOnGrab bool    `yaml:"auto_enable_on_grab"`
}

// FromConfig renders a snapshot in file form.
func FromConfig(cfg laser.Config) File {
	return File{
		General: General{EnableLogging: cfg.LoggingEnabled},
		Laser: Laser{
			EnableLaser:      cfg.EnableLaser,
			UseCustomColor:   cfg.UseCustomColor,
			CustomColor:      cfg.CustomColor.Hex(),
			StartWidth:       cfg.StartWidth,
			EndWidth:         cfg.EndWidth,
			MaxDistance:      cfg.MaxDistance,
			LightIntensity:   cfg.LightIntensity,
			LightRange:       cfg.LightRange,
			ToggleKey:        KeyName(cfg.ToggleKey),
			AutoEnableOnGrab: cfg.AutoEnableOnGrab,
		},
	}
}

// Default is the file written on first run.
func Default() File {
	return FromConfig(laser.DefaultConfig())
}

// Snapshot validates f and converts it to the laser's view of the settings.
func (f File) Snapshot() (laser.Config, error) {
	color, err := components.ParseHexColor(f.Laser.CustomColor)
	if err != nil {
		return laser.Config{}, fmt.Errorf("custom_color: %w", err)
	}
	key, err := ParseKey(f.Laser.ToggleKey)
	if err != nil {
		return laser.Config{}, fmt.Errorf("toggle_key: %w", err)
	}

	checks := []struct {
		name string
		v    float32
		ok   bool
	}{
		{"start_width", f.Laser.StartWidth, f.Laser.StartWidth >= 0},
		{"end_width", f.Laser.EndWidth, f.Laser.EndWidth >= 0},
		{"max_distance", f.Laser.MaxDistance, f.Laser.MaxDistance > 0},
		{"light_intensity", f.Laser.LightIntensity, f.Laser.LightIntensity >= 0},
		{"light_range", f.Laser.LightRange, f.Laser.LightRange >= 0},
	}
	for _, c := range checks {
		if !c.ok {
			return laser.Config{}, fmt.Errorf("%s = %g: %w", c.name, c.v, ErrInvalidValue)
		}
	}

	return laser.Config{
		LoggingEnabled:   f.General.EnableLogging,
		EnableLaser:      f.Laser.EnableLaser,
		UseCustomColor:   f.Laser.UseCustomColor,
		CustomColor:      color,
		StartWidth:       f.Laser.StartWidth,
		EndWidth:         f.Laser.EndWidth,
		MaxDistance:      f.Laser.MaxDistance,
		LightIntensity:   f.Laser.LightIntensity,
		LightRange:       f.Laser.LightRange,
		ToggleKey:        key,
		AutoEnableOnGrab: f.Laser.AutoEnableOnGrab,
	}, nil
}

// Parse decodes data over the defaults, so absent keys keep their default.
func Parse(data []byte) (laser.Config, error) {
	f := Default()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return laser.Config{}, fmt.Errorf("decode config: %w", err)
	}
	return f.Snapshot()
}

// Load reads the config at path. A missing file is created with the defaults.
func Load(path string) (laser.Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := laser.DefaultConfig()
		if err := Save(path, cfg); err != nil {
			return laser.Config{}, err
		}
		return cfg, nil
	}
	if err != nil {
		return laser.Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return laser.Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories.
func Save(path string, cfg laser.Config) error {
	data, err := yaml.Marshal(FromConfig(cfg))
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
