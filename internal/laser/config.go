package laser

import (
	"droplaser/internal/components"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Config is the read-only snapshot of user settings the laser consults each
// frame. It is produced by the config package and never written here.
type Config struct {
	LoggingEnabled   bool
	EnableLaser      bool
	UseCustomColor   bool
	CustomColor      components.ColorF
	StartWidth       float32
	EndWidth         float32
	MaxDistance      float32
	LightIntensity   float32
	LightRange       float32
	ToggleKey        int32
	AutoEnableOnGrab bool
}

func DefaultConfig() Config {
	return Config{
		LoggingEnabled:   false,
		EnableLaser:      true,
		UseCustomColor:   false,
		CustomColor:      components.Red,
		StartWidth:       0.025,
		EndWidth:         0.005,
		MaxDistance:      100,
		LightIntensity:   4.0,
		LightRange:       0.8,
		ToggleKey:        rl.KeyL,
		AutoEnableOnGrab: false,
	}
}

// ConfigSource returns the current snapshot.
type ConfigSource func() Config

// StaticConfig serves a fixed snapshot.
func StaticConfig(cfg Config) ConfigSource {
	return func() Config { return cfg }
}
