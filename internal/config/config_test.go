package config

import (
	"os"
	"path/filepath"
	"testing"

	"droplaser/internal/components"
	"droplaser/internal/laser"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var approx = cmpopts.EquateApprox(0, 1e-6)

func TestParseEmptyKeepsDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(laser.DefaultConfig(), cfg, approx))
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte(`
general:
  enable_logging: true
laser:
  use_custom_color: true
  custom_color: "#00FF0080"
  start_width: 0.1
  toggle_key: f5
`))
	require.NoError(t, err)

	want := laser.DefaultConfig()
	want.LoggingEnabled = true
	want.UseCustomColor = true
	want.CustomColor = components.NewColorF(0, 1, 0, 128.0/255)
	want.StartWidth = 0.1
	want.ToggleKey = rl.KeyF5
	assert.Empty(t, cmp.Diff(want, cfg, approx))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"bad key", "laser:\n  toggle_key: Banana\n", ErrUnknownKey},
		{"negative width", "laser:\n  end_width: -1\n", ErrInvalidValue},
		{"zero distance", "laser:\n  max_distance: 0\n", ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Parse([]byte("laser:\n  custom_color: not-a-color\n"))
	assert.ErrorContains(t, err, "custom_color")

	_, err = Parse([]byte("laser: [oops"))
	assert.Error(t, err)
}

func TestLoadCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "droplaser.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(laser.DefaultConfig(), cfg, approx))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "toggle_key: L")
	assert.Contains(t, string(data), "enable_laser: true")

	again, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(cfg, again, approx))
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "droplaser.yaml")
	cfg := laser.DefaultConfig()
	cfg.AutoEnableOnGrab = true
	cfg.ToggleKey = rl.KeySpace
	cfg.CustomColor = components.NewColorF(0, 0, 1, 1)

	require.NoError(t, Save(path, cfg))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(cfg, got, approx))
}

func TestParseKey(t *testing.T) {
	for name, want := range map[string]int32{
		"L":          rl.KeyL,
		"l":          rl.KeyL,
		"7":          rl.KeySeven,
		"F12":        rl.KeyF12,
		"Space":      rl.KeySpace,
		"Left Shift": rl.KeyLeftShift,
	} {
		got, err := ParseKey(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseKey("")
	assert.ErrorIs(t, err, ErrUnknownKey)

	assert.Equal(t, "L", KeyName(rl.KeyL))
	assert.Equal(t, "9999", KeyName(9999))
}
