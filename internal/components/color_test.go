package components

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorFClampedPerChannel(t *testing.T) {
	c := NewColorF(1.4, -0.2, 0.5, 2).Clamped()
	assert.Equal(t, NewColorF(1, 0, 0.5, 1), c)
}

func TestColorFAddIncludesAlpha(t *testing.T) {
	sum := NewColorF(0.9, 0, 0, 1).Add(NewColorF(0.5, 0.1, 0, 0))
	assert.InDelta(t, 1.4, sum.R, 1e-9)
	assert.InDelta(t, 0.1, sum.G, 1e-9)
	assert.InDelta(t, 1.0, sum.A, 1e-9)
}

func TestColorFToRL(t *testing.T) {
	assert.Equal(t, rl.NewColor(255, 0, 0, 255), Red.ToRL())
	assert.Equal(t, rl.NewColor(255, 255, 255, 128), NewColorF(3, 3, 3, 0.5).ToRL())
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want ColorF
	}{
		{"#ff0000", Red},
		{"#FF0000FF", Red},
		{"#00ff0080", NewColorF(0, 1, 0, 128.0/255)},
		{"#fff", White},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.R, got.R, 1e-9)
			assert.InDelta(t, tt.want.G, got.G, 1e-9)
			assert.InDelta(t, tt.want.B, got.B, 1e-9)
			assert.InDelta(t, tt.want.A, got.A, 1e-9)
		})
	}
}

func TestParseHexColorRejectsGarbage(t *testing.T) {
	for _, in := range []string{"red", "#12", "#gg0000", "#ff0000zz"} {
		_, err := ParseHexColor(in)
		assert.Error(t, err, in)
	}
}

func TestColorFHexRoundTrip(t *testing.T) {
	c, err := ParseHexColor("#336699cc")
	require.NoError(t, err)
	assert.Equal(t, "#336699cc", c.Hex())
}
