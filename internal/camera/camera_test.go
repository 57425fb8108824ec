package camera

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestPositionKeepsDistance(t *testing.T) {
	c := New(rl.Vector3{X: 1, Y: 2, Z: 3})
	p := c.Position()
	assert.InDelta(t, c.Distance, rl.Vector3Distance(p, c.Target), 1e-4)
	assert.Greater(t, p.Y, c.Target.Y)
}

func TestPositionAtZeroAngles(t *testing.T) {
	c := New(rl.Vector3{})
	c.Yaw, c.Pitch, c.Distance = 0, 0, 5
	p := c.Position()
	assert.InDelta(t, 5, p.X, 1e-5)
	assert.InDelta(t, 0, p.Y, 1e-5)
	assert.InDelta(t, 0, p.Z, 1e-5)
}

func TestRotateClampsPitch(t *testing.T) {
	c := New(rl.Vector3{})
	c.Rotate(40, 1000)
	assert.Equal(t, float32(85), c.Pitch)
	assert.InDelta(t, -56+40*c.LookSpeed, c.Yaw, 1e-5)

	c.Rotate(0, -1000)
	assert.Equal(t, float32(5), c.Pitch)
}

func TestZoomClamps(t *testing.T) {
	c := New(rl.Vector3{})
	c.Zoom(100)
	assert.Equal(t, c.MinDistance, c.Distance)
	c.Zoom(-100)
	assert.Equal(t, c.MaxDistance, c.Distance)
}

func TestFollowKeepsAngles(t *testing.T) {
	c := New(rl.Vector3{})
	before := rl.Vector3Subtract(c.Position(), c.Target)
	c.Follow(rl.Vector3{X: 4, Y: 1, Z: -2})
	after := rl.Vector3Subtract(c.Position(), c.Target)
	assert.InDelta(t, 0, rl.Vector3Distance(before, after), 1e-4)

	cam := c.GetRaylibCamera()
	assert.Equal(t, c.Target, cam.Target)
	assert.False(t, math.IsNaN(float64(cam.Position.X)))
}
