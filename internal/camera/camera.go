package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrbitCamera circles a target point. Yaw and Pitch are in degrees; Pitch is
// measured up from the horizontal plane.
type OrbitCamera struct {
	Target    rl.Vector3
	Yaw       float32
	Pitch     float32
	Distance  float32
	LookSpeed float32
	ZoomSpeed float32

	MinDistance float32
	MaxDistance float32
	Fovy        float32
}

func New(target rl.Vector3) *OrbitCamera {
	return &OrbitCamera{
		Target:      target,
		Yaw:         -56,
		Pitch:       27,
		Distance:    12,
		LookSpeed:   0.25,
		ZoomSpeed:   1.0,
		MinDistance: 3,
		MaxDistance: 30,
		Fovy:        50,
	}
}

// Update reads the mouse: right-drag orbits, the wheel zooms.
func (c *OrbitCamera) Update() {
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		d := rl.GetMouseDelta()
		c.Rotate(d.X, d.Y)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		c.Zoom(wheel)
	}
}

// Rotate applies a mouse delta in pixels.
func (c *OrbitCamera) Rotate(dx, dy float32) {
	c.Yaw += dx * c.LookSpeed
	c.Pitch += dy * c.LookSpeed

	// Keep above the floor and short of straight down
	if c.Pitch > 85 {
		c.Pitch = 85
	}
	if c.Pitch < 5 {
		c.Pitch = 5
	}
}

func (c *OrbitCamera) Zoom(wheel float32) {
	c.Distance -= wheel * c.ZoomSpeed
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// Position is the eye point for the current yaw, pitch and distance.
func (c *OrbitCamera) Position() rl.Vector3 {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180
	d := float64(c.Distance)

	return rl.Vector3{
		X: c.Target.X + float32(d*math.Cos(pitchRad)*math.Cos(yawRad)),
		Y: c.Target.Y + float32(d*math.Sin(pitchRad)),
		Z: c.Target.Z + float32(d*math.Cos(pitchRad)*math.Sin(yawRad)),
	}
}

// Follow retargets the orbit without changing its angles.
func (c *OrbitCamera) Follow(target rl.Vector3) {
	c.Target = target
}

func (c *OrbitCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}
