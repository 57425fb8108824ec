package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// Bounds is an axis-aligned box in world space.
type Bounds struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewBoundsFromCenter creates bounds from a center point and full size dimensions.
func NewBoundsFromCenter(center, size rl.Vector3) Bounds {
	half := rl.Vector3{X: abs(size.X) / 2, Y: abs(size.Y) / 2, Z: abs(size.Z) / 2}
	return Bounds{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (b Bounds) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(b.Min, b.Max), 0.5)
}

// Extents is half the size along each axis.
func (b Bounds) Extents() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Subtract(b.Max, b.Min), 0.5)
}

func (b Bounds) Contains(p rl.Vector3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
