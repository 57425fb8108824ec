package components

import (
	"droplaser/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type BoxCollider struct {
	engine.BaseComponent
	Size    rl.Vector3
	Offset  rl.Vector3
	Trigger bool // trigger volumes are reported by ray queries but never block movement
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (b *BoxCollider) GetCenter() rl.Vector3 {
	g := b.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), b.Offset)
}

// GetWorldSize returns Size scaled by the owning object's world scale
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	scale := b.GetGameObject().WorldScale()
	return rl.Vector3{
		X: b.Size.X * scale.X,
		Y: b.Size.Y * scale.Y,
		Z: b.Size.Z * scale.Z,
	}
}

func (b *BoxCollider) Bounds() engine.Bounds {
	return engine.NewBoundsFromCenter(b.GetCenter(), b.GetWorldSize())
}

func (b *BoxCollider) IsTrigger() bool {
	return b.Trigger
}
