package components

import (
	"droplaser/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type SphereCollider struct {
	engine.BaseComponent
	Radius  float32
	Offset  rl.Vector3
	Trigger bool
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius: radius,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center of this collider
func (s *SphereCollider) GetCenter() rl.Vector3 {
	g := s.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), s.Offset)
}

func (s *SphereCollider) Bounds() engine.Bounds {
	d := s.Radius * 2
	return engine.NewBoundsFromCenter(s.GetCenter(), rl.Vector3{X: d, Y: d, Z: d})
}

func (s *SphereCollider) IsTrigger() bool {
	return s.Trigger
}
