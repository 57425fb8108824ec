package components

import (
	"droplaser/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type PointLight struct {
	engine.BaseComponent
	Enabled   bool
	Color     ColorF
	Intensity float32
	Range     float32 // falloff distance
}

func NewPointLight() *PointLight {
	return &PointLight{
		Enabled:   true,
		Color:     White,
		Intensity: 1.0,
		Range:     10.0,
	}
}

func (p *PointLight) GetPosition() rl.Vector3 {
	if g := p.GetGameObject(); g != nil {
		return g.WorldPosition()
	}
	return rl.Vector3Zero()
}

// SetPosition moves the owning GameObject in world space.
func (p *PointLight) SetPosition(pos rl.Vector3) {
	g := p.GetGameObject()
	if g == nil {
		return
	}
	if g.Parent != nil {
		pos = rl.Vector3Subtract(pos, g.Parent.WorldPosition())
	}
	g.Transform.Position = pos
}

// Draw renders the light as a soft glow sphere sized by its range.
func (p *PointLight) Draw() {
	g := p.GetGameObject()
	if !p.Enabled || g == nil || !g.Active {
		return
	}
	pos := p.GetPosition()
	glow := p.Color.WithAlpha(clamp01(float64(p.Intensity) / 16))
	rl.DrawSphere(pos, p.Range*0.25, glow.ToRL())
	rl.DrawSphere(pos, 0.03, p.Color.WithAlpha(1).ToRL())
}
