package components

import (
	"droplaser/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LineRenderer draws a tapered segment between two world positions.
type LineRenderer struct {
	engine.BaseComponent
	Enabled    bool
	StartColor ColorF
	EndColor   ColorF
	StartWidth float32
	EndWidth   float32
	Material   *Material
	positions  [2]rl.Vector3
}

func NewLineRenderer(material *Material) *LineRenderer {
	if material == nil {
		material = NewMaterial("Default-Line")
	}
	return &LineRenderer{
		Enabled:    true,
		StartColor: White,
		EndColor:   White,
		StartWidth: 0.1,
		EndWidth:   0.1,
		Material:   material,
	}
}

// SetPosition sets endpoint 0 (start) or 1 (end). Other indices are ignored.
func (l *LineRenderer) SetPosition(index int, p rl.Vector3) {
	if index < 0 || index >= len(l.positions) {
		return
	}
	l.positions[index] = p
}

func (l *LineRenderer) Position(index int) rl.Vector3 {
	if index < 0 || index >= len(l.positions) {
		return rl.Vector3Zero()
	}
	return l.positions[index]
}

func (l *LineRenderer) Draw() {
	g := l.GetGameObject()
	if !l.Enabled || g == nil || !g.Active {
		return
	}
	start, end := l.positions[0], l.positions[1]
	if rl.Vector3Distance(start, end) < 1e-4 {
		return
	}
	tint := ColorF{Color: l.StartColor.Color, A: l.StartColor.A}
	if c, ok := l.Material.Color(PropColor); ok {
		tint.Color = c.Color
	}
	rl.DrawCylinderEx(start, end, l.StartWidth/2, l.EndWidth/2, 8, tint.ToRL())
}
