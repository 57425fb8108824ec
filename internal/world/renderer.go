package world

import (
	"droplaser/internal/camera"
	"droplaser/internal/components"
	"droplaser/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws a scene with raylib's immediate-mode primitives. Opaque
// meshes go first, then the translucent beams and light glows.
type Renderer struct {
	Camera     *camera.OrbitCamera
	Background rl.Color
	ShowGrid   bool
}

func NewRenderer() *Renderer {
	return &Renderer{
		Camera:     camera.New(rl.Vector3{X: 0, Y: 0.5, Z: 0}),
		Background: rl.NewColor(24, 26, 32, 255),
		ShowGrid:   true,
	}
}

// Draw must be called between rl.BeginDrawing and rl.EndDrawing.
func (r *Renderer) Draw(scene *engine.Scene) {
	rl.ClearBackground(r.Background)
	if scene == nil {
		return
	}

	rl.BeginMode3D(r.Camera.GetRaylibCamera())
	if r.ShowGrid {
		rl.DrawGrid(30, 1)
	}

	for _, g := range scene.GameObjects {
		if mesh := engine.GetComponent[*components.MeshRenderer](g); mesh != nil {
			mesh.Draw()
		}
	}

	rl.BeginBlendMode(rl.BlendAdditive)
	for _, g := range scene.GameObjects {
		for _, c := range g.Components() {
			switch comp := c.(type) {
			case *components.LineRenderer:
				comp.Draw()
			case *components.PointLight:
				comp.Draw()
			}
		}
	}
	rl.EndBlendMode()

	rl.EndMode3D()
}

// Follow keeps the camera trained on target.
func (r *Renderer) Follow(target rl.Vector3) {
	r.Camera.Follow(target)
}
