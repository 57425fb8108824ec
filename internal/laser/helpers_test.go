package laser

import (
	"testing"

	"droplaser/internal/components"
	"droplaser/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type fakeWorld struct {
	scene *engine.Scene
	hits  []engine.RaycastResult
	err   error

	casts        int
	lastOrigin   rl.Vector3
	lastDir      rl.Vector3
	lastMax      float32
	lastTriggers bool
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{scene: engine.NewScene("Test")}
}

func (w *fakeWorld) ActiveScene() *engine.Scene { return w.scene }

func (w *fakeWorld) SpawnObject(g *engine.GameObject) { w.scene.AddGameObject(g) }

func (w *fakeWorld) Destroy(g *engine.GameObject) {
	if g.Scene != nil {
		g.Scene.Destroy(g)
		return
	}
	w.scene.Destroy(g)
}

func (w *fakeWorld) RaycastAll(origin, direction rl.Vector3, maxDistance float32, includeTriggers bool) ([]engine.RaycastResult, error) {
	w.casts++
	w.lastOrigin = origin
	w.lastDir = direction
	w.lastMax = maxDistance
	w.lastTriggers = includeTriggers
	return w.hits, w.err
}

type fakeKeyboard struct {
	pressed map[int32]bool
}

func (k *fakeKeyboard) IsKeyPressed(key int32) bool { return k.pressed[key] }

func (k *fakeKeyboard) press(key int32) { k.pressed = map[int32]bool{key: true} }

func (k *fakeKeyboard) release() { k.pressed = nil }

type fakeSession int

func (s fakeSession) ParticipantCount() int { return int(s) }

// rig is a scene with one actor, its grab beam and a crate on the floor.
type rig struct {
	world   *fakeWorld
	actor   *engine.GameObject
	grabber *components.Grabber
	beam    *engine.GameObject
	beamMat *components.Material
	crate   *engine.GameObject
	floor   *engine.GameObject
}

func newRig(t *testing.T) *rig {
	t.Helper()
	w := newFakeWorld()

	actor := engine.NewGameObject("Player")
	beam := engine.NewGameObject("GrabBeam")
	mat := components.NewMaterial("GrabBeam")
	mat.SetColor(components.PropColor, components.NewColorF(0.2, 0.4, 0.9, 0.8))
	mat.SetColor(components.PropEmissionColor, components.NewColorF(0.1, 0.1, 0.05, 0))
	mat.EnableKeyword("_EMISSION")
	beam.AddComponent(components.NewLineRenderer(mat))
	actor.AddChild(beam)
	grabber := components.NewGrabber(beam)
	actor.AddComponent(grabber)

	crate := engine.NewGameObject("Crate")
	crate.Transform.Position = rl.Vector3{Y: 2}
	crate.AddComponent(components.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1}))

	floor := engine.NewGameObject("Floor")
	floor.AddComponent(components.NewBoxCollider(rl.Vector3{X: 10, Y: 0.2, Z: 10}))

	w.SpawnObject(actor)
	w.SpawnObject(beam)
	w.SpawnObject(crate)
	w.SpawnObject(floor)

	return &rig{
		world:   w,
		actor:   actor,
		grabber: grabber,
		beam:    beam,
		beamMat: mat,
		crate:   crate,
		floor:   floor,
	}
}

func (r *rig) deps(cfg ConfigSource) Deps {
	return Deps{
		World:      r.world,
		Config:     cfg,
		Session:    OfflineSession{},
		Exclusions: DefaultExclusions,
	}
}

func testConfig(mutate func(*Config)) ConfigSource {
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return StaticConfig(cfg)
}

func hitAt(obj *engine.GameObject, y, distance float32) engine.RaycastResult {
	return engine.RaycastResult{
		GameObject: obj,
		Point:      rl.Vector3{Y: y},
		Normal:     rl.Vector3{Y: 1},
		Distance:   distance,
	}
}
