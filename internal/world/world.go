package world

import (
	"errors"
	"fmt"

	"droplaser/internal/engine"
	"droplaser/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrNoScenePath = errors.New("world: no scene file loaded")

// World hosts the active scene and its physics, and is what components see
// through engine.WorldAccess.
type World struct {
	Scenes  *engine.SceneManager
	Physics *physics.PhysicsWorld

	scenePath string
}

func New() *World {
	return &World{
		Scenes:  engine.NewSceneManager(),
		Physics: physics.NewPhysicsWorld(),
	}
}

var _ engine.WorldAccess = (*World)(nil)

func (w *World) ActiveScene() *engine.Scene {
	return w.Scenes.Active()
}

// SpawnObject adds g to the active scene. Children are not added implicitly.
func (w *World) SpawnObject(g *engine.GameObject) {
	if s := w.ActiveScene(); s != nil {
		s.AddGameObject(g)
	}
}

// Destroy tears g down in whichever scene owns it.
func (w *World) Destroy(g *engine.GameObject) {
	s := g.Scene
	if s == nil {
		s = w.ActiveScene()
	}
	if s == nil {
		return
	}
	s.Destroy(g)
}

func (w *World) RaycastAll(origin, direction rl.Vector3, maxDistance float32, includeTriggers bool) ([]engine.RaycastResult, error) {
	return w.Physics.RaycastAll(origin, direction, maxDistance, includeTriggers)
}

// Raycast returns the closest solid hit.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32) (engine.RaycastResult, bool) {
	return w.Physics.Raycast(origin, direction, maxDistance)
}

// SetScene makes s active. Physics is pointed at s before SceneLoaded fires,
// so listeners can already query the new scene.
func (w *World) SetScene(s *engine.Scene) {
	w.Physics.SetScene(s)
	w.Scenes.Load(s)
}

// LoadScene builds the scene file at path and makes it active.
func (w *World) LoadScene(path string) error {
	scene, err := LoadSceneFile(path)
	if err != nil {
		return err
	}
	w.scenePath = path
	w.SetScene(scene)
	return nil
}

// Reload rebuilds the current scene file from disk.
func (w *World) Reload() error {
	if w.scenePath == "" {
		return ErrNoScenePath
	}
	if err := w.LoadScene(w.scenePath); err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	return nil
}

// Update runs components first, then physics.
func (w *World) Update(deltaTime float32) {
	if s := w.ActiveScene(); s != nil {
		s.Update(deltaTime)
	}
	w.Physics.Update(deltaTime)
}
