package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// RaycastResult is one collider a ray passed through. It lives in engine so
// components can query physics without importing it.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// WorldAccess is the slice of the world that components and the laser see:
// the live scene, object lifetime and ray queries.
type WorldAccess interface {
	ActiveScene() *Scene
	SpawnObject(g *GameObject)
	Destroy(g *GameObject)

	// RaycastAll returns every hit along the ray in scene order, unsorted.
	RaycastAll(origin, direction rl.Vector3, maxDistance float32, includeTriggers bool) ([]RaycastResult, error)
}
