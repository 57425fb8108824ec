package physics

import (
	"testing"

	"droplaser/internal/components"
	"droplaser/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hitSummary struct {
	Name     string
	Distance float32
}

func summarize(hits []engine.RaycastResult) []hitSummary {
	out := make([]hitSummary, 0, len(hits))
	for _, h := range hits {
		out = append(out, hitSummary{Name: h.GameObject.Name, Distance: h.Distance})
	}
	return out
}

func addBox(scene *engine.Scene, name string, center, size rl.Vector3, trigger bool) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = center
	col := components.NewBoxCollider(size)
	col.Trigger = trigger
	g.AddComponent(col)
	scene.AddGameObject(g)
	return g
}

func newTestWorld() (*PhysicsWorld, *engine.Scene) {
	scene := engine.NewScene("Test")
	w := NewPhysicsWorld()
	w.SetScene(scene)
	return w, scene
}

func TestRaycastAllReturnsEveryHitInSceneOrder(t *testing.T) {
	w, scene := newTestWorld()
	addBox(scene, "Floor", rl.Vector3{Y: -0.5}, rl.Vector3{X: 20, Y: 1, Z: 20}, false)
	addBox(scene, "Shelf", rl.Vector3{Y: 3}, rl.Vector3{X: 2, Y: 0.2, Z: 2}, false)
	addBox(scene, "In Cart", rl.Vector3{Y: 5}, rl.Vector3{X: 2, Y: 0.2, Z: 2}, true)
	addBox(scene, "Far Away", rl.Vector3{X: 50, Y: 3}, rl.Vector3{X: 2, Y: 2, Z: 2}, false)

	hits, err := w.RaycastAll(rl.Vector3{Y: 10}, Down, 100, true)
	require.NoError(t, err)

	want := []hitSummary{
		{"Floor", 10},
		{"Shelf", 6.9},
		{"In Cart", 4.9},
	}
	if diff := cmp.Diff(want, summarize(hits), cmpopts.EquateApprox(0, 1e-4)); diff != "" {
		t.Errorf("RaycastAll mismatch (-want +got):\n%s", diff)
	}
}

func TestRaycastAllSkipsTriggersOnRequest(t *testing.T) {
	w, scene := newTestWorld()
	addBox(scene, "In Cart", rl.Vector3{Y: 5}, rl.Vector3{X: 2, Y: 0.2, Z: 2}, true)

	hits, err := w.RaycastAll(rl.Vector3{Y: 10}, Down, 100, false)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestRaycastAllRespectsMaxDistance(t *testing.T) {
	w, scene := newTestWorld()
	addBox(scene, "Floor", rl.Vector3{Y: -0.5}, rl.Vector3{X: 20, Y: 1, Z: 20}, false)

	hits, err := w.RaycastAll(rl.Vector3{Y: 10}, Down, 5, true)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestRaycastAllSkipsCollidersContainingOrigin(t *testing.T) {
	w, scene := newTestWorld()
	addBox(scene, "Floor", rl.Vector3{Y: -0.1}, rl.Vector3{X: 10, Y: 0.2, Z: 10}, false)
	addBox(scene, "Crate", rl.Vector3{Y: 2}, rl.Vector3{X: 1, Y: 1, Z: 1}, false)
	addBox(scene, "Zone", rl.Vector3{Y: 2}, rl.Vector3{X: 4, Y: 2, Z: 4}, true)
	ball := engine.NewGameObject("Ball")
	ball.Transform.Position = rl.Vector3{Y: 1.5}
	ball.AddComponent(components.NewSphereCollider(1))
	scene.AddGameObject(ball)

	hits, err := w.RaycastAll(rl.Vector3{Y: 1.55}, Down, 10, true)
	require.NoError(t, err)

	want := []hitSummary{{"Floor", 1.55}}
	if diff := cmp.Diff(want, summarize(hits), cmpopts.EquateApprox(0, 1e-4)); diff != "" {
		t.Errorf("RaycastAll mismatch (-want +got):\n%s", diff)
	}
}

func TestRaycastAllHitsBoxStartingOnItsFace(t *testing.T) {
	w, scene := newTestWorld()
	addBox(scene, "Floor", rl.Vector3{Y: -0.5}, rl.Vector3{X: 20, Y: 1, Z: 20}, false)

	hits, err := w.RaycastAll(rl.Vector3{}, Down, 10, false)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.InDelta(t, 0, hits[0].Distance, 1e-5)
}

func TestRaycastAllSphere(t *testing.T) {
	w, scene := newTestWorld()
	ball := engine.NewGameObject("Ball")
	ball.Transform.Position = rl.Vector3{Y: 2}
	ball.AddComponent(components.NewSphereCollider(0.5))
	scene.AddGameObject(ball)

	hits, err := w.RaycastAll(rl.Vector3{Y: 10}, Down, 100, true)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.InDelta(t, 7.5, hits[0].Distance, 1e-4)
	assert.InDelta(t, 1, hits[0].Normal.Y, 1e-4)
}

func TestRaycastAllErrors(t *testing.T) {
	detached := NewPhysicsWorld()
	_, err := detached.RaycastAll(rl.Vector3{}, Down, 10, true)
	assert.ErrorIs(t, err, ErrNoScene)

	w, _ := newTestWorld()
	_, err = w.RaycastAll(rl.Vector3{}, Down, 0, true)
	assert.ErrorIs(t, err, ErrInvalidDistance)

	_, err = w.RaycastAll(rl.Vector3{}, rl.Vector3{}, 10, true)
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestRaycastClosestSolid(t *testing.T) {
	w, scene := newTestWorld()
	addBox(scene, "Floor", rl.Vector3{Y: -0.5}, rl.Vector3{X: 20, Y: 1, Z: 20}, false)
	addBox(scene, "Shelf", rl.Vector3{Y: 3}, rl.Vector3{X: 2, Y: 0.2, Z: 2}, false)
	addBox(scene, "Zone", rl.Vector3{Y: 6}, rl.Vector3{X: 2, Y: 0.2, Z: 2}, true)

	hit, ok := w.Raycast(rl.Vector3{Y: 10}, Down, 100)
	require.True(t, ok)
	assert.Equal(t, "Shelf", hit.GameObject.Name)
}
