package world

import (
	"os"
	"path/filepath"
	"testing"

	"droplaser/internal/components"
	"droplaser/internal/engine"
	"droplaser/internal/laser"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScene = `
name: Test
objects:
  - name: Floor
    position: [0, -0.1, 0]
    components:
      - type: BoxCollider
        size: [10, 0.2, 10]
  - name: Player
    position: [0, 2, 0]
    components:
      - type: NetworkView
        owner: 3
        mine: true
      - type: Grabber
        beam: GrabBeam
        hold_offset: [0, -1, 1]
    children:
      - name: Arm
        children:
          - name: GrabBeam
            components:
              - type: LineRenderer
                color: "#336699"
                emission: "#11000000"
                keywords: [_EMISSION]
  - name: In Cart
    tags: [decor]
    position: [3, 0.5, 0]
    components:
      - type: BoxCollider
        size: [1, 1, 1]
        trigger: true
  - name: Crate
    tags: [grabbable]
    position: [0, 0.5, 0]
    scale: [2, 2, 2]
    components:
      - type: MeshRenderer
        mesh: cube
        size: [0.5, 0.5, 0.5]
        color: "#ff8800"
      - type: BoxCollider
        size: [0.5, 0.5, 0.5]
      - type: Rigidbody
        bounciness: 0
`

func TestParseScene(t *testing.T) {
	scene, err := ParseScene([]byte(testScene))
	require.NoError(t, err)
	assert.Equal(t, "Test", scene.Name)

	var names []string
	for _, g := range scene.GameObjects {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"Floor", "Player", "Arm", "GrabBeam", "In Cart", "Crate"}, names)

	player := scene.FindByName("Player")
	grabber := engine.GetComponent[*components.Grabber](player)
	require.NotNil(t, grabber)
	assert.Same(t, scene.FindByName("GrabBeam"), grabber.Beam)
	assert.Equal(t, rl.Vector3{Y: -1, Z: 1}, grabber.HoldOffset)
	require.NotNil(t, grabber.BeamRenderer())
	assert.True(t, grabber.BeamRenderer().Material.IsKeywordEnabled("_EMISSION"))
	_, ok := grabber.BeamRenderer().Material.Color(components.PropEmissionColor)
	assert.True(t, ok)

	view := engine.GetComponent[*components.NetworkView](player)
	require.NotNil(t, view)
	assert.True(t, view.IsMine)
	assert.Equal(t, 3, view.OwnerID)

	cart := scene.FindByName("In Cart")
	assert.True(t, engine.GetComponent[*components.BoxCollider](cart).IsTrigger())

	crate := scene.FindByName("Crate")
	assert.True(t, crate.HasTag(TagGrabbable))
	assert.Equal(t, rl.Vector3{X: 2, Y: 2, Z: 2}, crate.Transform.Scale)
	assert.Equal(t, rl.NewColor(255, 136, 0, 255), engine.GetComponent[*components.MeshRenderer](crate).Color)
	assert.Equal(t, float32(0), engine.GetComponent[*components.Rigidbody](crate).Bounciness)

	assert.Equal(t, rl.Vector3{X: 1, Y: 1, Z: 1}, scene.FindByName("Floor").Transform.Scale)
}

func TestParseSceneErrors(t *testing.T) {
	tests := map[string]string{
		"unknown component": "objects:\n  - name: A\n    components:\n      - type: Teleporter\n",
		"missing beam":      "objects:\n  - name: A\n    components:\n      - type: Grabber\n        beam: Nope\n",
		"bad color":         "objects:\n  - name: A\n    components:\n      - type: MeshRenderer\n        color: Chartreuse\n",
		"bad mesh":          "objects:\n  - name: A\n    components:\n      - type: MeshRenderer\n        mesh: torus\n",
		"bad radius":        "objects:\n  - name: A\n    components:\n      - type: SphereCollider\n        radius: 0\n",
		"bad yaml":          "objects: {",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseScene([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestWarehouseSceneLoads(t *testing.T) {
	scene, err := LoadSceneFile(filepath.Join("..", "..", "assets", "scenes", "warehouse.yaml"))
	require.NoError(t, err)

	for _, name := range []string{"In Cart", "Capsule Left", "Capsule Mid", "Capsule Right", "Player", "GrabBeam"} {
		assert.NotNil(t, scene.FindByName(name), name)
	}
	assert.NotEmpty(t, scene.FindByTag(TagGrabbable))
}

func newTestWorld(t *testing.T) *World {
	t.Helper()
	scene, err := ParseScene([]byte(testScene))
	require.NoError(t, err)
	w := New()
	w.SetScene(scene)
	return w
}

func TestWorldRaycastAll(t *testing.T) {
	w := newTestWorld(t)
	down := rl.Vector3{Y: -1}

	hits, err := w.RaycastAll(rl.Vector3{X: 3, Y: 5}, down, 100, true)
	require.NoError(t, err)
	var names []string
	for _, h := range hits {
		names = append(names, h.GameObject.Name)
	}
	assert.ElementsMatch(t, []string{"In Cart", "Floor"}, names)

	hit, ok := w.Raycast(rl.Vector3{X: 3, Y: 5}, down, 100)
	require.True(t, ok)
	assert.Equal(t, "Floor", hit.GameObject.Name)
}

func TestWorldSpawnAndDestroy(t *testing.T) {
	w := newTestWorld(t)
	obj := engine.NewGameObject("Spawned")

	w.SpawnObject(obj)
	assert.Same(t, obj, w.ActiveScene().FindByUID(obj.UID))

	w.Destroy(obj)
	assert.True(t, obj.Destroyed())
	assert.Nil(t, w.ActiveScene().FindByUID(obj.UID))
}

func TestWorldUpdateLandsBodies(t *testing.T) {
	w := newTestWorld(t)
	crate := w.ActiveScene().FindByName("Crate")
	crate.Transform.Position.Y = 3

	for range 240 {
		w.Update(1.0 / 60)
	}

	// Floor top is at 0 and the crate is 1 unit tall after scaling.
	assert.InDelta(t, 0.5, crate.Transform.Position.Y, 0.05)
}

func TestWorldLoadAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testScene), 0o644))

	w := New()
	assert.ErrorIs(t, w.Reload(), ErrNoScenePath)

	var loaded []*engine.Scene
	w.Scenes.SceneLoaded.AddListener(func(s *engine.Scene) {
		loaded = append(loaded, s)
		assert.Same(t, s, w.Physics.Scene())
	})

	require.NoError(t, w.LoadScene(path))
	first := w.ActiveScene()
	require.NoError(t, w.Reload())

	require.Len(t, loaded, 2)
	assert.Same(t, first, loaded[0])
	assert.NotSame(t, first, w.ActiveScene())
	assert.Same(t, w.ActiveScene(), loaded[1])

	assert.Error(t, w.LoadScene(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Same(t, loaded[1], w.ActiveScene())
}

func TestBeamPassesThroughVolumeAroundHeldObject(t *testing.T) {
	scene, err := ParseScene([]byte(`
objects:
  - name: Floor
    position: [0, -0.1, 0]
    components:
      - type: BoxCollider
        size: [10, 0.2, 10]
  - name: Zone
    position: [0, 2, 0]
    components:
      - type: BoxCollider
        size: [4, 2, 4]
        trigger: true
  - name: Crate
    position: [0, 2, 0]
    components:
      - type: BoxCollider
        size: [0.5, 0.5, 0.5]
`))
	require.NoError(t, err)
	w := New()
	w.SetScene(scene)

	crate := scene.FindByName("Crate")
	geom, err := laser.NewResolver(laser.WorldQuery{World: w}).Resolve(crate, laser.DefaultExclusions, 100)
	require.NoError(t, err)

	assert.True(t, geom.Hit)
	assert.InDelta(t, 1.8, geom.Start.Y, 1e-5)
	assert.InDelta(t, 0, geom.End.Y, 1e-5)
}
