package physics

import (
	"errors"

	"droplaser/internal/components"
	"droplaser/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	ErrNoScene          = errors.New("physics: no scene attached")
	ErrInvalidDistance  = errors.New("physics: ray distance must be positive and finite")
	ErrInvalidDirection = errors.New("physics: ray direction has zero length")
)

// Down is the world's gravity direction.
var Down = rl.Vector3{X: 0, Y: -1, Z: 0}

type PhysicsWorld struct {
	Gravity rl.Vector3
	scene   *engine.Scene
}

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		Gravity: rl.Vector3{X: 0, Y: -20, Z: 0},
	}
}

// SetScene points queries and simulation at s. Pass nil to detach.
func (p *PhysicsWorld) SetScene(s *engine.Scene) {
	p.scene = s
}

func (p *PhysicsWorld) Scene() *engine.Scene {
	return p.scene
}

// Update integrates gravity for every awake, non-kinematic rigidbody and
// lands it on the first solid surface under its collider.
func (p *PhysicsWorld) Update(deltaTime float32) {
	if p.scene == nil || deltaTime <= 0 {
		return
	}
	for _, obj := range p.scene.GameObjects {
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb == nil || rb.IsKinematic || rb.IsSleeping || !obj.Active {
			continue
		}
		if rb.UseGravity {
			rb.Velocity = rl.Vector3Add(rb.Velocity, rl.Vector3Scale(p.Gravity, deltaTime))
		}
		p.step(obj, rb, deltaTime)
		rb.TrySleep(deltaTime)
	}
}

func (p *PhysicsWorld) step(obj *engine.GameObject, rb *components.Rigidbody, deltaTime float32) {
	move := rl.Vector3Scale(rb.Velocity, deltaTime)
	col, ok := engine.GetComponentInChildren[engine.Collider](obj)
	if !ok || move.Y >= 0 {
		obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, move)
		return
	}

	b := col.Bounds()
	bottom := b.Center()
	bottom.Y = b.Min.Y
	// Cast from slightly inside the collider so resting contact is still found.
	const skin = 0.01
	origin := rl.Vector3Add(bottom, rl.Vector3{Y: skin})
	hit, found := p.closestSolid(origin, Down, -move.Y+skin, obj)
	if !found {
		obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, move)
		return
	}

	obj.Transform.Position.X += move.X
	obj.Transform.Position.Z += move.Z
	obj.Transform.Position.Y += hit.Point.Y - bottom.Y
	rb.Velocity.Y = -rb.Velocity.Y * rb.Bounciness
}

func (p *PhysicsWorld) closestSolid(origin, dir rl.Vector3, maxDistance float32, self *engine.GameObject) (engine.RaycastResult, bool) {
	hits, err := p.RaycastAll(origin, dir, maxDistance, false)
	if err != nil {
		return engine.RaycastResult{}, false
	}
	var best engine.RaycastResult
	found := false
	for _, h := range hits {
		if h.GameObject.IsPartOf(self) {
			continue
		}
		if !found || h.Distance < best.Distance {
			best = h
			found = true
		}
	}
	return best, found
}
