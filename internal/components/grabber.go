package components

import (
	"droplaser/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// GrabEvent is fired after every grab attempt.
type GrabEvent struct {
	Grabber   *Grabber
	Succeeded bool
}

// Grabber lets an actor pick up one object at a time. The held object floats
// at HoldOffset from the actor and a grab beam is drawn between the two.
type Grabber struct {
	engine.BaseComponent

	// Beam is the GameObject carrying the grab beam's LineRenderer.
	Beam        *engine.GameObject
	HoldOffset  rl.Vector3
	ScrollSpeed float32

	held *engine.GameObject

	GrabConfirmed engine.EventWithArg[GrabEvent]
	Released      engine.EventWithArg[*Grabber]
}

func NewGrabber(beam *engine.GameObject) *Grabber {
	return &Grabber{
		Beam:        beam,
		HoldOffset:  rl.Vector3{X: 0, Y: -0.5, Z: 2},
		ScrollSpeed: 1.5,
	}
}

// Grab takes hold of target. A nil target is a failed attempt.
func (g *Grabber) Grab(target *engine.GameObject) bool {
	if target == nil || target.Destroyed() {
		g.GrabConfirmed.Invoke(GrabEvent{Grabber: g, Succeeded: false})
		return false
	}
	if g.held != nil && g.held != target {
		setKinematic(g.held, false)
	}
	g.held = target
	setKinematic(target, true)
	g.syncBeam()
	g.GrabConfirmed.Invoke(GrabEvent{Grabber: g, Succeeded: true})
	return true
}

// Release drops the held object. Listeners run after the grabber has let go.
func (g *Grabber) Release() {
	if g.held == nil {
		return
	}
	setKinematic(g.held, false)
	g.held = nil
	g.syncBeam()
	g.Released.Invoke(g)
}

// setKinematic hands a rigidbody over to the grabber or back to the simulation.
func setKinematic(obj *engine.GameObject, kinematic bool) {
	rb := engine.GetComponent[*Rigidbody](obj)
	if rb == nil {
		return
	}
	rb.IsKinematic = kinematic
	rb.Velocity = rl.Vector3{}
	rb.Wake()
}

func (g *Grabber) Grabbed() bool {
	return g.HeldObject() != nil
}

// HeldObject returns the grabbed object, or nil. An object destroyed while
// held is released here, and Released fires as for an explicit release.
func (g *Grabber) HeldObject() *engine.GameObject {
	if g.held != nil && g.held.Destroyed() {
		g.held = nil
		g.syncBeam()
		g.Released.Invoke(g)
	}
	return g.held
}

// BeamRenderer returns the grab beam's line, or nil when there is none.
func (g *Grabber) BeamRenderer() *LineRenderer {
	if g.Beam == nil || g.Beam.Destroyed() {
		return nil
	}
	return engine.GetComponent[*LineRenderer](g.Beam)
}

func (g *Grabber) HoldPoint() rl.Vector3 {
	actor := g.GetGameObject()
	if actor == nil {
		return g.HoldOffset
	}
	return rl.Vector3Add(actor.WorldPosition(), g.HoldOffset)
}

func (g *Grabber) Update(deltaTime float32) {
	if held := g.HeldObject(); held != nil {
		held.Transform.Position = g.HoldPoint()
	}
	if line := g.BeamRenderer(); line != nil && line.Material != nil {
		line.Material.TextureOffset.X += g.ScrollSpeed * deltaTime
		if line.Material.TextureOffset.X > 1 {
			line.Material.TextureOffset.X -= 1
		}
	}
	g.syncBeam()
}

func (g *Grabber) syncBeam() {
	line := g.BeamRenderer()
	if line == nil {
		return
	}
	held := g.HeldObject()
	actor := g.GetGameObject()
	line.Enabled = held != nil && actor != nil
	if !line.Enabled {
		return
	}
	line.SetPosition(0, actor.WorldPosition())
	line.SetPosition(1, held.WorldPosition())
}
