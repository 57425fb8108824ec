package components

import (
	"droplaser/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	SleepVelocityThreshold = 0.3 // units/sec
	SleepTimeThreshold     = 0.3 // seconds below SleepVelocityThreshold
)

// Rigidbody lets an object fall and settle. A held object is switched to
// kinematic so the simulation leaves it where the grabber puts it.
type Rigidbody struct {
	engine.BaseComponent
	Velocity    rl.Vector3
	Bounciness  float32 // 0 = no bounce, 1 = perfect bounce
	UseGravity  bool
	IsKinematic bool // moved by code (e.g. while held), never by the simulation

	IsSleeping bool // skipped by the simulation until woken
	sleepTimer float32
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Bounciness: 0.2,
		UseGravity: true,
	}
}

// Wake puts a sleeping body back into the simulation.
func (r *Rigidbody) Wake() {
	r.IsSleeping = false
	r.sleepTimer = 0
}

// TrySleep damps a slow body and puts it to sleep once it has stayed slow
// for SleepTimeThreshold.
func (r *Rigidbody) TrySleep(deltaTime float32) {
	if r.IsSleeping {
		return
	}
	if rl.Vector3Length(r.Velocity) < SleepVelocityThreshold {
		r.sleepTimer += deltaTime
		r.Velocity = rl.Vector3Scale(r.Velocity, 0.9)
		if r.sleepTimer >= SleepTimeThreshold {
			r.IsSleeping = true
			r.Velocity = rl.Vector3{}
		}
	} else {
		r.sleepTimer = 0
	}
}
