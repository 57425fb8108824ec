package laser

import (
	"droplaser/internal/components"
	"droplaser/internal/logging"
)

// HoldState records whether the local actor is holding something. Only
// GrabTracker writes it.
type HoldState struct {
	holding bool
}

func (h *HoldState) IsHoldingObject() bool {
	return h.holding
}

// GrabTracker turns grab and release events into HoldState updates and
// laser requests.
type GrabTracker struct {
	hold    *HoldState
	manager func() *Manager
	config  ConfigSource
	session Session
	log     *logging.Logger
}

func NewGrabTracker(hold *HoldState, manager func() *Manager, config ConfigSource, session Session, log *logging.Logger) *GrabTracker {
	return &GrabTracker{
		hold:    hold,
		manager: manager,
		config:  config,
		session: session,
		log:     log,
	}
}

// OnGrab handles a finished grab attempt.
func (t *GrabTracker) OnGrab(e components.GrabEvent) {
	if !e.Succeeded || e.Grabber == nil || !e.Grabber.Grabbed() {
		return
	}
	if !IsLocalActor(t.session, e.Grabber.GetGameObject()) {
		return
	}

	t.hold.holding = true
	t.log.Info("[GrabTracker] Grab confirmed, IsHoldingObject = true")

	if t.config().AutoEnableOnGrab {
		t.log.Info("[GrabTracker] Auto-enabling laser due to object grab.")
		t.manager().ToggleLaser()
	}
}

// OnRelease clears the hold flag and then force-disables the laser.
func (t *GrabTracker) OnRelease(g *components.Grabber) {
	if g == nil || !IsLocalActor(t.session, g.GetGameObject()) {
		return
	}

	t.hold.holding = false
	t.log.Info("[GrabTracker] Release on %q, IsHoldingObject = false", g.GetGameObject().Name)

	t.manager().ForceDisableLaser()
}

// OnSceneLoaded forgets any hold from the previous scene.
func (t *GrabTracker) OnSceneLoaded() {
	t.hold.holding = false
}
