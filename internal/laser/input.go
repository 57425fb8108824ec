package laser

import (
	"droplaser/internal/components"
	"droplaser/internal/engine"
	"droplaser/internal/logging"
)

// Keyboard reports key-press edges for the current frame.
type Keyboard interface {
	IsKeyPressed(key int32) bool
}

// InputHandler turns the toggle key into laser toggles for the local actor.
type InputHandler struct {
	keyboard Keyboard
	hold     *HoldState
	manager  func() *Manager
	config   ConfigSource
	session  Session
	log      *logging.Logger
}

func NewInputHandler(keyboard Keyboard, hold *HoldState, manager func() *Manager, config ConfigSource, session Session, log *logging.Logger) *InputHandler {
	return &InputHandler{
		keyboard: keyboard,
		hold:     hold,
		manager:  manager,
		config:   config,
		session:  session,
		log:      log,
	}
}

// HandleInput checks the toggle key for actor and reports whether a toggle
// was requested. Presses while not holding an object are ignored.
func (h *InputHandler) HandleInput(actor *engine.GameObject) bool {
	if h.keyboard == nil || !IsLocalActor(h.session, actor) {
		return false
	}
	if !h.keyboard.IsKeyPressed(h.config().ToggleKey) {
		return false
	}

	h.log.Info("[Input] Toggle key pressed (singleplayer: %t)", IsSinglePlayer(h.session))
	// Settles an object destroyed since the last frame before the hold check.
	if g := engine.GetComponent[*components.Grabber](actor); g != nil {
		g.HeldObject()
	}
	if !h.hold.IsHoldingObject() {
		h.log.Info("[Input] Toggle key pressed but not holding object, ignoring toggle.")
		return false
	}

	h.manager().ToggleLaser()
	return true
}
