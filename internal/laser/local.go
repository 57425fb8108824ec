package laser

import (
	"droplaser/internal/components"
	"droplaser/internal/engine"
)

// Session reports how many participants share the game.
type Session interface {
	ParticipantCount() int
}

// OfflineSession is a session with nobody connected.
type OfflineSession struct{}

func (OfflineSession) ParticipantCount() int { return 0 }

// IsSinglePlayer is true for offline sessions and sessions with one participant.
func IsSinglePlayer(s Session) bool {
	return s == nil || s.ParticipantCount() <= 1
}

// IsLocalActor reports whether actor's input and state belong to this process.
// In single-player every actor is local; otherwise the actor needs a
// NetworkView owned by this process.
func IsLocalActor(s Session, actor *engine.GameObject) bool {
	if actor == nil {
		return false
	}
	if IsSinglePlayer(s) {
		return true
	}
	view := engine.GetComponent[*components.NetworkView](actor)
	return view != nil && view.IsMine
}

// FindLocalGrabber returns the first grabber in scene order whose actor is local.
func FindLocalGrabber(scene *engine.Scene, s Session) *components.Grabber {
	if scene == nil {
		return nil
	}
	for _, obj := range scene.GameObjects {
		if obj.Destroyed() {
			continue
		}
		grabber := engine.GetComponent[*components.Grabber](obj)
		if grabber == nil {
			continue
		}
		if IsLocalActor(s, obj) {
			return grabber
		}
	}
	return nil
}
