package laser

import (
	"droplaser/internal/components"
	"droplaser/internal/engine"
)

type grabberBinding struct {
	grabber *components.Grabber
	grab    engine.ListenerID
	release engine.ListenerID
}

// System wires the laser into a running game: it owns the hold state, the
// grab tracker, the input handler and the lazily created Manager.
type System struct {
	deps Deps

	Hold    *HoldState
	Tracker *GrabTracker
	Input   *InputHandler

	manager  *Manager
	bindings []grabberBinding
}

func NewSystem(deps Deps, keyboard Keyboard) *System {
	if deps.Config == nil {
		deps.Config = StaticConfig(DefaultConfig())
	}
	if deps.Exclusions.Len() == 0 {
		deps.Exclusions = DefaultExclusions
	}
	s := &System{
		deps: deps,
		Hold: &HoldState{},
	}
	s.Tracker = NewGrabTracker(s.Hold, s.Manager, deps.Config, deps.Session, deps.Log)
	s.Input = NewInputHandler(keyboard, s.Hold, s.Manager, deps.Config, deps.Session, deps.Log)
	return s
}

// Manager returns the system's manager, creating it on first use.
func (s *System) Manager() *Manager {
	if s.manager == nil {
		s.manager = NewManager(func() (*Controller, error) {
			return NewController(s.deps)
		}, s.deps.Log)
	}
	return s.manager
}

// BindScene subscribes the tracker to every grabber in scene. Grabbers from a
// previously bound scene are unsubscribed first.
func (s *System) BindScene(scene *engine.Scene) {
	s.unbind()
	if scene == nil {
		return
	}
	for _, obj := range scene.GameObjects {
		g := engine.GetComponent[*components.Grabber](obj)
		if g == nil {
			continue
		}
		s.bindings = append(s.bindings, grabberBinding{
			grabber: g,
			grab:    g.GrabConfirmed.AddListener(s.Tracker.OnGrab),
			release: g.Released.AddListener(s.Tracker.OnRelease),
		})
	}
	s.deps.Log.Info("Bound to %d grabber(s) in scene %q", len(s.bindings), scene.Name)
}

func (s *System) unbind() {
	for _, b := range s.bindings {
		b.grabber.GrabConfirmed.RemoveListener(b.grab)
		b.grabber.Released.RemoveListener(b.release)
	}
	s.bindings = nil
}

// BindSceneManager resets the laser on every scene load and rebinds to the
// new scene's grabbers.
func (s *System) BindSceneManager(sm *engine.SceneManager) engine.ListenerID {
	return sm.SceneLoaded.AddListener(s.OnSceneLoaded)
}

func (s *System) OnSceneLoaded(scene *engine.Scene) {
	s.Manager().Reset()
	s.Tracker.OnSceneLoaded()
	s.BindScene(scene)
}

// Update polls the toggle key for the local actor. It runs once per frame,
// after grab input and before the scene update.
func (s *System) Update() bool {
	var scene *engine.Scene
	if s.deps.World != nil {
		scene = s.deps.World.ActiveScene()
	}
	g := FindLocalGrabber(scene, s.deps.Session)
	if g == nil {
		return false
	}
	return s.Input.HandleInput(g.GetGameObject())
}
