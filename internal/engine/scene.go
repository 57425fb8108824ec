package engine

// Scene holds a flat list of every GameObject in it, children included.
// Hierarchy is expressed through GameObject.Parent/Children.
type Scene struct {
	Name        string
	GameObjects []*GameObject
	uidMap      map[uint64]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.uidMap[g.UID] = g
}

// RemoveGameObject removes g and all of its descendants from the scene.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for _, child := range g.Children {
		s.RemoveGameObject(child)
	}
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			break
		}
	}
	delete(s.uidMap, g.UID)
	if g.Scene == s {
		g.Scene = nil
	}
}

// Destroy tears g and its descendants down: components implementing
// Destroyable are notified, the objects are marked destroyed and removed.
func (s *Scene) Destroy(g *GameObject) {
	markDestroyed(g)
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
	s.RemoveGameObject(g)
}

func markDestroyed(g *GameObject) {
	if g.destroyed {
		return
	}
	for _, child := range g.Children {
		markDestroyed(child)
	}
	for _, c := range g.components {
		if d, ok := c.(Destroyable); ok {
			d.OnDestroy()
		}
	}
	g.destroyed = true
	g.Active = false
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}

// SceneManager owns the active scene and announces scene loads.
type SceneManager struct {
	active      *Scene
	SceneLoaded EventWithArg[*Scene]
}

func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

func (m *SceneManager) Active() *Scene {
	return m.active
}

// Load makes s the active scene, starts it and fires SceneLoaded once.
func (m *SceneManager) Load(s *Scene) {
	m.active = s
	s.Start()
	m.SceneLoaded.Invoke(s)
}
