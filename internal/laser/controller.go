package laser

import (
	"errors"
	"slices"

	"droplaser/internal/components"
	"droplaser/internal/engine"
	"droplaser/internal/logging"
)

var ErrLaserDisabled = errors.New("laser: disabled by config")

// State is the laser's logical on/off state.
type State int

const (
	Off State = iota
	On
)

func (s State) String() string {
	if s == On {
		return "ON"
	}
	return "OFF"
}

const (
	ControllerName = "DropLaserController"
	LightName      = "DropLaserLight"
)

// Deps are the collaborators a controller needs.
type Deps struct {
	World      engine.WorldAccess
	Config     ConfigSource
	Session    Session
	Exclusions ExclusionSet
	Log        *logging.Logger
}

// Controller owns one beam: a line on its own GameObject and a point light on
// a child. While On it re-aims the beam under the local actor's held object
// every frame.
type Controller struct {
	engine.BaseComponent

	deps     Deps
	resolver *Resolver
	active   bool

	line  *components.LineRenderer
	light *components.PointLight

	grabber   *components.Grabber
	reference *components.LineRenderer

	geometry BeamGeometry
}

// NewController builds the beam's GameObjects, spawns them into the world
// and starts them. The beam starts Off.
func NewController(deps Deps) (*Controller, error) {
	if deps.Config == nil {
		deps.Config = StaticConfig(DefaultConfig())
	}
	cfg := deps.Config()
	if !cfg.EnableLaser {
		return nil, ErrLaserDisabled
	}

	c := &Controller{
		deps:     deps,
		resolver: NewResolver(WorldQuery{World: deps.World}),
	}

	root := engine.NewGameObject(ControllerName)
	c.line = newBeamLine(cfg)
	root.AddComponent(c.line)
	root.AddComponent(c)

	lightObj := engine.NewGameObject(LightName)
	c.light = newBeamLight(cfg)
	lightObj.AddComponent(c.light)
	root.AddChild(lightObj)

	c.log().Info("Awake called")

	if deps.World != nil {
		deps.World.SpawnObject(root)
		deps.World.SpawnObject(lightObj)
	}
	root.Start()
	lightObj.Start()
	return c, nil
}

func newBeamLine(cfg Config) *components.LineRenderer {
	mat := components.NewMaterial("DropLaser-Unlit")
	mat.DisableKeyword("_ALPHATEST_ON")
	mat.EnableKeyword("_ALPHABLEND_ON")
	mat.DisableKeyword("_ALPHAPREMULTIPLY_ON")
	mat.RenderQueue = 3000

	line := components.NewLineRenderer(mat)
	line.StartWidth = cfg.StartWidth
	line.EndWidth = cfg.EndWidth
	line.StartColor = components.Red
	line.EndColor = components.Red
	line.Enabled = false
	return line
}

func newBeamLight(cfg Config) *components.PointLight {
	light := components.NewPointLight()
	light.Range = cfg.LightRange
	light.Intensity = cfg.LightIntensity
	light.Enabled = false
	return light
}

func (c *Controller) log() *logging.Logger {
	return c.deps.Log
}

// Start looks for the local actor's grab beam to copy its appearance.
func (c *Controller) Start() {
	c.log().Info("Start called")
	c.findBeam()
}

func (c *Controller) findBeam() bool {
	var scene *engine.Scene
	if c.deps.World != nil {
		scene = c.deps.World.ActiveScene()
	}
	c.grabber = FindLocalGrabber(scene, c.deps.Session)
	if c.grabber == nil {
		c.log().Warning("Could not find local player's Grabber!")
		return false
	}
	if IsSinglePlayer(c.deps.Session) {
		c.log().Info("Singleplayer detected, attached to first Grabber.")
	} else {
		c.log().Info("Multiplayer detected, attached to local player's Grabber.")
	}

	c.reference = c.grabber.BeamRenderer()
	if c.reference == nil {
		c.log().Warning("Grab beam has no LineRenderer!")
		return false
	}
	c.log().Info("Grab beam LineRenderer found!")
	return true
}

func (c *Controller) State() State {
	if c.active {
		return On
	}
	return Off
}

func (c *Controller) Active() bool {
	return c.active
}

// Toggle flips the laser and shows or hides the beam to match.
func (c *Controller) Toggle() {
	c.active = !c.active
	c.line.Enabled = c.active
	c.light.Enabled = c.active
	c.log().Info("Laser toggled %s", c.State())
}

// ForceDisable turns the laser Off. Calling it while Off changes nothing.
func (c *Controller) ForceDisable() {
	c.line.Enabled = false
	c.light.Enabled = false
	c.active = false
}

// Line and Light expose the beam's render primitives.
func (c *Controller) Line() *components.LineRenderer { return c.line }

func (c *Controller) Light() *components.PointLight { return c.light }

// Geometry is the last beam path drawn.
func (c *Controller) Geometry() BeamGeometry { return c.geometry }

// Destroyed is true once the controller's GameObject is gone.
func (c *Controller) Destroyed() bool {
	g := c.GetGameObject()
	return g == nil || g.Destroyed()
}

// Destroy removes the controller and its light from the world.
func (c *Controller) Destroy() {
	g := c.GetGameObject()
	if g == nil || g.Destroyed() {
		return
	}
	if c.deps.World != nil && g.Scene != nil {
		c.deps.World.Destroy(g)
		return
	}
	// Never spawned into a scene: tear down in place.
	engine.NewScene("").Destroy(g)
}

// OnDestroy implements engine.Destroyable.
func (c *Controller) OnDestroy() {
	c.active = false
	c.log().Info("OnDestroy called, controller cleaned up.")
}

func (c *Controller) Update(deltaTime float32) {
	if !c.active {
		return
	}
	c.updateBeam()
}

func (c *Controller) referencesAlive() bool {
	if c.grabber == nil || c.reference == nil || c.grabber.BeamRenderer() != c.reference {
		if !c.findBeam() {
			return false
		}
	}
	if c.grabber.GetGameObject() == nil || c.grabber.GetGameObject().Destroyed() {
		return false
	}
	return c.line != nil && c.light != nil && c.light.GetGameObject() != nil && !c.light.GetGameObject().Destroyed()
}

func (c *Controller) updateBeam() {
	if !c.referencesAlive() {
		c.log().Warning("Critical references lost. Cannot update beam.")
		c.hide()
		return
	}

	cfg := c.deps.Config()
	beamMat := c.reference.Material
	dropMat := c.line.Material

	// Copy visual appearance from the grab beam
	if beamMat.HasMainTexture() {
		dropMat.MainTexture = beamMat.MainTexture
		dropMat.TextureOffset = beamMat.TextureOffset
		dropMat.TextureScale = beamMat.TextureScale
	}

	finalColor := ComputeColor(SampleFromMaterial(beamMat), cfg)
	c.line.StartColor = finalColor.WithAlpha(c.line.StartColor.A)
	c.line.EndColor = finalColor.WithAlpha(c.line.EndColor.A)
	dropMat.SetColor(components.PropColor, finalColor)
	if beamMat != nil {
		dropMat.ShaderKeywords = slices.Clone(beamMat.ShaderKeywords)
	}

	c.line.StartWidth = cfg.StartWidth
	c.line.EndWidth = cfg.EndWidth
	c.light.Intensity = cfg.LightIntensity
	c.light.Range = cfg.LightRange

	held := c.grabber.HeldObject()
	if held == nil {
		c.hide()
		return
	}

	geom, err := c.resolver.Resolve(held, c.deps.Exclusions, cfg.MaxDistance)
	if err != nil {
		c.log().Warning("Beam target lost: %v", err)
		c.hide()
		return
	}
	c.geometry = geom

	c.line.Enabled = true
	c.line.SetPosition(0, geom.Start)
	c.line.SetPosition(1, geom.End)

	c.light.SetPosition(geom.End)
	c.light.Color = finalColor.WithAlpha(1)
	c.light.Enabled = true
}

func (c *Controller) hide() {
	if c.line != nil {
		c.line.Enabled = false
	}
	if c.light != nil {
		c.light.Enabled = false
	}
}
