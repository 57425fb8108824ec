package game

import (
	"droplaser/internal/components"
	"droplaser/internal/config"
	"droplaser/internal/engine"
	"droplaser/internal/laser"
	"droplaser/internal/logging"
	"droplaser/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	moveSpeed = 4.0
	minHeight = 1.0
	maxHeight = 6.0
	grabReach = 4.0
)

type Game struct {
	World    *world.World
	Renderer *world.Renderer
	Config   *config.Source
	Laser    *laser.System
	Log      *logging.Logger
	Session  laser.Session

	input     Input
	hud       *HUD
	DebugMode bool
}

func New(cfg *config.Source, log *logging.Logger, input Input) *Game {
	g := &Game{
		World:    world.New(),
		Renderer: world.NewRenderer(),
		Config:   cfg,
		Log:      log,
		Session:  laser.OfflineSession{},
		input:    input,
	}
	g.hud = NewHUD(g)
	g.Laser = laser.NewSystem(laser.Deps{
		World:      g.World,
		Config:     cfg.Func(),
		Session:    g.Session,
		Exclusions: laser.DefaultExclusions,
		Log:        log,
	}, input)
	g.Laser.BindSceneManager(g.World.Scenes)
	return g
}

// LoadScene loads the scene file at path; the laser rebinds on load.
func (g *Game) LoadScene(path string) error {
	return g.World.LoadScene(path)
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(1280, 720, "Drop Laser")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	g.hud.Init()

	for !rl.WindowShouldClose() {
		g.Renderer.Camera.Update()
		g.Update(rl.GetFrameTime())
		g.Draw()
	}
}

// Actor is the local player's GameObject, or nil.
func (g *Game) Actor() *engine.GameObject {
	grabber := laser.FindLocalGrabber(g.World.ActiveScene(), g.Session)
	if grabber == nil {
		return nil
	}
	return grabber.GetGameObject()
}

// Update advances one frame: config reload, actor input (grab and release
// fire their events synchronously), laser toggle, then the world.
func (g *Game) Update(deltaTime float32) {
	if g.Config.Poll() {
		g.hud.Notify("Config reloaded")
	}

	if g.input.IsKeyPressed(rl.KeyR) {
		if err := g.World.Reload(); err != nil {
			g.Log.Error("Scene reload failed: %v", err)
			g.hud.Notify("Scene reload failed")
		} else {
			g.hud.Notify("Scene reloaded")
		}
	}

	if g.input.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}

	if actor := g.Actor(); actor != nil {
		g.moveActor(actor, deltaTime)
		g.handleGrab(actor)
	}

	g.Laser.Update()

	g.World.Update(deltaTime)

	if actor := g.Actor(); actor != nil {
		g.Renderer.Follow(actor.WorldPosition())
	}
}

func (g *Game) moveActor(actor *engine.GameObject, deltaTime float32) {
	var dir rl.Vector3
	if g.input.IsKeyDown(rl.KeyW) {
		dir.Z += 1
	}
	if g.input.IsKeyDown(rl.KeyS) {
		dir.Z -= 1
	}
	if g.input.IsKeyDown(rl.KeyA) {
		dir.X += 1
	}
	if g.input.IsKeyDown(rl.KeyD) {
		dir.X -= 1
	}
	if g.input.IsKeyDown(rl.KeyUp) {
		dir.Y += 1
	}
	if g.input.IsKeyDown(rl.KeyDown) {
		dir.Y -= 1
	}
	if dir == (rl.Vector3{}) {
		return
	}

	step := rl.Vector3Scale(rl.Vector3Normalize(dir), moveSpeed*deltaTime)
	pos := rl.Vector3Add(actor.Transform.Position, step)
	pos.Y = rl.Clamp(pos.Y, minHeight, maxHeight)
	actor.Transform.Position = pos
}

// handleGrab picks up the grabbable object under the hold point, or drops
// the held one.
func (g *Game) handleGrab(actor *engine.GameObject) {
	if !g.input.IsKeyPressed(rl.KeyE) {
		return
	}
	grabber := engine.GetComponent[*components.Grabber](actor)
	if grabber == nil {
		return
	}
	if grabber.Grabbed() {
		grabber.Release()
		return
	}
	grabber.Grab(g.GrabTarget(grabber))
}

// GrabTarget is the grabbable object straight below the grabber's hold point.
func (g *Game) GrabTarget(grabber *components.Grabber) *engine.GameObject {
	hit, ok := g.World.Raycast(grabber.HoldPoint(), rl.Vector3{Y: -1}, grabReach)
	if !ok {
		return nil
	}
	root := hit.GameObject.Root()
	if !root.HasTag(world.TagGrabbable) {
		return nil
	}
	return root
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	g.Renderer.Draw(g.World.ActiveScene())
	g.drawHoldMarker()
	g.hud.Draw()
	rl.EndDrawing()
}

// drawHoldMarker shows where a grab would land while hands are empty.
func (g *Game) drawHoldMarker() {
	actor := g.Actor()
	if actor == nil {
		return
	}
	grabber := engine.GetComponent[*components.Grabber](actor)
	if grabber == nil || grabber.Grabbed() {
		return
	}
	rl.BeginMode3D(g.Renderer.Camera.GetRaylibCamera())
	p := grabber.HoldPoint()
	color := rl.Fade(rl.White, 0.4)
	if g.GrabTarget(grabber) != nil {
		color = rl.Lime
	}
	rl.DrawSphereWires(p, 0.08, 6, 6, color)
	if hit, ok := g.World.Raycast(p, rl.Vector3{Y: -1}, grabReach); ok {
		rl.DrawLine3D(p, hit.Point, color)
	}
	rl.EndMode3D()
}
