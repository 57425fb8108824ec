package game

import (
	"fmt"
	"time"

	"droplaser/internal/config"
	"droplaser/internal/laser"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorBgDark    = rl.NewColor(22, 22, 30, 230)
	colorBgElement = rl.NewColor(36, 36, 48, 255)
	colorText      = rl.NewColor(200, 200, 215, 255)
	colorAccent    = rl.NewColor(99, 102, 241, 255)
)

const noticeDuration = 3 * time.Second

// HUD draws the laser status panel and a status bar for transient notices.
type HUD struct {
	game *Game

	notice   string
	noticeAt time.Time
}

func NewHUD(g *Game) *HUD {
	return &HUD{game: g}
}

// Init applies the panel style. It needs an open window.
func (h *HUD) Init() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// Notify shows msg in the status bar for a few seconds.
func (h *HUD) Notify(msg string) {
	h.notice = msg
	h.noticeAt = time.Now()
}

// Lines is the panel's text, one entry per row.
func (h *HUD) Lines() []string {
	g := h.game
	cfg := g.Config.Snapshot()

	state := "none"
	beam := "-"
	if ctrl := g.Laser.Manager().Controller(); ctrl != nil {
		state = ctrl.State().String()
		if ctrl.Line().Enabled {
			geom := ctrl.Geometry()
			target := "fallback"
			if geom.Hit {
				target = "surface"
			}
			beam = fmt.Sprintf("%.2fm (%s)", geom.Length(), target)
		}
	}

	color := "from grab beam"
	if cfg.UseCustomColor {
		color = cfg.CustomColor.Hex()
	}

	return []string{
		fmt.Sprintf("Laser: %s", state),
		fmt.Sprintf("Holding: %t", g.Laser.Hold.IsHoldingObject()),
		fmt.Sprintf("Beam: %s", beam),
		fmt.Sprintf("Color: %s", color),
		fmt.Sprintf("Width: %.3f -> %.3f", cfg.StartWidth, cfg.EndWidth),
		fmt.Sprintf("Auto-enable on grab: %t", cfg.AutoEnableOnGrab),
		"",
		"Right-drag orbit, wheel zoom, F1 debug",
		fmt.Sprintf("WASD move, Up/Down height, E grab, %s laser, R reload", config.KeyName(cfg.ToggleKey)),
	}
}

func (h *HUD) Draw() {
	lines := h.Lines()
	const rowH = 20
	panel := rl.Rectangle{X: 10, Y: 10, Width: 440, Height: float32(24 + rowH*len(lines) + 8)}
	gui.Panel(panel, "Drop Laser")
	for i, line := range lines {
		gui.Label(rl.Rectangle{X: panel.X + 10, Y: panel.Y + 28 + float32(i*rowH), Width: panel.Width - 20, Height: rowH}, line)
	}

	if h.game.DebugMode {
		h.drawDebug(panel.Y + panel.Height + 10)
	}

	if h.notice != "" && time.Since(h.noticeAt) < noticeDuration {
		w, ht := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
		gui.StatusBar(rl.Rectangle{X: 0, Y: ht - 24, Width: w, Height: 24}, h.notice)
	}
}

func (h *HUD) drawDebug(y float32) {
	rl.DrawFPS(10, int32(y))
	ctrl := h.game.Laser.Manager().Controller()
	if ctrl == nil {
		return
	}
	geom := ctrl.Geometry()
	rl.DrawText(fmt.Sprintf("start (%.2f, %.2f, %.2f)", geom.Start.X, geom.Start.Y, geom.Start.Z), 10, int32(y)+22, 16, rl.Green)
	rl.DrawText(fmt.Sprintf("end   (%.2f, %.2f, %.2f)", geom.End.X, geom.End.Y, geom.End.Z), 10, int32(y)+40, 16, rl.Green)
	names := laser.DefaultExclusions.Names()
	rl.DrawText(fmt.Sprintf("excluded: %v", names), 10, int32(y)+58, 16, rl.Lime)
}
