package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/mapview/ui"
)

// Draw renders one frame.
func (a *App) Draw() {
	rl.BeginDrawing()

	a.grid.Draw(a.scr, a.cfg.View.GridStep)
	a.markerRnd.Draw(a.scr, a.world)

	center := a.scr.GlobalCenter()
	a.hud.Draw(ui.HUDData{
		CenterX:      center.X,
		CenterY:      center.Y,
		Scale:        a.scr.Scale(),
		AngleDeg:     a.scr.Angle() * 180 / math.Pi,
		FPS:          rl.GetFPS(),
		MarkerCount:  a.world.Count(),
		Following:    a.following,
		Animating:    a.animating,
		ScreenHeight: int32(a.scr.PixelRect().Height()),
	})

	a.applyActions(a.panel.Draw(a.following))

	rl.EndDrawing()
}

// applyActions turns panel interactions into gestures. The panel is
// immediate-mode, so actions surface during drawing.
func (a *App) applyActions(actions ui.ControlActions) {
	if actions.FlyTo {
		a.FlySomewhere()
	}
	if actions.ZoomIn {
		a.ZoomBy(2)
	}
	if actions.ZoomOut {
		a.ZoomBy(0.5)
	}
	if actions.NorthUp {
		a.NorthUp()
	}
	a.SetFollowing(actions.Follow)
}
