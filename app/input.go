package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/mapview/animation"
)

// HandleInput processes one frame of keyboard and mouse input.
func (a *App) HandleInput() {
	if rl.IsKeyPressed(rl.KeyTab) {
		a.panel.Toggle()
	}

	// Window resize
	if rl.IsWindowResized() {
		w := float64(rl.GetScreenWidth())
		h := float64(rl.GetScreenHeight())
		a.scr.Resize(w, h)
	}

	// Drag panning moves the screen directly. While a transition is in
	// flight the gesture is ignored so the two do not fight over the
	// viewport.
	if rl.IsMouseButtonDown(rl.MouseLeftButton) && !a.anims.ActiveFor(animation.MapPlane) {
		d := rl.GetMouseDelta()
		if d.X != 0 || d.Y != 0 {
			a.scr.Move(float64(-d.X), float64(-d.Y))
		}
	}

	// Animated zoom toward the current center
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.ZoomBy(math.Pow(1.25, float64(wheel)))
	}
	if rl.IsKeyPressed(rl.KeyEqual) {
		a.ZoomBy(2)
	}
	if rl.IsKeyPressed(rl.KeyMinus) {
		a.ZoomBy(0.5)
	}

	if rl.IsKeyPressed(rl.KeyR) {
		a.RotateBy(math.Pi / 2)
	}
	if rl.IsKeyPressed(rl.KeyN) {
		a.NorthUp()
	}
	if rl.IsKeyPressed(rl.KeyG) {
		a.FlySomewhere()
	}
	if rl.IsKeyPressed(rl.KeyF) {
		a.SetFollowing(!a.following)
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		a.scr.SetCenter(pt(a.cfg.View.CenterX, a.cfg.View.CenterY))
		a.scr.SetAngle(0)
		a.scr.SetScale(a.cfg.View.Scale)
	}
}
