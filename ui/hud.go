// Package ui renders the heads-up display and the controls panel.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	CenterX, CenterY float64
	Scale            float64
	AngleDeg         float64
	FPS              int32
	MarkerCount      int
	Following        bool
	Animating        bool
	ScreenHeight     int32
}

// HUD renders the main heads-up display.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText("mapview", 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Center: (%.1f, %.1f) | Scale: %.2fx | Angle: %.0f°",
			data.CenterX, data.CenterY, data.Scale, data.AngleDeg),
		10, 35, 16, rl.LightGray,
	)

	status := fmt.Sprintf("Markers: %d | FPS: %d", data.MarkerCount, data.FPS)
	if data.Following {
		status += " | FOLLOW"
	}
	if data.Animating {
		status += " | animating"
	}
	rl.DrawText(status, 10, 55, 16, rl.LightGray)

	rl.DrawText(
		"drag: pan | wheel: zoom | R: rotate | N: north up | G: fly somewhere | F: follow | TAB: panel",
		10, data.ScreenHeight-26, 14, rl.Gray,
	)
}
