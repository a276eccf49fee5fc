package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlActions reports which panel controls were used this frame.
type ControlActions struct {
	FlyTo   bool
	ZoomIn  bool
	ZoomOut bool
	NorthUp bool
	Follow  bool // desired follow-me state
}

// ControlsPanel renders the gesture buttons on the right edge.
type ControlsPanel struct {
	x, y    float32
	width   float32
	visible bool
}

// NewControlsPanel creates a controls panel at the given position.
func NewControlsPanel(x, y, width float32) *ControlsPanel {
	return &ControlsPanel{x: x, y: y, width: width}
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Draw renders the panel and returns the triggered actions. following is
// the current follow-me state shown by the checkbox.
func (c *ControlsPanel) Draw(following bool) ControlActions {
	actions := ControlActions{Follow: following}
	if !c.visible {
		return actions
	}

	const rowH, pad = 30, 8
	x, y := c.x, c.y
	w := c.width

	rl.DrawRectangle(int32(x-pad), int32(y-pad), int32(w+2*pad), int32(5*(rowH+pad)+pad), rl.NewColor(0, 0, 0, 160))

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: w, Height: rowH}, "Fly somewhere") {
		actions.FlyTo = true
	}
	y += rowH + pad
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: w/2 - 2, Height: rowH}, "Zoom +") {
		actions.ZoomIn = true
	}
	if gui.Button(rl.Rectangle{X: x + w/2 + 2, Y: y, Width: w/2 - 2, Height: rowH}, "Zoom -") {
		actions.ZoomOut = true
	}
	y += rowH + pad
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: w, Height: rowH}, "North up") {
		actions.NorthUp = true
	}
	y += rowH + pad
	actions.Follow = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: rowH, Height: rowH}, "Follow me", following)

	return actions
}
