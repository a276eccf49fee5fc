// Package renderer draws the map plane and its markers with raylib.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/mapview/geometry"
	"github.com/pthm-cable/mapview/screen"
)

// GridRenderer draws the background graticule of the map plane.
type GridRenderer struct {
	background rl.Color
	line       rl.Color
	axis       rl.Color
}

// NewGridRenderer creates a grid renderer with the default palette.
func NewGridRenderer() *GridRenderer {
	return &GridRenderer{
		background: rl.NewColor(24, 26, 34, 255),
		line:       rl.NewColor(52, 56, 70, 255),
		axis:       rl.NewColor(96, 104, 128, 255),
	}
}

// Draw renders the background and the graticule lines visible in the
// current viewport. step is the line spacing in global units.
func (g *GridRenderer) Draw(scr *screen.Screen, step float64) {
	rl.ClearBackground(g.background)
	if step <= 0 {
		return
	}

	// Bounding box of the (possibly rotated) viewport in global coords.
	corners := scr.GlobalRect().Corners()
	minX, minY := corners[0].X, corners[0].Y
	maxX, maxY := minX, minY
	for _, c := range corners[1:] {
		minX = math.Min(minX, c.X)
		minY = math.Min(minY, c.Y)
		maxX = math.Max(maxX, c.X)
		maxY = math.Max(maxY, c.Y)
	}

	for x := math.Floor(minX/step) * step; x <= maxX; x += step {
		color := g.line
		if x == 0 {
			color = g.axis
		}
		g.drawLine(scr, geometry.Pt(x, minY), geometry.Pt(x, maxY), color)
	}
	for y := math.Floor(minY/step) * step; y <= maxY; y += step {
		color := g.line
		if y == 0 {
			color = g.axis
		}
		g.drawLine(scr, geometry.Pt(minX, y), geometry.Pt(maxX, y), color)
	}
}

func (g *GridRenderer) drawLine(scr *screen.Screen, from, to geometry.Point, color rl.Color) {
	a := scr.GlobalToPixel(from)
	b := scr.GlobalToPixel(to)
	rl.DrawLineV(toVector2(a), toVector2(b), color)
}

func toVector2(p geometry.Point) rl.Vector2 {
	return rl.Vector2{X: float32(p.X), Y: float32(p.Y)}
}
