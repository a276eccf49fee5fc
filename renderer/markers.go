package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/mapview/geometry"
	"github.com/pthm-cable/mapview/markers"
	"github.com/pthm-cable/mapview/screen"
)

// MarkerRenderer draws placemarks and the follow-me target.
type MarkerRenderer struct {
	place   rl.Color
	outline rl.Color
	target  rl.Color
}

// NewMarkerRenderer creates a marker renderer with the default palette.
func NewMarkerRenderer() *MarkerRenderer {
	return &MarkerRenderer{
		place:   rl.NewColor(224, 122, 95, 255),
		outline: rl.NewColor(24, 26, 34, 255),
		target:  rl.NewColor(129, 178, 154, 255),
	}
}

// Draw renders every marker visible in the viewport. Markers a little
// outside the pixel rect are drawn too so they do not pop at the edges.
func (m *MarkerRenderer) Draw(scr *screen.Screen, world *markers.World) {
	const margin = 16
	px := scr.PixelRect()
	bounds := geometry.NewRect(px.Min.X-margin, px.Min.Y-margin, px.Max.X+margin, px.Max.Y+margin)

	world.Each(func(pos geometry.Point, heading float64, kind markers.Kind) {
		p := scr.GlobalToPixel(pos)
		if !bounds.Contains(p) {
			return
		}
		switch kind {
		case markers.KindTarget:
			m.drawTarget(p, heading-scr.Angle())
		default:
			rl.DrawCircleV(toVector2(p), 6, m.outline)
			rl.DrawCircleV(toVector2(p), 4.5, m.place)
		}
	})
}

// drawTarget renders the follow-me target as a triangle pointing along its
// on-screen heading.
func (m *MarkerRenderer) drawTarget(p geometry.Point, angle float64) {
	const size = 10
	tip := pointAt(p, angle, size)
	left := pointAt(p, angle+2.5, size*0.8)
	right := pointAt(p, angle-2.5, size*0.8)
	rl.DrawTriangle(toVector2(tip), toVector2(left), toVector2(right), m.target)
}

func pointAt(p geometry.Point, angle, dist float64) geometry.Point {
	return geometry.Pt(p.X+math.Cos(angle)*dist, p.Y+math.Sin(angle)*dist)
}
