// Package screen provides the viewport converter between global map
// coordinates and screen pixels.
package screen

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/mapview/geometry"
)

// Screen holds the viewport state: the global center, the map rotation
// angle, the magnification scale, and the pixel dimensions. Scale is in
// pixels per global unit (1.0 = 1:1, 2.0 = 2x magnification).
type Screen struct {
	center geometry.Point
	angle  float64
	scale  float64

	pixelW, pixelH float64

	minScale, maxScale float64
}

// New creates a screen of the given pixel size centered on the origin at
// 1:1 scale.
func New(pixelW, pixelH float64) *Screen {
	return &Screen{
		scale:    1.0,
		pixelW:   pixelW,
		pixelH:   pixelH,
		minScale: 0.05,
		maxScale: 64.0,
	}
}

// SetScaleLimits sets the clamp range applied by SetScale and SetFromRect.
func (s *Screen) SetScaleLimits(min, max float64) {
	s.minScale = min
	s.maxScale = max
	s.scale = geometry.Clamp(s.scale, min, max)
}

// PixelRect returns the viewport rectangle in pixel coordinates.
func (s *Screen) PixelRect() geometry.Rect {
	return geometry.NewRect(0, 0, s.pixelW, s.pixelH)
}

// GlobalToPixel converts a global point to pixel coordinates.
func (s *Screen) GlobalToPixel(g geometry.Point) geometry.Point {
	d := r2.Rotate(g.Sub(s.center), -s.angle, geometry.Point{})
	return d.Scale(s.scale).Add(geometry.Pt(s.pixelW/2, s.pixelH/2))
}

// PixelToGlobal converts a pixel point to global coordinates.
func (s *Screen) PixelToGlobal(p geometry.Point) geometry.Point {
	d := p.Sub(geometry.Pt(s.pixelW/2, s.pixelH/2)).Scale(1 / s.scale)
	return r2.Rotate(d, s.angle, geometry.Point{}).Add(s.center)
}

// GlobalCenter returns the global point at the viewport center.
func (s *Screen) GlobalCenter() geometry.Point {
	return s.center
}

// Angle returns the map rotation in radians.
func (s *Screen) Angle() float64 {
	return s.angle
}

// Scale returns the magnification.
func (s *Screen) Scale() float64 {
	return s.scale
}

// SetCenter moves the viewport center to a global point.
func (s *Screen) SetCenter(c geometry.Point) {
	s.center = c
}

// SetAngle sets the map rotation in radians.
func (s *Screen) SetAngle(a float64) {
	s.angle = a
}

// SetScale sets the magnification, clamped to the scale limits.
func (s *Screen) SetScale(scale float64) {
	s.scale = geometry.Clamp(scale, s.minScale, s.maxScale)
}

// Move pans the viewport by a delta in screen pixels, honoring the current
// rotation.
func (s *Screen) Move(dxPx, dyPx float64) {
	d := r2.Rotate(geometry.Pt(dxPx/s.scale, dyPx/s.scale), s.angle, geometry.Point{})
	s.center = s.center.Add(d)
}

// Resize updates the pixel dimensions.
func (s *Screen) Resize(pixelW, pixelH float64) {
	s.pixelW = pixelW
	s.pixelH = pixelH
}

// GlobalRect returns the current viewport as an oriented rectangle in
// global coordinates.
func (s *Screen) GlobalRect() geometry.AnyRect {
	return geometry.AnyRect{
		Origin: s.center,
		Angle:  s.angle,
		Local:  geometry.RectCentered(s.pixelW/s.scale, s.pixelH/s.scale),
	}
}

// SetFromRect commits an oriented rectangle produced by the animation
// read path back into the viewport state. The scale is recovered from the
// ratio of pixel to local width and clamped.
func (s *Screen) SetFromRect(r geometry.AnyRect) {
	s.center = r.Origin
	s.angle = r.Angle
	if w := r.Local.Width(); w > 0 {
		s.SetScale(s.pixelW / w)
	}
}
