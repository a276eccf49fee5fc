package geometry

import "gonum.org/v1/gonum/spatial/r2"

// Rect is an axis-aligned rectangle with Min at the top-left corner
// (screen convention: y grows downward).
type Rect struct {
	Min, Max Point
}

// NewRect constructs a rectangle from its corner coordinates.
func NewRect(minX, minY, maxX, maxY float64) Rect {
	return Rect{Min: Pt(minX, minY), Max: Pt(maxX, maxY)}
}

// RectCentered constructs a rectangle of the given size centered at the origin.
func RectCentered(width, height float64) Rect {
	return NewRect(-width/2, -height/2, width/2, height/2)
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return r.Min.Add(r.Max).Scale(0.5)
}

// Contains reports whether p lies inside the rectangle (inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Scaled returns the rectangle scaled by f about its center.
func (r Rect) Scaled(f float64) Rect {
	c := r.Center()
	return Rect{
		Min: c.Add(r.Min.Sub(c).Scale(f)),
		Max: c.Add(r.Max.Sub(c).Scale(f)),
	}
}

// AnyRect is a rectangle with an arbitrary rotation: a local axis-aligned
// rect placed at Origin and rotated around it by Angle radians.
type AnyRect struct {
	Origin Point
	Angle  float64
	Local  Rect
}

// GlobalCenter returns the center of the rectangle in global coordinates.
func (a AnyRect) GlobalCenter() Point {
	return a.ToGlobal(a.Local.Center())
}

// ToGlobal converts a point from the rectangle's local frame to global
// coordinates.
func (a AnyRect) ToGlobal(p Point) Point {
	return r2.Rotate(a.Origin.Add(p), a.Angle, a.Origin)
}

// Corners returns the four global corner points in local
// (min,min), (max,min), (max,max), (min,max) order.
func (a AnyRect) Corners() [4]Point {
	l := a.Local
	return [4]Point{
		a.ToGlobal(l.Min),
		a.ToGlobal(Pt(l.Max.X, l.Min.Y)),
		a.ToGlobal(l.Max),
		a.ToGlobal(Pt(l.Min.X, l.Max.Y)),
	}
}
