// Package geometry provides the 2D primitives shared by the screen and
// animation packages: points in global map coordinates, axis-aligned and
// oriented rectangles, and linear interpolation helpers.
package geometry

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a 2D point or vector in global map coordinates.
type Point = r2.Vec

// Pt is a convenience constructor for a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Dist returns the euclidean distance between two points.
func Dist(a, b Point) float64 {
	return r2.Norm(b.Sub(a))
}

// Lerp linearly interpolates between two scalars. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpPoint linearly interpolates between two points. t is not clamped.
func LerpPoint(a, b Point, t float64) Point {
	return a.Add(b.Sub(a).Scale(t))
}

// Clamp restricts x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
