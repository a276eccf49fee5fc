package app

import "github.com/pthm-cable/mapview/geometry"

func pt(x, y float64) geometry.Point {
	return geometry.Pt(x, y)
}

func dist(a, b geometry.Point) float64 {
	return geometry.Dist(a, b)
}
