package animation

import "github.com/pthm-cable/mapview/geometry"

// Object identifies an animated entity. The map plane is the only object
// the viewer animates today; markers and overlays can join without changes
// to the scheduler.
type Object uint8

const (
	// MapPlane is the map viewport itself.
	MapPlane Object = iota
)

// Property identifies an animated attribute of an object.
type Property uint8

const (
	// Position is the object's center in global map coordinates.
	Position Property = iota
	// Angle is the object's rotation in radians.
	Angle
	// Scale is the object's magnification factor.
	Scale

	numProperties
)

// Properties is a bitmask set of Property values.
type Properties uint8

// With returns the set extended by p.
func (ps Properties) With(p Property) Properties {
	return ps | 1<<p
}

// Has reports whether p is in the set.
func (ps Properties) Has(p Property) bool {
	return ps&(1<<p) != 0
}

// Union returns the combined set.
func (ps Properties) Union(other Properties) Properties {
	return ps | other
}

// Intersects reports whether the two sets share any property.
func (ps Properties) Intersects(other Properties) bool {
	return ps&other != 0
}

// Empty reports whether the set holds no properties.
func (ps Properties) Empty() bool {
	return ps == 0
}

// ValueKind discriminates the variants of a property Value.
type ValueKind uint8

const (
	// PointKind marks a 2D point value.
	PointKind ValueKind = iota
	// ScalarKind marks a float64 value.
	ScalarKind
)

// Value is a tagged union of the types a property can carry. Readers that
// know a property's kind unwrap the expected variant; a kind mismatch
// yields the neutral value.
type Value struct {
	kind   ValueKind
	point  geometry.Point
	scalar float64
}

// PointValue wraps a point.
func PointValue(p geometry.Point) Value {
	return Value{kind: PointKind, point: p}
}

// ScalarValue wraps a scalar.
func ScalarValue(s float64) Value {
	return Value{kind: ScalarKind, scalar: s}
}

// Kind returns the variant tag.
func (v Value) Kind() ValueKind {
	return v.kind
}

// Point unwraps the point variant. Returns the origin for a scalar value.
func (v Value) Point() geometry.Point {
	if v.kind != PointKind {
		return geometry.Point{}
	}
	return v.point
}

// Scalar unwraps the scalar variant. Returns 0 for a point value.
func (v Value) Scalar() float64 {
	if v.kind != ScalarKind {
		return 0
	}
	return v.scalar
}
