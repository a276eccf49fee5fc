package animation

import "github.com/pthm-cable/mapview/geometry"

// Follow animates the map plane by running up to three interpolators
// (position, angle, scale) in lock-step. Their durations may differ, so
// attributes can settle at different times; the composite finishes when all
// of them have.
type Follow struct {
	position *PositionInterpolator
	angle    *AngleInterpolator
	scale    *ScaleInterpolator
	props    Properties
}

// NewFollow creates an empty follow animation. Attributes are installed
// with SetMove, SetRotate, and SetScale.
func NewFollow() *Follow {
	return &Follow{}
}

// NewFollowTo creates a follow animation covering every attribute whose
// endpoints differ.
func NewFollowTo(conv Converter, fromPos, toPos geometry.Point, fromAngle, toAngle, fromScale, toScale float64) *Follow {
	f := NewFollow()
	f.SetMove(fromPos, toPos, conv)
	f.SetRotate(fromAngle, toAngle)
	f.SetScale(fromScale, toScale)
	return f
}

// SetMove installs a position interpolation. No-op when from equals to.
func (f *Follow) SetMove(from, to geometry.Point, conv Converter) {
	if from == to {
		return
	}
	f.position = NewPositionInterpolator(from, to, conv)
	f.props = f.props.With(Position)
}

// SetRotate installs an angle interpolation. No-op when from equals to.
// The end angle must already be normalized to the shortest arc from the
// start.
func (f *Follow) SetRotate(from, to float64) {
	if from == to {
		return
	}
	f.angle = NewAngleInterpolator(from, to)
	f.props = f.props.With(Angle)
}

// SetScale installs a scale interpolation. No-op when from equals to.
func (f *Follow) SetScale(from, to float64) {
	if from == to {
		return
	}
	f.scale = NewScaleInterpolator(from, to)
	f.props = f.props.With(Scale)
}

// Objects implements Animation.
func (f *Follow) Objects() []Object {
	return []Object{MapPlane}
}

// HasObject implements Animation.
func (f *Follow) HasObject(o Object) bool {
	return o == MapPlane
}

// Properties implements Animation.
func (f *Follow) Properties(o Object) Properties {
	if o != MapPlane {
		return 0
	}
	return f.props
}

// HasProperty implements Animation.
func (f *Follow) HasProperty(o Object, p Property) bool {
	return o == MapPlane && f.props.Has(p)
}

// Value implements Animation.
func (f *Follow) Value(o Object, p Property) (Value, bool) {
	if o != MapPlane {
		return Value{}, false
	}
	switch p {
	case Position:
		if f.position != nil {
			return PointValue(f.position.Position()), true
		}
	case Angle:
		if f.angle != nil {
			return ScalarValue(f.angle.Angle()), true
		}
	case Scale:
		if f.scale != nil {
			return ScalarValue(f.scale.Scale()), true
		}
	}
	return Value{}, false
}

// Advance implements Animation.
func (f *Follow) Advance(dt float64) {
	if f.position != nil {
		f.position.Advance(dt)
	}
	if f.angle != nil {
		f.angle.Advance(dt)
	}
	if f.scale != nil {
		f.scale.Advance(dt)
	}
}

// SetMaxDuration implements Animation.
func (f *Follow) SetMaxDuration(m float64) {
	if f.position != nil {
		f.position.SetMaxDuration(m)
	}
	if f.angle != nil {
		f.angle.SetMaxDuration(m)
	}
	if f.scale != nil {
		f.scale.SetMaxDuration(m)
	}
}

// Duration implements Animation; it reports the longest attribute duration.
func (f *Follow) Duration() float64 {
	var d float64
	if f.position != nil && f.position.Duration() > d {
		d = f.position.Duration()
	}
	if f.angle != nil && f.angle.Duration() > d {
		d = f.angle.Duration()
	}
	if f.scale != nil && f.scale.Duration() > d {
		d = f.scale.Duration()
	}
	return d
}

// Finished implements Animation; an empty follow is finished immediately.
func (f *Follow) Finished() bool {
	if f.position != nil && !f.position.Finished() {
		return false
	}
	if f.angle != nil && !f.angle.Finished() {
		return false
	}
	if f.scale != nil && !f.scale.Finished() {
		return false
	}
	return true
}

// OnStart implements Animation.
func (f *Follow) OnStart() {}

// OnFinish implements Animation.
func (f *Follow) OnFinish() {}

// Interruptible implements Animation.
func (f *Follow) Interruptible() bool {
	return true
}

// Mixable implements Animation. A follow drives the map plane exclusively.
func (f *Follow) Mixable() bool {
	return false
}

// Interrupt implements Animation; every attribute jumps to its end value.
func (f *Follow) Interrupt() {
	if f.position != nil {
		f.position.Finish()
	}
	if f.angle != nil {
		f.angle.Finish()
	}
	if f.scale != nil {
		f.scale.Finish()
	}
}
