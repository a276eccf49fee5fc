// Package animation schedules and advances time-based transitions of map
// state. Gestures build animations from interpolators, the scheduler decides
// whether a new animation mixes with, interrupts, or queues behind running
// ones, and the render loop reads the current effective values each frame.
package animation

// Animation is a time-bounded transformation of one or more
// (object, property) pairs.
type Animation interface {
	// Objects lists the entities the animation touches.
	Objects() []Object
	// HasObject reports whether o is animated.
	HasObject(o Object) bool
	// Properties returns the set of properties driven on o.
	Properties(o Object) Properties
	// HasProperty reports whether p on o is driven.
	HasProperty(o Object, p Property) bool
	// Value returns the current value of p on o. The second result is false
	// when the animation does not drive that property.
	Value(o Object, p Property) (Value, bool)

	// Advance moves the animation forward by dt seconds.
	Advance(dt float64)
	// SetMaxDuration clamps the duration; cascades to children.
	SetMaxDuration(m float64)
	// Duration returns the logical duration in seconds. Time already
	// elapsed inside a running interpolator is not subtracted.
	Duration() float64
	// Finished reports whether the animation has reached its end.
	Finished() bool

	// OnStart is called once, just before the first Advance.
	OnStart()
	// OnFinish is called once, after Finished first returns true and before
	// removal from the scheduler.
	OnFinish()

	// Interruptible reports whether the scheduler may abort the animation
	// to make room.
	Interruptible() bool
	// Mixable reports whether the animation tolerates concurrent peers in
	// the same chain slot.
	Mixable() bool
	// Interrupt forces the animation to its end state immediately, leaving
	// its final property values readable.
	Interrupt()
}

// Compatible reports whether a and b can run concurrently in the same chain
// slot: both must be mixable and their property sets must be disjoint on
// every shared object.
func Compatible(a, b Animation) bool {
	if !a.Mixable() || !b.Mixable() {
		return false
	}
	for _, o := range b.Objects() {
		if !CompatibleWith(a, o, b.Properties(o)) {
			return false
		}
	}
	return true
}

// CompatibleWith reports whether a tolerates a peer driving props on o.
// The peer's mixability is assumed checked by the caller.
func CompatibleWith(a Animation, o Object, props Properties) bool {
	if !a.Mixable() {
		return false
	}
	if !a.HasObject(o) {
		return true
	}
	return !a.Properties(o).Intersects(props)
}
