package animation

import "github.com/pthm-cable/mapview/geometry"

// Viewport is the read-only screen surface the system needs to assemble a
// viewport rectangle. Satisfied by screen.Screen.
type Viewport interface {
	Converter
	Scale() float64
	Angle() float64
	GlobalCenter() geometry.Point
}

type propertyKey struct {
	obj  Object
	prop Property
}

// entry pairs an animation with its lifecycle bookkeeping so OnStart fires
// exactly once even when a queued group becomes the head later.
type entry struct {
	anim    Animation
	started bool
}

// System is the animation scheduler. It holds a chain of concurrent groups
// — only the head group advances each tick, successors are queued — and a
// leftover property cache bridging the frame between an animation's finish
// and the next external state commit.
//
// All methods must be called from the owning (render) thread.
type System struct {
	chain [][]entry
	cache map[propertyKey]Value
}

// NewSystem creates an independent scheduler instance.
func NewSystem() *System {
	return &System{cache: make(map[propertyKey]Value)}
}

var shared *System

// Shared returns the process-wide scheduler owned by the render subsystem.
func Shared() *System {
	if shared == nil {
		shared = NewSystem()
	}
	return shared
}

// Add places a into the chain. It mixes into the first group whose members
// all tolerate it; with force set, members that conflict but are
// interruptible are forced to their end state (their terminal values go to
// the property cache, so a read-through never snaps back) and evicted to
// make room. If no group accepts it, a new singleton group is queued at the
// tail.
func (s *System) Add(a Animation, force bool) {
	for gi, g := range s.chain {
		kept := make([]entry, 0, len(g))
		canMix := true
		for mi, m := range g {
			if Compatible(m.anim, a) {
				kept = append(kept, m)
				continue
			}
			if force && m.anim.Interruptible() {
				m.anim.Interrupt()
				s.saveProperties(m.anim)
				m.anim.OnFinish()
				continue
			}
			canMix = false
			kept = append(kept, g[mi:]...)
			break
		}
		if canMix {
			a.OnStart()
			s.chain[gi] = append(kept, entry{anim: a, started: true})
			return
		}
		s.chain[gi] = kept
	}
	a.OnStart()
	s.chain = append(s.chain, []entry{{anim: a, started: true}})
}

// Advance steps the head group by dt seconds. Finished members fire
// OnFinish, leave their terminal values in the property cache, and are
// removed; an emptied head group is dropped so the successor runs on the
// next tick.
func (s *System) Advance(dt float64) {
	if len(s.chain) == 0 {
		return
	}
	head := s.chain[0]
	for i := range head {
		if !head[i].started {
			head[i].anim.OnStart()
			head[i].started = true
		}
	}
	kept := head[:0]
	for _, e := range head {
		e.anim.Advance(dt)
		if e.anim.Finished() {
			s.saveProperties(e.anim)
			e.anim.OnFinish()
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) == 0 {
		s.chain = s.chain[1:]
		return
	}
	s.chain[0] = kept
}

// Value resolves the current value of p on o: the head group is scanned in
// insertion order first, then the leftover cache (consumed on first read),
// then the caller's live fallback.
func (s *System) Value(o Object, p Property, fallback Value) Value {
	if len(s.chain) > 0 {
		for _, e := range s.chain[0] {
			if e.anim.HasProperty(o, p) {
				if v, ok := e.anim.Value(o, p); ok {
					return v
				}
			}
		}
	}
	k := propertyKey{obj: o, prop: p}
	if v, ok := s.cache[k]; ok {
		delete(s.cache, k)
		return v
	}
	return fallback
}

// Rect assembles the effective viewport rectangle for this frame, reading
// each map-plane property with the live screen state as fallback.
func (s *System) Rect(v Viewport) geometry.AnyRect {
	scale := s.Value(MapPlane, Scale, ScalarValue(v.Scale())).Scalar()
	angle := s.Value(MapPlane, Angle, ScalarValue(v.Angle())).Scalar()
	pos := s.Value(MapPlane, Position, PointValue(v.GlobalCenter())).Point()

	px := v.PixelRect()
	local := geometry.RectCentered(px.Width()/scale, px.Height()/scale)
	return geometry.AnyRect{Origin: pos, Angle: angle, Local: local}
}

// ActiveFor reports whether any running head-group animation or leftover
// cache entry concerns o. Input handlers use it to gate raw gestures while
// a transition is in flight.
func (s *System) ActiveFor(o Object) bool {
	if len(s.chain) > 0 {
		for _, e := range s.chain[0] {
			if e.anim.HasObject(o) {
				return true
			}
		}
	}
	for k := range s.cache {
		if k.obj == o {
			return true
		}
	}
	return false
}

// saveProperties snapshots a's current values into the leftover cache,
// overwriting stale entries for the same keys.
func (s *System) saveProperties(a Animation) {
	for _, o := range a.Objects() {
		props := a.Properties(o)
		for p := Property(0); p < numProperties; p++ {
			if !props.Has(p) {
				continue
			}
			if v, ok := a.Value(o, p); ok {
				s.cache[propertyKey{obj: o, prop: p}] = v
			}
		}
	}
}
