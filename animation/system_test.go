package animation

import (
	"math"
	"testing"

	"github.com/pthm-cable/mapview/geometry"
)

// stubViewport extends the identity converter with live screen state for
// read-through fallbacks.
type stubViewport struct {
	stubConverter
	center geometry.Point
	angle  float64
	scale  float64
}

func (v stubViewport) GlobalCenter() geometry.Point { return v.center }
func (v stubViewport) Angle() float64               { return v.angle }
func (v stubViewport) Scale() float64               { return v.scale }

func testViewport() stubViewport {
	return stubViewport{stubConverter: stubConverter{w: 1000, h: 1000}, scale: 1}
}

func pan(conv Converter, from, to geometry.Point) *Follow {
	f := NewFollow()
	f.SetMove(from, to, conv)
	return f
}

func TestSystemReadThroughFallback(t *testing.T) {
	s := NewSystem()

	v := s.Value(MapPlane, Position, PointValue(geometry.Pt(3, 4)))
	if v.Point() != geometry.Pt(3, 4) {
		t.Error("an idle system must return the caller's live state")
	}
	if s.ActiveFor(MapPlane) {
		t.Error("idle system should report no activity")
	}
}

func TestSystemRunsSingleAnimation(t *testing.T) {
	s := NewSystem()
	conv := testViewport()

	s.Add(pan(conv, geometry.Pt(0, 0), geometry.Pt(500, 0)), false)
	if !s.ActiveFor(MapPlane) {
		t.Fatal("animation should be active")
	}

	s.Advance(0.0357)
	v := s.Value(MapPlane, Position, PointValue(geometry.Point{}))
	if math.Abs(v.Point().X-249.9) > 1e-6 {
		t.Errorf("position.X = %v, want 249.9", v.Point().X)
	}
}

func TestSystemCacheConsumedOnce(t *testing.T) {
	s := NewSystem()
	conv := testViewport()

	s.Add(pan(conv, geometry.Pt(0, 0), geometry.Pt(500, 0)), false)
	s.Advance(1) // well past the ~0.071 s duration

	if !s.ActiveFor(MapPlane) {
		t.Fatal("leftover cache entry should keep the object active")
	}

	// First read bridges the handoff frame with the terminal value.
	v := s.Value(MapPlane, Position, PointValue(geometry.Pt(-1, -1)))
	if math.Abs(v.Point().X-500) > 1e-9 {
		t.Errorf("first read = %v, want cached terminal 500", v.Point().X)
	}

	// Second read falls through to the live state.
	v = s.Value(MapPlane, Position, PointValue(geometry.Pt(-1, -1)))
	if v.Point() != geometry.Pt(-1, -1) {
		t.Errorf("second read = %v, want the fallback", v.Point())
	}
	if s.ActiveFor(MapPlane) {
		t.Error("consumed cache leaves the system idle")
	}
}

func TestSystemInterruptionHandoff(t *testing.T) {
	s := NewSystem()
	conv := testViewport()

	a := pan(conv, geometry.Pt(0, 0), geometry.Pt(500, 0))
	s.Add(a, false)
	s.Advance(0.036)

	// A force-add of a conflicting pan interrupts A; A's terminal value is
	// cached, B takes over the running slot.
	b := pan(conv, geometry.Pt(252, 0), geometry.Pt(0, 500))
	s.Add(b, true)

	if !a.Finished() {
		t.Fatal("A must be forced to its end state")
	}

	// B covers Position, so reads resolve against B, not A's cached value.
	v := s.Value(MapPlane, Position, PointValue(geometry.Point{}))
	if math.Abs(v.Point().X-252) > 1e-9 || math.Abs(v.Point().Y) > 1e-9 {
		t.Errorf("position = (%v, %v), want B's start (252, 0)", v.Point().X, v.Point().Y)
	}

	// Finish B; its terminal value overwrites A's stale cache entry.
	s.Advance(10)
	v = s.Value(MapPlane, Position, PointValue(geometry.Point{}))
	if math.Abs(v.Point().Y-500) > 1e-9 {
		t.Errorf("position.Y = %v, want B's terminal 500", v.Point().Y)
	}
}

func TestSystemForceRequiresInterruptible(t *testing.T) {
	s := NewSystem()

	running := newTestAnim(MapPlane, Properties(0).With(Position), 5)
	running.mixable = false
	running.interruptible = false
	s.Add(running, false)

	incoming := newTestAnim(MapPlane, Properties(0).With(Position), 1)
	incoming.value = ScalarValue(9)
	s.Add(incoming, true)

	// The running animation stays; the incoming one queues behind it.
	if running.forced {
		t.Fatal("non-interruptible animations must not be forced out")
	}
	v := s.Value(MapPlane, Position, ScalarValue(-1))
	if v.Scalar() != 0 {
		t.Errorf("read = %v, want the running animation's value", v.Scalar())
	}
}

func TestSystemQueueBehindIncompatible(t *testing.T) {
	s := NewSystem()
	conv := testViewport()

	a := pan(conv, geometry.Pt(0, 0), geometry.Pt(500, 0))
	b := pan(conv, geometry.Pt(500, 0), geometry.Pt(500, 500))
	s.Add(a, false)
	s.Add(b, false)

	// Only A runs; B waits in the successor group.
	s.Advance(0.0357)
	if b.Elapsed() != 0 {
		t.Fatal("queued animations must not advance")
	}

	// Completing A drops the head group; B runs on the following ticks.
	s.Advance(0.05)
	if !a.Finished() {
		t.Fatal("A should have finished")
	}
	s.Advance(0.0357)
	v := s.Value(MapPlane, Position, PointValue(geometry.Point{}))
	if math.Abs(v.Point().Y-249.9) > 1e-6 {
		t.Errorf("position.Y = %v, want B halfway at 249.9", v.Point().Y)
	}
}

func TestSystemMixesDisjointAnimations(t *testing.T) {
	s := NewSystem()

	posAnim := newTestAnim(MapPlane, Properties(0).With(Position), 5)
	posAnim.value = ScalarValue(1)
	angAnim := newTestAnim(MapPlane, Properties(0).With(Angle), 5)
	angAnim.value = ScalarValue(2)

	s.Add(posAnim, false)
	s.Add(angAnim, false)

	// Both run in the same slot: both advance on one tick and each answers
	// for its own property.
	s.Advance(0.1)
	if posAnim.elapsed != 0.1 || angAnim.elapsed != 0.1 {
		t.Fatal("mixed animations must advance together")
	}
	if v := s.Value(MapPlane, Position, ScalarValue(-1)); v.Scalar() != 1 {
		t.Errorf("position read = %v, want 1", v.Scalar())
	}
	if v := s.Value(MapPlane, Angle, ScalarValue(-1)); v.Scalar() != 2 {
		t.Errorf("angle read = %v, want 2", v.Scalar())
	}
}

func TestSystemLifecycleOnce(t *testing.T) {
	s := NewSystem()

	a := newTestAnim(MapPlane, Properties(0).With(Position), 0.5)
	s.Add(a, false)
	if a.starts != 1 {
		t.Fatalf("starts = %d at insertion, want 1", a.starts)
	}

	s.Advance(0.3)
	s.Advance(0.3)
	if a.starts != 1 {
		t.Errorf("starts = %d, want exactly 1", a.starts)
	}
	if a.finishes != 1 {
		t.Errorf("finishes = %d, want exactly 1", a.finishes)
	}
}

func TestSystemInterruptFiresOnFinish(t *testing.T) {
	s := NewSystem()

	running := newTestAnim(MapPlane, Properties(0).With(Position), 5)
	running.mixable = false
	running.value = ScalarValue(11)
	s.Add(running, false)

	incoming := newTestAnim(MapPlane, Properties(0).With(Angle), 1)
	incoming.mixable = false
	s.Add(incoming, true)

	if running.finishes != 1 {
		t.Error("evicted animations are guaranteed their OnFinish")
	}

	// The evicted animation's terminal value bridges reads until consumed;
	// the incoming one does not cover Position.
	if v := s.Value(MapPlane, Position, ScalarValue(-1)); v.Scalar() != 11 {
		t.Errorf("read = %v, want the cached terminal 11", v.Scalar())
	}
}

func TestSystemRect(t *testing.T) {
	s := NewSystem()
	vp := testViewport()
	vp.center = geometry.Pt(100, 100)
	vp.scale = 2

	// Idle: the rect mirrors the live screen.
	r := s.Rect(vp)
	if r.Origin != geometry.Pt(100, 100) {
		t.Errorf("origin = %v, want the live center", r.Origin)
	}
	if math.Abs(r.Local.Width()-500) > 1e-9 {
		t.Errorf("local width = %v, want 1000/2", r.Local.Width())
	}

	// A running zoom overrides the scale but leaves position and angle on
	// their fallbacks.
	zoom := NewFollow()
	zoom.SetScale(2, 8)
	s.Add(zoom, false)
	s.Advance(zoom.Duration() / 2)

	r = s.Rect(vp)
	if r.Origin != geometry.Pt(100, 100) {
		t.Errorf("origin = %v, want untouched live center", r.Origin)
	}
	want := 1000 / 5.0 // halfway: scale 5
	if math.Abs(r.Local.Width()-want) > 1e-9 {
		t.Errorf("local width = %v, want %v", r.Local.Width(), want)
	}
}

func TestSharedIsStable(t *testing.T) {
	if Shared() != Shared() {
		t.Error("the process-wide accessor must return one instance")
	}
}
