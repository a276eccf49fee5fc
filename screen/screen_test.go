package screen

import (
	"math"
	"testing"

	"github.com/pthm-cable/mapview/geometry"
)

func TestNew(t *testing.T) {
	s := New(1280, 720)

	if s.GlobalCenter() != geometry.Pt(0, 0) {
		t.Errorf("expected center at origin, got %v", s.GlobalCenter())
	}
	if s.Scale() != 1.0 {
		t.Errorf("expected scale 1.0, got %f", s.Scale())
	}
	if s.Angle() != 0 {
		t.Errorf("expected angle 0, got %f", s.Angle())
	}
}

func TestGlobalToPixelCentered(t *testing.T) {
	s := New(1280, 720)
	s.SetCenter(geometry.Pt(100, 50))

	// The viewport center maps to the pixel center.
	p := s.GlobalToPixel(geometry.Pt(100, 50))
	if math.Abs(p.X-640) > 0.01 || math.Abs(p.Y-360) > 0.01 {
		t.Errorf("expected pixel center (640, 360), got (%f, %f)", p.X, p.Y)
	}
}

func TestConversionRoundtrip(t *testing.T) {
	s := New(1280, 720)
	s.SetCenter(geometry.Pt(500, -200))
	s.SetScale(2.5)
	s.SetAngle(math.Pi / 6)

	testCases := []geometry.Point{
		{X: 640, Y: 360},  // center
		{X: 100, Y: 100},  // top-left
		{X: 1200, Y: 600}, // near bottom-right
	}

	for _, px := range testCases {
		g := s.PixelToGlobal(px)
		back := s.GlobalToPixel(g)
		if math.Abs(back.X-px.X) > 0.01 || math.Abs(back.Y-px.Y) > 0.01 {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				px.X, px.Y, g.X, g.Y, back.X, back.Y)
		}
	}
}

func TestRotationConvention(t *testing.T) {
	s := New(1000, 1000)
	s.SetAngle(math.Pi / 2)

	// With the map rotated a quarter turn, a point one unit east of the
	// center appears one pixel above the pixel center.
	p := s.GlobalToPixel(geometry.Pt(1, 0))
	if math.Abs(p.X-500) > 1e-6 || math.Abs(p.Y-499) > 1e-6 {
		t.Errorf("expected (500, 499), got (%f, %f)", p.X, p.Y)
	}
}

func TestScaleClamp(t *testing.T) {
	s := New(1280, 720)
	s.SetScaleLimits(0.5, 4.0)

	s.SetScale(0.1)
	if s.Scale() != 0.5 {
		t.Errorf("expected scale clamped to 0.5, got %f", s.Scale())
	}

	s.SetScale(10.0)
	if s.Scale() != 4.0 {
		t.Errorf("expected scale clamped to 4.0, got %f", s.Scale())
	}
}

func TestMoveFollowsRotation(t *testing.T) {
	s := New(1000, 1000)
	s.SetScale(2)

	s.Move(100, 0)
	if c := s.GlobalCenter(); math.Abs(c.X-50) > 1e-9 || math.Abs(c.Y) > 1e-9 {
		t.Errorf("expected center (50, 0), got (%f, %f)", c.X, c.Y)
	}

	// Under a quarter turn, a horizontal pixel drag moves the center along
	// the rotated axis.
	s.SetCenter(geometry.Point{})
	s.SetAngle(math.Pi / 2)
	s.Move(100, 0)
	if c := s.GlobalCenter(); math.Abs(c.X) > 1e-9 || math.Abs(c.Y-50) > 1e-9 {
		t.Errorf("expected center (0, 50), got (%f, %f)", c.X, c.Y)
	}
}

func TestGlobalRectRoundtrip(t *testing.T) {
	s := New(1280, 720)
	s.SetCenter(geometry.Pt(300, 400))
	s.SetScale(2)
	s.SetAngle(0.7)

	r := s.GlobalRect()

	other := New(1280, 720)
	other.SetFromRect(r)

	if math.Abs(other.GlobalCenter().X-300) > 1e-9 || math.Abs(other.GlobalCenter().Y-400) > 1e-9 {
		t.Errorf("center = %v, want (300, 400)", other.GlobalCenter())
	}
	if math.Abs(other.Scale()-2) > 1e-9 {
		t.Errorf("scale = %f, want 2", other.Scale())
	}
	if math.Abs(other.Angle()-0.7) > 1e-9 {
		t.Errorf("angle = %f, want 0.7", other.Angle())
	}
}

func TestSetFromRectClampsScale(t *testing.T) {
	s := New(1000, 1000)
	s.SetScaleLimits(0.5, 4.0)

	// A local rect 10 units wide implies scale 100, beyond the limit.
	s.SetFromRect(geometry.AnyRect{Local: geometry.RectCentered(10, 10)})
	if s.Scale() != 4.0 {
		t.Errorf("expected scale clamped to 4.0, got %f", s.Scale())
	}
}

func TestResize(t *testing.T) {
	s := New(1000, 1000)
	s.Resize(500, 400)

	r := s.PixelRect()
	if r.Width() != 500 || r.Height() != 400 {
		t.Errorf("pixel rect = %fx%f, want 500x400", r.Width(), r.Height())
	}
}
