package geometry

import (
	"math"
	"testing"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"start", 0, 10, 0, 0},
		{"end", 0, 10, 1, 10},
		{"midpoint", 0, 10, 0.5, 5},
		{"negative range", 4, -4, 0.25, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(tt.a, tt.b, tt.t); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
			}
		})
	}
}

func TestLerpPoint(t *testing.T) {
	p := LerpPoint(Pt(0, 0), Pt(10, -20), 0.5)
	if math.Abs(p.X-5) > 1e-9 || math.Abs(p.Y+10) > 1e-9 {
		t.Errorf("got (%v, %v), want (5, -10)", p.X, p.Y)
	}
}

func TestDist(t *testing.T) {
	if d := Dist(Pt(0, 0), Pt(3, 4)); math.Abs(d-5) > 1e-9 {
		t.Errorf("Dist = %v, want 5", d)
	}
}

func TestRectCentered(t *testing.T) {
	r := RectCentered(100, 50)
	if r.Width() != 100 || r.Height() != 50 {
		t.Errorf("size = %vx%v, want 100x50", r.Width(), r.Height())
	}
	if r.Center() != Pt(0, 0) {
		t.Errorf("center = %v, want origin", r.Center())
	}
}

func TestRectScaled(t *testing.T) {
	r := NewRect(0, 0, 10, 10).Scaled(2)
	if r.Min != Pt(-5, -5) || r.Max != Pt(15, 15) {
		t.Errorf("scaled rect = %v, want (-5,-5)-(15,15)", r)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	if !r.Contains(Pt(5, 5)) || !r.Contains(Pt(0, 10)) {
		t.Error("interior and edge points must be contained")
	}
	if r.Contains(Pt(11, 5)) {
		t.Error("outside point must not be contained")
	}
}

func TestAnyRectIdentity(t *testing.T) {
	a := AnyRect{Origin: Pt(10, 20), Local: RectCentered(4, 2)}
	if c := a.GlobalCenter(); c != Pt(10, 20) {
		t.Errorf("center = %v, want origin for an unrotated rect", c)
	}
	corners := a.Corners()
	if corners[0] != Pt(8, 19) || corners[2] != Pt(12, 21) {
		t.Errorf("corners = %v", corners)
	}
}

func TestAnyRectRotated(t *testing.T) {
	a := AnyRect{Origin: Pt(0, 0), Angle: math.Pi / 2, Local: RectCentered(4, 2)}

	// A quarter turn swaps the extents.
	corners := a.Corners()
	for i, want := range [][2]float64{{1, -2}, {1, 2}, {-1, 2}, {-1, -2}} {
		if math.Abs(corners[i].X-want[0]) > 1e-9 || math.Abs(corners[i].Y-want[1]) > 1e-9 {
			t.Errorf("corner %d = (%v, %v), want (%v, %v)", i, corners[i].X, corners[i].Y, want[0], want[1])
		}
	}
}
