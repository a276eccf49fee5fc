package app

import (
	"math"

	"github.com/pthm-cable/mapview/animation"
	"github.com/pthm-cable/mapview/geometry"
)

// FlyTo moves the view to dest. Nearby destinations get a single combined
// transition; far ones fly in stages: zoom out for overview, pan, zoom back
// in.
func (a *App) FlyTo(dest geometry.Point) {
	distPx := dist(a.scr.GlobalToPixel(dest), a.scr.PixelRect().Center())

	if distPx <= a.cfg.FlyTo.FarPixels {
		f := animation.NewFollow()
		f.SetMove(a.scr.GlobalCenter(), dest, a.scr)
		a.submit(f, true)
		return
	}

	scale := a.scr.Scale()
	overview := math.Max(scale/a.cfg.FlyTo.ZoomOutRatio, a.cfg.View.MinScale)

	seq := animation.NewSequence()

	out := animation.NewFollow()
	out.SetScale(scale, overview)
	seq.Add(out)

	pan := animation.NewFollow()
	pan.SetMove(a.scr.GlobalCenter(), dest, a.scr)
	seq.Add(pan)

	in := animation.NewFollow()
	in.SetScale(overview, scale)
	seq.Add(in)

	a.submit(seq, true)
}

// FlySomewhere picks a random destination inside the marker spread.
func (a *App) FlySomewhere() {
	spread := a.cfg.Markers.Spread
	dest := geometry.Pt(
		(a.rng.Float64()*2-1)*spread,
		(a.rng.Float64()*2-1)*spread,
	)
	Logf("fly to (%.0f, %.0f)", dest.X, dest.Y)
	a.FlyTo(dest)
}

// ZoomBy animates the scale by the given factor around the view center.
func (a *App) ZoomBy(factor float64) {
	cur := a.scr.Scale()
	to := geometry.Clamp(cur*factor, a.cfg.View.MinScale, a.cfg.View.MaxScale)
	if to == cur {
		return
	}
	f := animation.NewFollow()
	f.SetScale(cur, to)
	a.submit(f, true)
}

// RotateBy animates the map angle by delta radians.
func (a *App) RotateBy(delta float64) {
	cur := a.scr.Angle()
	f := animation.NewFollow()
	f.SetRotate(cur, cur+delta)
	a.submit(f, true)
}

// NorthUp resets rotation and scale together: an angle transition to the
// nearest zero and a scale transition to 1:1, composed in parallel.
func (a *App) NorthUp() {
	angle := a.scr.Angle()
	scale := a.scr.Scale()
	if angle == 0 && scale == 1 {
		return
	}

	pa := animation.NewParallel()
	if angle != 0 {
		rot := animation.NewFollow()
		rot.SetRotate(angle, angle+normalizeAngle(-angle))
		pa.Add(rot)
	}
	if scale != 1 {
		zoom := animation.NewFollow()
		zoom.SetScale(scale, 1)
		pa.Add(zoom)
	}
	a.submit(pa, true)
}

// headingUpAngle returns the map angle that points the given global heading
// at the top of the screen, pre-normalized to the shortest arc from the
// current angle.
func headingUpAngle(current, heading float64) float64 {
	want := heading + math.Pi/2
	return current + normalizeAngle(want-current)
}

// normalizeAngle wraps an angle to [-pi, pi].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
