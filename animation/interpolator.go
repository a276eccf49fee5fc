package animation

// Interpolator carries the time accounting shared by all concrete
// interpolators: elapsed time, an optional start delay, and a duration.
// Progress is the normalized position in [0, 1] once the delay has passed.
type Interpolator struct {
	elapsed  float64
	delay    float64
	duration float64
	forced   bool
}

// Advance moves the interpolator forward by dt seconds.
func (in *Interpolator) Advance(dt float64) {
	if dt < 0 {
		return
	}
	in.elapsed += dt
}

// SetMaxDuration clamps the duration to at most m seconds. The duration
// never grows; the scheduler uses this to cap a long animation to match a
// shorter peer.
func (in *Interpolator) SetMaxDuration(m float64) {
	if m < in.duration {
		in.duration = m
	}
}

// Finish forces the interpolator to its terminal state.
func (in *Interpolator) Finish() {
	in.forced = true
}

// Progress returns the normalized progress in [0, 1]. A finished or
// zero-duration interpolator reports 1.
func (in *Interpolator) Progress() float64 {
	if in.Finished() || in.duration <= 0 {
		return 1
	}
	t := (in.elapsed - in.delay) / in.duration
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Finished reports whether the elapsed time has passed the delay plus
// duration.
func (in *Interpolator) Finished() bool {
	return in.forced || in.elapsed > in.delay+in.duration
}

// Duration returns the current duration in seconds.
func (in *Interpolator) Duration() float64 {
	return in.duration
}

// Elapsed returns the accumulated time in seconds.
func (in *Interpolator) Elapsed() float64 {
	return in.elapsed
}
