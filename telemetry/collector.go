// Package telemetry collects frame and animation statistics for the viewer.
package telemetry

// WindowStats aggregates one stats window.
type WindowStats struct {
	Time              float64 `csv:"time"`
	Frames            int     `csv:"frames"`
	AvgFPS            float64 `csv:"avg_fps"`
	AvgFrameMs        float64 `csv:"avg_frame_ms"`
	MaxFrameMs        float64 `csv:"max_frame_ms"`
	AnimatedFrames    int     `csv:"animated_frames"`
	AnimationsStarted int     `csv:"animations_started"`
	Interrupts        int     `csv:"interrupts"`
}

// Collector accumulates per-frame samples and flushes a WindowStats record
// at the end of each window.
type Collector struct {
	window  float64
	onFlush func(WindowStats)

	clock       float64
	windowStart float64

	frames         int
	animatedFrames int
	started        int
	interrupts     int
	frameMsSum     float64
	frameMsMax     float64
}

// NewCollector creates a collector with the given window length in seconds.
// onFlush may be nil.
func NewCollector(windowSeconds float64, onFlush func(WindowStats)) *Collector {
	if windowSeconds <= 0 {
		windowSeconds = 1
	}
	return &Collector{window: windowSeconds, onFlush: onFlush}
}

// RecordFrame records one frame of dt seconds. animating marks frames where
// the animation system drove the viewport.
func (c *Collector) RecordFrame(dt float64, animating bool) {
	c.clock += dt
	c.frames++
	if animating {
		c.animatedFrames++
	}
	ms := dt * 1000
	c.frameMsSum += ms
	if ms > c.frameMsMax {
		c.frameMsMax = ms
	}

	if c.clock-c.windowStart >= c.window {
		c.flush()
	}
}

// RecordStart counts an animation submitted to the scheduler.
func (c *Collector) RecordStart() {
	c.started++
}

// RecordInterrupt counts a forced interruption.
func (c *Collector) RecordInterrupt() {
	c.interrupts++
}

// Clock returns the accumulated time in seconds.
func (c *Collector) Clock() float64 {
	return c.clock
}

func (c *Collector) flush() {
	elapsed := c.clock - c.windowStart
	stats := WindowStats{
		Time:              c.clock,
		Frames:            c.frames,
		AnimatedFrames:    c.animatedFrames,
		AnimationsStarted: c.started,
		Interrupts:        c.interrupts,
		MaxFrameMs:        c.frameMsMax,
	}
	if elapsed > 0 {
		stats.AvgFPS = float64(c.frames) / elapsed
	}
	if c.frames > 0 {
		stats.AvgFrameMs = c.frameMsSum / float64(c.frames)
	}

	if c.onFlush != nil {
		c.onFlush(stats)
	}

	c.windowStart = c.clock
	c.frames = 0
	c.animatedFrames = 0
	c.started = 0
	c.interrupts = 0
	c.frameMsSum = 0
	c.frameMsMax = 0
}
