// Package app wires the viewer together: it turns input gestures into
// animations, drives the animation system each frame, and commits the
// resulting viewport state back to the screen.
package app

import (
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/mapview/animation"
	"github.com/pthm-cable/mapview/config"
	"github.com/pthm-cable/mapview/markers"
	"github.com/pthm-cable/mapview/renderer"
	"github.com/pthm-cable/mapview/screen"
	"github.com/pthm-cable/mapview/telemetry"
	"github.com/pthm-cable/mapview/ui"
)

// App holds the complete viewer state.
type App struct {
	cfg *config.Config
	scr *screen.Screen

	anims *animation.System
	world *markers.World
	rng   *rand.Rand

	// Rendering
	grid      *renderer.GridRenderer
	markerRnd *renderer.MarkerRenderer
	hud       *ui.HUD
	panel     *ui.ControlsPanel

	// Telemetry
	collector *telemetry.Collector
	output    *telemetry.OutputManager

	following bool
	animating bool
}

// Options configures a new App.
type Options struct {
	Output   *telemetry.OutputManager
	LogStats bool
	// System overrides the process-wide animation scheduler; tests use
	// independent instances.
	System *animation.System
}

// New creates the viewer from the loaded configuration.
func New(cfg *config.Config, opts Options) *App {
	scr := screen.New(cfg.Derived.PixelW, cfg.Derived.PixelH)
	scr.SetScaleLimits(cfg.View.MinScale, cfg.View.MaxScale)
	scr.SetCenter(pt(cfg.View.CenterX, cfg.View.CenterY))
	scr.SetScale(cfg.View.Scale)

	world := markers.NewWorld(cfg.Markers.Seed)
	world.SpawnPlaces(cfg.Markers.Count, cfg.Markers.Spread)
	world.SpawnTarget(pt(cfg.View.CenterX, cfg.View.CenterY))

	anims := opts.System
	if anims == nil {
		anims = animation.Shared()
	}

	a := &App{
		cfg:       cfg,
		scr:       scr,
		anims:     anims,
		world:     world,
		rng:       rand.New(rand.NewSource(cfg.Markers.Seed)),
		grid:      renderer.NewGridRenderer(),
		markerRnd: renderer.NewMarkerRenderer(),
		hud:       ui.NewHUD(),
		panel:     ui.NewControlsPanel(float32(cfg.Derived.PixelW)-170, 16, 150),
		output:    opts.Output,
	}
	a.collector = telemetry.NewCollector(cfg.Telemetry.WindowSeconds, func(s telemetry.WindowStats) {
		if err := a.output.WriteStats(s); err != nil {
			Logf("telemetry: %v", err)
		}
		if opts.LogStats {
			Logf("t=%.1fs fps=%.0f animated=%d/%d started=%d interrupts=%d",
				s.Time, s.AvgFPS, s.AnimatedFrames, s.Frames, s.AnimationsStarted, s.Interrupts)
		}
	})

	slog.Info("viewer ready",
		"markers", cfg.Markers.Count,
		"screen", cfg.Screen.Width,
	)
	return a
}

// Screen returns the viewport, for tests and the frame loop.
func (a *App) Screen() *screen.Screen {
	return a.scr
}

// Following returns whether follow-me mode is on.
func (a *App) Following() bool {
	return a.following
}

// SetFollowing switches follow-me mode.
func (a *App) SetFollowing(on bool) {
	if on == a.following {
		return
	}
	a.following = on
	Logf("follow-me %v", on)
}

// Update advances the world and the animation system by dt seconds and
// commits the animated viewport state.
func (a *App) Update(dt float64) {
	a.world.StepTarget(dt, a.cfg.Follow.TargetSpeed, a.cfg.Follow.TurnRate)
	if a.following {
		a.updateFollow()
	}

	a.anims.Advance(dt)
	a.animating = a.anims.ActiveFor(animation.MapPlane)
	if a.animating {
		// Reads below consume any leftover cache entry, so the handoff
		// frame still observes the finished animation's terminal state.
		a.scr.SetFromRect(a.anims.Rect(a.scr))
	}

	a.collector.RecordFrame(dt, a.animating)
}

// updateFollow re-centers the view on the target once it drifts far enough,
// unless a transition is already in flight.
func (a *App) updateFollow() {
	target, heading, ok := a.world.Target()
	if !ok || a.anims.ActiveFor(animation.MapPlane) {
		return
	}

	px := a.scr.PixelRect()
	drift := dist(a.scr.GlobalToPixel(target), px.Center())
	if drift < a.cfg.Follow.RecenterPixels {
		return
	}

	angle := a.scr.Angle()
	if a.cfg.Follow.HeadingUp {
		angle = headingUpAngle(a.scr.Angle(), heading)
	}
	f := animation.NewFollowTo(a.scr,
		a.scr.GlobalCenter(), target,
		a.scr.Angle(), angle,
		a.scr.Scale(), a.scr.Scale(),
	)
	a.submit(f, true)
}

// submit hands an animation to the scheduler and counts it.
func (a *App) submit(an animation.Animation, force bool) {
	if force && a.anims.ActiveFor(animation.MapPlane) {
		a.collector.RecordInterrupt()
	}
	a.collector.RecordStart()
	a.anims.Add(an, force)
}
