package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/mapview/app"
	"github.com/pthm-cable/mapview/config"
	"github.com/pthm-cable/mapview/telemetry"
)

var (
	configPath = flag.String("config", "", "Config YAML file (empty = embedded defaults)")
	headless   = flag.Bool("headless", false, "Run without graphics (for logging/benchmarking)")
	maxFrames  = flag.Int("max-frames", 0, "Stop after N frames (0 = no limit in a window, 30 s of frames with -headless)")
	logFile    = flag.String("logfile", "", "Write logs to file instead of stdout")
	outputDir  = flag.String("output", "", "Write CSV stats to this directory")
	logStats   = flag.Bool("stats", false, "Log window stats")
)

func main() {
	flag.Parse()

	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		app.SetLogWriter(f)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening output: %v\n", err)
		os.Exit(1)
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Warn("saving run config failed", "err", err)
	}

	a := app.New(cfg, app.Options{Output: output, LogStats: *logStats})

	if *headless {
		runHeadless(a, cfg, *maxFrames)
		return
	}

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "mapview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	frames := 0
	for !rl.WindowShouldClose() {
		dt := float64(rl.GetFrameTime())
		a.HandleInput()
		a.Update(dt)
		a.Draw()

		frames++
		if *maxFrames > 0 && frames >= *maxFrames {
			break
		}
	}
}

// runHeadless drives the viewer without a window at a fixed timestep so the
// animation path is exercised: it follows the moving target until the first
// fly-to, which switches follow-me off for the rest of the run, and then
// flies somewhere new every five seconds.
func runHeadless(a *app.App, cfg *config.Config, frames int) {
	if frames <= 0 {
		frames = cfg.Screen.TargetFPS * 30
	}
	dt := 1.0 / float64(cfg.Screen.TargetFPS)

	a.SetFollowing(true)
	flyEvery := cfg.Screen.TargetFPS * 5

	for i := 0; i < frames; i++ {
		if flyEvery > 0 && i%flyEvery == flyEvery-1 {
			a.SetFollowing(false)
			a.FlySomewhere()
		}
		a.Update(dt)
	}
	app.Logf("headless run complete: %d frames", frames)
}
