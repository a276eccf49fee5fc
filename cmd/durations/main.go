// Command durations dumps the animation duration curves to CSV for tuning:
// for each gesture magnitude, the transition length the formulas produce.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/mapview/animation"
	"github.com/pthm-cable/mapview/geometry"
	"github.com/pthm-cable/mapview/screen"
)

// Row is one sampled point of a duration curve.
type Row struct {
	Kind      string  `csv:"kind"`
	Magnitude float64 `csv:"magnitude"`
	Duration  float64 `csv:"duration_s"`
}

func main() {
	out := flag.String("out", "durations.csv", "Output CSV path")
	width := flag.Float64("width", 1280, "Viewport width in pixels")
	height := flag.Float64("height", 720, "Viewport height in pixels")
	flag.Parse()

	scr := screen.New(*width, *height)

	var rows []Row

	// Pan curves: magnitude is the pixel distance at 1:1 scale.
	for px := 10.0; px <= 5000; px += 10 {
		in := animation.NewPositionInterpolator(geometry.Pt(0, 0), geometry.Pt(px, 0), scr)
		rows = append(rows, Row{Kind: "position", Magnitude: px, Duration: in.Duration()})
	}

	// Rotation curves: magnitude is the turn in degrees.
	for deg := 5.0; deg <= 360; deg += 5 {
		in := animation.NewAngleInterpolator(0, deg*math.Pi/180)
		rows = append(rows, Row{Kind: "angle", Magnitude: deg, Duration: in.Duration()})
	}

	// Scale curves: magnitude is the zoom ratio.
	for ratio := 1.25; ratio <= 16; ratio += 0.25 {
		in := animation.NewScaleInterpolator(1, ratio)
		rows = append(rows, Row{Kind: "scale", Magnitude: ratio, Duration: in.Duration()})
	}

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating %s: %v\n", *out, err)
		os.Exit(1)
	}
	defer f.Close()

	if err := gocsv.Marshal(rows, f); err != nil {
		fmt.Fprintf(os.Stderr, "writing %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d rows to %s\n", len(rows), *out)
}
