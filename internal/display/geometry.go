package display

import (
	"math"
	"time"

	"github.com/iburimskiy/weather-visualization/internal/animation"
)

const (
	// snowSway is the sideways amplitude of a flake, in percent of the width.
	snowSway = 1.5
	// cloudTravel is how far a cloud drifts per cycle, in layer widths; it
	// starts and ends off-screen.
	cloudTravel = 1.4
	cloudStart  = -0.2
)

// Point is a position in layer fractions: 0,0 top-left, 1,1 bottom-right.
// Values outside [0,1] are off-screen.
type Point struct {
	X, Y float64
}

// Locate maps an element to where it is at now. It returns false while the
// element is waiting out its start delay or has no position (lightning).
func Locate(e *animation.Element, now time.Time) (Point, bool) {
	p, ok := e.Progress(now)
	if !ok {
		return Point{}, false
	}
	x := e.X / 100
	switch e.Kind {
	case animation.KindRain:
		return Point{X: x, Y: -0.05 + p*1.1}, true
	case animation.KindSnow:
		return Point{X: x + sway(e, now), Y: -0.05 + p*1.1}, true
	case animation.KindCloud:
		travel := math.Mod(x+p*cloudTravel, cloudTravel)
		return Point{X: cloudStart + travel, Y: e.Y / 100}, true
	}
	return Point{}, false
}

func sway(e *animation.Element, now time.Time) float64 {
	if e.Drift <= 0 {
		return 0
	}
	elapsed := now.Sub(e.Born) - e.Delay
	phase := float64(elapsed%e.Drift) / float64(e.Drift)
	return math.Sin(phase*2*math.Pi) * snowSway / 100
}

// SizeScale is the relative size of a size class.
func SizeScale(s animation.Size) float64 {
	switch s {
	case animation.SizeMedium:
		return 1.4
	case animation.SizeLarge:
		return 1.9
	default:
		return 1
	}
}

// Flash returns the brightest lightning intensity on the layer at now.
func Flash(elements []*animation.Element, now time.Time) float64 {
	var brightest float64
	for _, e := range elements {
		if e.Kind != animation.KindLightning {
			continue
		}
		if v := e.FlashIntensity(now); v > brightest {
			brightest = v
		}
	}
	return brightest
}
