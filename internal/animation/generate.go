package animation

import (
	"math/rand"
	"time"
)

// Timing ranges per particle kind, all half-open [min, max).
const (
	rainMinDuration = 500 * time.Millisecond
	rainMaxDuration = 1500 * time.Millisecond
	rainMaxDelay    = 2 * time.Second

	snowMinDuration = 3 * time.Second
	snowMaxDuration = 8 * time.Second
	snowMaxDelay    = 5 * time.Second

	cloudMinY     = 10
	cloudMaxY     = 60
	cloudMaxDelay = 10 * time.Second
)

// cloudDurations bands cloud drift time by size: larger clouds move slower.
var cloudDurations = [3][2]time.Duration{
	SizeSmall:  {20 * time.Second, 30 * time.Second},
	SizeMedium: {25 * time.Second, 35 * time.Second},
	SizeLarge:  {30 * time.Second, 40 * time.Second},
}

func rainDrops(r *rand.Rand, n int, born time.Time) []*Element {
	out := make([]*Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &Element{
			Kind:     KindRain,
			X:        percent(r, 0, 100),
			Duration: between(r, rainMinDuration, rainMaxDuration),
			Delay:    between(r, 0, rainMaxDelay),
			Born:     born,
		})
	}
	return out
}

func snowFlakes(r *rand.Rand, n int, born time.Time) []*Element {
	out := make([]*Element, 0, n)
	for i := 0; i < n; i++ {
		fall := between(r, snowMinDuration, snowMaxDuration)
		out = append(out, &Element{
			Kind:     KindSnow,
			X:        percent(r, 0, 100),
			Glyph:    SnowGlyphs[r.Intn(len(SnowGlyphs))],
			Size:     Size(r.Intn(3)),
			Duration: fall,
			Drift:    fall / 2,
			Delay:    between(r, 0, snowMaxDelay),
			Born:     born,
		})
	}
	return out
}

func clouds(r *rand.Rand, born time.Time) []*Element {
	out := make([]*Element, 0, CloudCount)
	for i := 0; i < CloudCount; i++ {
		size := Size(i % 3)
		band := cloudDurations[size]
		out = append(out, &Element{
			Kind:     KindCloud,
			X:        percent(r, 0, 100),
			Y:        percent(r, cloudMinY, cloudMaxY),
			Size:     size,
			Duration: between(r, band[0], band[1]),
			Delay:    between(r, 0, cloudMaxDelay),
			Born:     born,
		})
	}
	return out
}
