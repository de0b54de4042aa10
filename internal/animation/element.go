package animation

import "time"

// Kind identifies what a layer element depicts.
type Kind int

const (
	KindRain Kind = iota
	KindSnow
	KindCloud
	KindLightning
)

func (k Kind) String() string {
	switch k {
	case KindRain:
		return "rain"
	case KindSnow:
		return "snow"
	case KindCloud:
		return "cloud"
	case KindLightning:
		return "lightning"
	default:
		return "unknown"
	}
}

// Size is the size class of snowflakes and clouds.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
)

func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return "unknown"
	}
}

// SnowGlyphs are the flake shapes a snow particle can take.
var SnowGlyphs = [3]rune{'❄', '❅', '❆'}

// FlashDuration is how long one lightning flash plays.
const FlashDuration = 300 * time.Millisecond

// Element is one decorative unit on the animation layer. Particles are seeded
// once and never mutated; the renderer derives motion from the timing fields.
// The lightning element is the only one touched after creation: each flash
// restarts it by moving FlashedAt.
type Element struct {
	Kind Kind

	// X is the horizontal position in percent of the layer width, Y the
	// vertical position in percent of its height (clouds only).
	X float64
	Y float64

	// Duration is one fall/drift cycle; Drift is the sideways sway period of
	// snow (half of Duration). Delay staggers the first cycle.
	Duration time.Duration
	Drift    time.Duration
	Delay    time.Duration

	Size  Size
	Glyph rune

	// Born is when the element was added; cycles are measured from Born+Delay.
	Born time.Time

	// FlashedAt is the start of the latest lightning flash, Flashes counts them.
	FlashedAt time.Time
	Flashes   int
}

// Progress returns how far through its current cycle a particle is at now,
// in [0,1), and false while it is still waiting out its start delay.
func (e *Element) Progress(now time.Time) (float64, bool) {
	if e.Duration <= 0 {
		return 0, false
	}
	elapsed := now.Sub(e.Born) - e.Delay
	if elapsed < 0 {
		return 0, false
	}
	return float64(elapsed%e.Duration) / float64(e.Duration), true
}

// FlashIntensity returns the lightning brightness at now: 1 right when a flash
// starts, fading to 0 over FlashDuration.
func (e *Element) FlashIntensity(now time.Time) float64 {
	if e.Kind != KindLightning || e.FlashedAt.IsZero() {
		return 0
	}
	since := now.Sub(e.FlashedAt)
	if since < 0 || since >= FlashDuration {
		return 0
	}
	return 1 - float64(since)/float64(FlashDuration)
}
