package display

import (
	"image/color"
	"strings"

	"github.com/iburimskiy/weather-visualization/internal/prefs"
)

// Gradient is a vertical background: Top fades into Bottom.
type Gradient struct {
	Top, Bottom color.RGBA
}

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}

var backgrounds = map[string]Gradient{
	"clear":        {Top: rgb(0xc2e9fb), Bottom: rgb(0xa1c4fd)},
	"clouds":       {Top: rgb(0xe2ebf0), Bottom: rgb(0xcfd9df)},
	"rain":         {Top: rgb(0x8d99ae), Bottom: rgb(0x6b778d)},
	"drizzle":      {Top: rgb(0x8d99ae), Bottom: rgb(0x6b778d)},
	"thunderstorm": {Top: rgb(0x4ca1af), Bottom: rgb(0x2c3e50)},
	"snow":         {Top: rgb(0xeef1f5), Bottom: rgb(0xe6e9f0)},
}

var (
	lightBackground = Gradient{Top: rgb(0xf0f4f8), Bottom: rgb(0xdfe7ef)}
	darkBackground  = Gradient{Top: rgb(0x1b2330), Bottom: rgb(0x0f141c)}
)

// Background returns the gradient for a raw weather group ("Rain", "Clear",
// ...). The dark theme darkens condition gradients and replaces the neutral one.
func Background(main string, theme prefs.Theme) Gradient {
	g, ok := backgrounds[strings.ToLower(main)]
	if !ok {
		if theme == prefs.ThemeDark {
			return darkBackground
		}
		return lightBackground
	}
	if theme == prefs.ThemeDark {
		return Gradient{Top: Scale(g.Top, 0.35), Bottom: Scale(g.Bottom, 0.35)}
	}
	return g
}

// At returns the gradient colour at ratio t (0 top, 1 bottom).
func (g Gradient) At(t float64) color.RGBA {
	return Lerp(g.Top, g.Bottom, t)
}

// Text returns a readable foreground for the gradient.
func (g Gradient) Text() color.RGBA {
	mid := g.At(0.5)
	lum := 0.299*float64(mid.R) + 0.587*float64(mid.G) + 0.114*float64(mid.B)
	if lum > 140 {
		return rgb(0x1f2933)
	}
	return rgb(0xf5f7fa)
}

// Particle colours.
var (
	RainColor  = rgb(0xaec2e0)
	SnowColor  = rgb(0xffffff)
	CloudColor = rgb(0xf2f4f7)
	FlashColor = rgb(0xfffbe6)
)

// Lerp blends a into b by t.
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	t = Clamp01(t)
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// Scale multiplies the colour channels by f, keeping alpha.
func Scale(c color.RGBA, f float64) color.RGBA {
	f = Clamp01(f)
	return color.RGBA{R: uint8(float64(c.R) * f), G: uint8(float64(c.G) * f), B: uint8(float64(c.B) * f), A: c.A}
}

// Fade returns c with premultiplied alpha a.
func Fade(c color.RGBA, a float64) color.RGBA {
	a = Clamp01(a)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
}

func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
