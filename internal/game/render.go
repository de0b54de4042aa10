package game

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/weather-visualization/internal/animation"
	"github.com/iburimskiy/weather-visualization/internal/config"
	"github.com/iburimskiy/weather-visualization/internal/display"
)

func (g *Game) Draw(screen *ebiten.Image) {
	now := g.clock.Now()
	bg := display.Background(g.mainCondition(), g.prefs.Settings().Theme)

	g.drawBackground(screen, bg)
	g.drawLayer(screen, now)
	g.drawHUD(screen)
}

func (g *Game) mainCondition() string {
	if rep := g.dash.Report(); rep != nil {
		return rep.Current.Primary().Main
	}
	return ""
}

func (g *Game) drawBackground(screen *ebiten.Image, bg display.Gradient) {
	for y := 0; y < config.WindowHeight; y++ {
		ratio := float64(y) / float64(config.WindowHeight)
		vector.DrawFilledRect(screen, 0, float32(y), config.WindowWidth, 1, bg.At(ratio), false)
	}
}

// drawLayer renders every element on the animation layer at the eased layer
// opacity, then the lightning flash on top.
func (g *Game) drawLayer(screen *ebiten.Image, now time.Time) {
	alpha := g.opacity
	if alpha <= 0 {
		return
	}
	w, h := float64(config.WindowWidth), float64(config.WindowHeight)

	elements := g.layer.Elements()
	for _, e := range elements {
		pt, ok := display.Locate(e, now)
		if !ok {
			continue
		}
		x, y := float32(pt.X*w), float32(pt.Y*h)
		switch e.Kind {
		case animation.KindRain:
			drawRain(screen, x, y, display.Fade(display.RainColor, alpha))
		case animation.KindSnow:
			r := float32(config.SnowRadius * display.SizeScale(e.Size))
			vector.DrawFilledCircle(screen, x, y, r, display.Fade(display.SnowColor, alpha), true)
		case animation.KindCloud:
			r := float32(config.CloudRadius * display.SizeScale(e.Size))
			drawCloud(screen, x, y, r, display.Fade(display.CloudColor, alpha*0.8))
		}
	}

	flash := display.Flash(elements, now) * config.FlashAlpha
	if g.thunder != nil {
		if rumble := g.thunder.Level() * 0.5; rumble > flash {
			flash = rumble
		}
	}
	if flash > 0 {
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), display.Fade(display.FlashColor, flash*alpha), false)
	}
}

func drawRain(screen *ebiten.Image, x, y float32, c color.Color) {
	vector.StrokeLine(screen, x, y, x-1, y+config.RainLength, config.RainWidth, c, true)
}

// drawCloud draws a puff of three overlapping circles centred on x,y.
func drawCloud(screen *ebiten.Image, x, y, r float32, c color.Color) {
	vector.DrawFilledCircle(screen, x-r*0.7, y+r*0.2, r*0.7, c, true)
	vector.DrawFilledCircle(screen, x, y, r, c, true)
	vector.DrawFilledCircle(screen, x+r*0.8, y+r*0.25, r*0.65, c, true)
}
