package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/weather-visualization/internal/config"
	"github.com/iburimskiy/weather-visualization/internal/display"
	"github.com/iburimskiy/weather-visualization/internal/weather"
)

var (
	panelColor  = color.RGBA{R: 20, G: 25, B: 35, A: 150}
	borderColor = color.RGBA{R: 150, G: 170, B: 200, A: 200}
)

// drawHUD draws the report panels. The debug font is always white, so every
// block of text sits on a dark panel.
func (g *Game) drawHUD(screen *ebiten.Image) {
	rep := g.dash.Report()
	if rep == nil {
		msg := "Press S to search for a city"
		if g.dash.Loading() {
			msg = "Loading weather..."
		}
		drawPanel(screen, config.Margin, config.Margin, 360, 40)
		ebitenutil.DebugPrintAt(screen, msg, config.Margin+12, config.Margin+12)
	} else {
		g.drawCurrent(screen, rep)
		g.drawHourly(screen, rep)
		g.drawDaily(screen, rep)
	}
	g.drawShortcuts(screen)
	g.drawStatus(screen)
}

func (g *Game) drawCurrent(screen *ebiten.Image, rep *weather.Report) {
	c := &rep.Current
	u := rep.Units
	x, y := config.Margin, config.Margin

	drawPanel(screen, x, y, 420, 250)
	lines := []string{
		display.Location(c),
		display.Date(c.Dt),
		"",
		fmt.Sprintf("%s  %s", display.Temperature(c.Main.Temp, u), c.Primary().Description),
		fmt.Sprintf("H %s  L %s", display.Temperature(c.Main.TempMax, u), display.Temperature(c.Main.TempMin, u)),
		"",
	}
	for _, r := range display.Readings(c, u) {
		lines = append(lines, fmt.Sprintf("%-12s %s", r[0], r[1]))
	}
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, x+12, y+10+i*config.LineHeight)
	}
}

func (g *Game) drawHourly(screen *ebiten.Image, rep *weather.Report) {
	x := config.Margin
	for _, it := range weather.Hourly(&rep.Forecast) {
		drawPanel(screen, x, config.HourlyY, config.HourlyCardW-6, 90)
		ebitenutil.DebugPrintAt(screen, display.Hour(it.Dt), x+8, config.HourlyY+8)
		ebitenutil.DebugPrintAt(screen, display.Temperature(it.Main.Temp, rep.Units), x+8, config.HourlyY+8+config.LineHeight)
		ebitenutil.DebugPrintAt(screen, it.Primary().Main, x+8, config.HourlyY+8+2*config.LineHeight)
		x += config.HourlyCardW
	}
}

func (g *Game) drawDaily(screen *ebiten.Image, rep *weather.Report) {
	x := config.Margin
	for _, it := range weather.Daily(&rep.Forecast) {
		drawPanel(screen, x, config.DailyY, config.DailyCardW-8, 110)
		ebitenutil.DebugPrintAt(screen, display.Day(it.Dt), x+10, config.DailyY+10)
		ebitenutil.DebugPrintAt(screen, it.Primary().Description, x+10, config.DailyY+10+config.LineHeight)
		temps := fmt.Sprintf("%s / %s", display.Temperature(it.Main.TempMax, rep.Units), display.Temperature(it.Main.TempMin, rep.Units))
		ebitenutil.DebugPrintAt(screen, temps, x+10, config.DailyY+10+2*config.LineHeight)
		ebitenutil.DebugPrintAt(screen, display.Humidity(it.Main.Humidity)+" humidity", x+10, config.DailyY+10+3*config.LineHeight)
		x += config.DailyCardW
	}
}

func (g *Game) drawShortcuts(screen *ebiten.Image) {
	x := config.WindowWidth - config.Margin - 180
	y := config.Margin
	drawPanel(screen, x, y, 180, 24+len(g.cfg.Shortcuts)*config.LineHeight)
	for i, city := range g.cfg.Shortcuts {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d  %s", i+1, city), x+12, y+12+i*config.LineHeight)
	}
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	status := display.Status(g.dash.Loading(), g.dash.Err(), g.ctrl)
	if g.lastErr != nil {
		status += " | " + g.lastErr.Error()
	}
	status += fmt.Sprintf(" | %s, %s", g.dash.Units(), g.prefs.Settings().Theme)
	drawPanel(screen, 0, config.StatusY-6, config.WindowWidth, 28)
	ebitenutil.DebugPrintAt(screen, status, config.Margin, config.StatusY)
}

func drawPanel(screen *ebiten.Image, x, y, w, h int) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), panelColor, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, borderColor, false)
}
