package tui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/weather-visualization/internal/animation"
	"github.com/iburimskiy/weather-visualization/internal/config"
	"github.com/iburimskiy/weather-visualization/internal/display"
	"github.com/iburimskiy/weather-visualization/internal/weather"
)

const (
	rainGlyph  = '╎'
	cloudGlyph = '░'
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (a *App) draw() {
	now := a.clock.Now()
	group := ""
	rep := a.dash.Report()
	if rep != nil {
		group = rep.Current.Primary().Main
	}
	bg := display.Background(group, a.prefs.Settings().Theme)

	elements := a.layer.Elements()
	flash := display.Flash(elements, now) * config.FlashAlpha
	if a.thunder != nil {
		if rumble := a.thunder.Level() * 0.5; rumble > flash {
			flash = rumble
		}
	}
	flash *= a.layer.Opacity()

	rows := make([]color.RGBA, a.height)
	for y := range rows {
		ratio := 0.0
		if a.height > 1 {
			ratio = float64(y) / float64(a.height-1)
		}
		rows[y] = display.Lerp(bg.At(ratio), display.FlashColor, flash)
		style := tcell.StyleDefault.Background(rgb(rows[y]))
		for x := 0; x < a.width; x++ {
			a.screen.SetContent(x, y, ' ', nil, style)
		}
	}

	a.drawLayer(elements, rows, now)
	a.drawHUD(rep, rows, bg.Text())
	a.screen.Show()
}

// drawLayer blends every element into its row colour by the layer opacity.
func (a *App) drawLayer(elements []*animation.Element, rows []color.RGBA, now time.Time) {
	opacity := a.layer.Opacity()
	for _, e := range elements {
		pt, ok := display.Locate(e, now)
		if !ok {
			continue
		}
		x := int(pt.X * float64(a.width))
		y := int(pt.Y * float64(a.height))
		if y < 0 || y >= a.height {
			continue
		}
		row := rows[y]
		switch e.Kind {
		case animation.KindRain:
			a.cell(x, y, rainGlyph, row, display.RainColor, opacity)
		case animation.KindSnow:
			a.cell(x, y, e.Glyph, row, display.SnowColor, opacity)
		case animation.KindCloud:
			half := int(2 * display.SizeScale(e.Size))
			for dx := -half; dx <= half; dx++ {
				a.cell(x+dx, y, cloudGlyph, row, display.CloudColor, opacity)
			}
		}
	}
}

func (a *App) cell(x, y int, r rune, row, fg color.RGBA, opacity float64) {
	if x < 0 || x >= a.width {
		return
	}
	style := tcell.StyleDefault.Background(rgb(row)).Foreground(rgb(display.Lerp(row, fg, opacity)))
	a.screen.SetContent(x, y, r, nil, style)
}

func (a *App) text(x, y int, s string, rows []color.RGBA, fg color.RGBA) {
	if y < 0 || y >= a.height {
		return
	}
	style := tcell.StyleDefault.Background(rgb(rows[y])).Foreground(rgb(fg))
	for _, r := range s {
		if x >= a.width {
			return
		}
		if x >= 0 {
			a.screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

func (a *App) drawHUD(rep *weather.Report, rows []color.RGBA, fg color.RGBA) {
	if rep == nil {
		msg := "Press s to search for a city"
		if a.dash.Loading() {
			msg = "Loading weather..."
		}
		a.text(2, 1, msg, rows, fg)
	} else {
		a.drawReport(rep, rows, fg)
	}

	for i, city := range a.cfg.Shortcuts {
		a.text(a.width-20, 1+i, fmt.Sprintf("%d %s", i+1, city), rows, fg)
	}

	status := display.Status(a.dash.Loading(), a.dash.Err(), a.ctrl)
	status += fmt.Sprintf(" | %s, %s", a.dash.Units(), a.prefs.Settings().Theme)
	a.text(1, a.height-1, status, rows, fg)
	if a.typing {
		a.text(1, a.height-2, "City: "+string(a.input)+"_", rows, fg)
	}
}

// drawReport writes the current conditions, the hourly strip and the daily
// cards.
func (a *App) drawReport(rep *weather.Report, rows []color.RGBA, fg color.RGBA) {
	c := &rep.Current
	u := rep.Units
	y := 1
	a.text(2, y, display.Location(c)+"  "+display.Date(c.Dt), rows, fg)
	y++
	a.text(2, y, fmt.Sprintf("%s  %s", display.Temperature(c.Main.Temp, u), c.Primary().Description), rows, fg)
	y += 2
	for _, r := range display.Readings(c, u) {
		a.text(2, y, fmt.Sprintf("%-11s %s", r[0], r[1]), rows, fg)
		y++
	}

	y++
	x := 2
	for _, it := range weather.Hourly(&rep.Forecast) {
		a.text(x, y, display.Hour(it.Dt), rows, fg)
		a.text(x, y+1, display.Temperature(it.Main.Temp, u), rows, fg)
		x += 9
	}
	y += 3

	x = 2
	for _, it := range weather.Daily(&rep.Forecast) {
		a.text(x, y, display.Day(it.Dt), rows, fg)
		a.text(x, y+1, it.Primary().Main, rows, fg)
		a.text(x, y+2, display.Temperature(it.Main.TempMax, u)+"/"+display.Temperature(it.Main.TempMin, u), rows, fg)
		x += 14
	}
}
