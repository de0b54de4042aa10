package game

import (
	"errors"
	"log"
	"strings"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/weather-visualization/internal/weather"
)

type dialogResult struct {
	city string
	err  error
}

// openSearchDialog asks for a city on a native dialog. The dialog blocks, so
// it runs on its own goroutine and hands the answer back through g.dialog.
func (g *Game) openSearchDialog() {
	g.asking = true
	initial := ""
	if q := g.dash.Query(); !q.ByCoords {
		initial = q.City
	}
	go func() {
		city, err := zenity.Entry("Enter city name:",
			zenity.Title("Search city"),
			zenity.EntryText(initial),
		)
		g.dialog <- dialogResult{city: city, err: err}
	}()
}

func (g *Game) pollDialog() {
	select {
	case r := <-g.dialog:
		g.asking = false
		if r.err != nil {
			if errors.Is(r.err, zenity.ErrCanceled) {
				return
			}
			log.Printf("[Game] search dialog: %v", r.err)
			g.lastErr = r.err
			return
		}
		city := strings.TrimSpace(r.city)
		if city == "" {
			return
		}
		g.fetch(g.clock.Now(), func() { g.dash.Search(weather.CityQuery(city)) })
	default:
	}
}
