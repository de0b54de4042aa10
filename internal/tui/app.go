// Package tui renders the dashboard and its animation layer in a terminal.
package tui

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/weather-visualization/internal/animation"
	"github.com/iburimskiy/weather-visualization/internal/config"
	"github.com/iburimskiy/weather-visualization/internal/dashboard"
	"github.com/iburimskiy/weather-visualization/internal/prefs"
	"github.com/iburimskiy/weather-visualization/internal/weather"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// Sound is the thunder player as the renderer sees it.
type Sound interface {
	Level() float64
	Close()
}

// Options wires the terminal app to the rest of the program.
type Options struct {
	Config     *config.Config
	Dashboard  *dashboard.Dashboard
	Controller *animation.Controller
	Layer      *animation.Layer
	Prefs      *prefs.Manager
	Locator    dashboard.Locator
	Thunder    Sound // may be nil
	Clock      animation.Clock
}

type App struct {
	screen  tcell.Screen
	cfg     *config.Config
	dash    *dashboard.Dashboard
	ctrl    *animation.Controller
	layer   *animation.Layer
	prefs   *prefs.Manager
	locator dashboard.Locator
	thunder Sound
	clock   animation.Clock

	width, height int

	// city prompt
	typing bool
	input  []rune

	lastFetch time.Time
}

// New wraps an initialized screen.
func New(screen tcell.Screen, o Options) *App {
	if o.Clock == nil {
		o.Clock = animation.SystemClock{}
	}
	a := &App{
		screen:  screen,
		cfg:     o.Config,
		dash:    o.Dashboard,
		ctrl:    o.Controller,
		layer:   o.Layer,
		prefs:   o.Prefs,
		locator: o.Locator,
		thunder: o.Thunder,
		clock:   o.Clock,
	}
	a.width, a.height = screen.Size()
	return a
}

// Run drives the app until the user quits.
func (a *App) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.tick()
			a.draw()
		}
	}
}

// tick advances everything that is time-driven.
func (a *App) tick() {
	now := a.clock.Now()
	if a.dash.Poll() {
		a.ctrl.UpdateAnimation(a.dash.Condition())
	}
	if a.lastFetch.IsZero() || (now.Sub(a.lastFetch) >= a.cfg.RefreshInterval && !a.dash.Loading()) {
		a.fetch(a.dash.Refresh)
	}
	a.ctrl.Frame()
}

func (a *App) fetch(do func()) {
	a.lastFetch = a.clock.Now()
	do()
}

// handleEvent returns false when the app should exit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if a.typing {
			a.handlePrompt(ev)
			return true
		}
		return a.handleKey(ev)
	case *tcell.EventResize:
		a.screen.Sync()
		a.width, a.height = a.screen.Size()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		return false
	case tcell.KeyEnter:
		a.typing, a.input = true, a.input[:0]
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch r := ev.Rune(); {
	case r == 'q' || r == 'Q':
		return false
	case r == 's' || r == 'S' || r == '/':
		a.typing, a.input = true, a.input[:0]
	case r == 'l' || r == 'L':
		a.fetch(func() { a.dash.Locate(a.locator) })
	case r >= '1' && r <= '9':
		if i := int(r - '1'); i < len(a.cfg.Shortcuts) {
			city := a.cfg.Shortcuts[i]
			a.fetch(func() { a.dash.Search(weather.CityQuery(city)) })
		}
	case r == 'u' || r == 'U':
		a.dash.ToggleUnits()
	case r == 't' || r == 'T':
		a.prefs.SetTheme(a.prefs.Settings().Theme.Toggle())
	case r == 'm' || r == 'M':
		a.prefs.SetReducedMotion(!a.prefs.ReducedMotion())
	case r == 'r' || r == 'R':
		a.fetch(a.dash.Refresh)
	}
	return true
}

// handlePrompt edits the city being typed. Enter searches, Escape cancels.
func (a *App) handlePrompt(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		a.typing = false
	case tcell.KeyEnter:
		a.typing = false
		if city := strings.TrimSpace(string(a.input)); city != "" {
			a.fetch(func() { a.dash.Search(weather.CityQuery(city)) })
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(a.input) > 0 {
			a.input = a.input[:len(a.input)-1]
		}
	case tcell.KeyRune:
		a.input = append(a.input, ev.Rune())
	}
}

// Close stops audio and restores the terminal.
func (a *App) Close() {
	a.ctrl.Close()
	if a.thunder != nil {
		a.thunder.Close()
	}
	a.screen.Fini()
}
