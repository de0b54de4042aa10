// Package game is the desktop dashboard: an ebiten window showing the weather
// report with the animation layer drawn behind it.
package game

import (
	"errors"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/weather-visualization/internal/animation"
	"github.com/iburimskiy/weather-visualization/internal/config"
	"github.com/iburimskiy/weather-visualization/internal/dashboard"
	"github.com/iburimskiy/weather-visualization/internal/prefs"
	"github.com/iburimskiy/weather-visualization/internal/weather"
)

// Sound reports how loud the thunder currently is.
type Sound interface {
	Level() float64
}

// Options wires the game to the rest of the program.
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

type Game struct {
	cfg     *config.Config
	dash    *dashboard.Dashboard
	ctrl    *animation.Controller
	layer   *animation.Layer
	prefs   *prefs.Manager
	locator dashboard.Locator
	thunder Sound
	clock   animation.Clock

	// layer fade
	fade       harmonica.Spring
	opacity    float64
	opacityVel float64

	// search dialog
	dialog chan dialogResult
	asking bool

	lastFetch time.Time
	lastErr   error

	// input edge detection
	prevKey map[ebiten.Key]bool
}

func New(o Options) *Game {
	if o.Clock == nil {
		o.Clock = animation.SystemClock{}
	}
	return &Game{
		cfg:     o.Config,
		dash:    o.Dashboard,
		ctrl:    o.Controller,
		layer:   o.Layer,
		prefs:   o.Prefs,
		locator: o.Locator,
		thunder: o.Thunder,
		clock:   o.Clock,
		fade:    harmonica.NewSpring(harmonica.FPS(ebiten.DefaultTPS), config.FadeFrequency, config.FadeDamping),
		opacity: o.Layer.Opacity(),
		dialog:  make(chan dialogResult, 1),
		prevKey: map[ebiten.Key]bool{},
	}
}

var shortcutKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	now := g.clock.Now()

	if g.dash.Poll() {
		g.ctrl.UpdateAnimation(g.dash.Condition())
	}
	g.pollDialog()

	if !g.asking {
		if justPressed(ebiten.KeyS) || justPressed(ebiten.KeyEnter) {
			g.openSearchDialog()
		}
		if justPressed(ebiten.KeyL) {
			g.fetch(now, func() { g.dash.Locate(g.locator) })
		}
		for i, k := range shortcutKeys {
			if justPressed(k) && i < len(g.cfg.Shortcuts) {
				city := g.cfg.Shortcuts[i]
				g.fetch(now, func() { g.dash.Search(weather.CityQuery(city)) })
			}
		}
		if justPressed(ebiten.KeyU) {
			g.dash.ToggleUnits()
		}
		if justPressed(ebiten.KeyT) {
			g.prefs.SetTheme(g.prefs.Settings().Theme.Toggle())
		}
		if justPressed(ebiten.KeyM) {
			g.prefs.SetReducedMotion(!g.prefs.ReducedMotion())
		}
		if justPressed(ebiten.KeyR) {
			g.fetch(now, g.dash.Refresh)
		}
		if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
			return ebiten.Termination
		}
	}

	if g.lastFetch.IsZero() || (now.Sub(g.lastFetch) >= g.cfg.RefreshInterval && !g.dash.Loading()) {
		g.fetch(now, g.dash.Refresh)
	}

	g.ctrl.Frame()
	g.stepOpacity()
	return nil
}

func (g *Game) fetch(now time.Time, do func()) {
	g.lastFetch = now
	g.lastErr = nil
	do()
}

// stepOpacity eases the drawn opacity toward the layer's. Reduced motion
// snaps instead of animating.
func (g *Game) stepOpacity() {
	target := g.layer.Opacity()
	if g.ctrl.Reduced() {
		g.opacity, g.opacityVel = target, 0
		return
	}
	g.opacity, g.opacityVel = g.fade.Update(g.opacity, g.opacityVel, target)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Run opens the window and blocks until the user quits.
func Run(g *Game) error {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Weather - S: search, L: locate, 1-5: cities, U: units, T: theme, M: motion, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
