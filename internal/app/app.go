// Package app assembles the dashboard, animation controller, preferences and
// audio shared by the desktop and terminal front-ends.
package app

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/iburimskiy/weather-visualization/internal/animation"
	"github.com/iburimskiy/weather-visualization/internal/config"
	"github.com/iburimskiy/weather-visualization/internal/dashboard"
	"github.com/iburimskiy/weather-visualization/internal/prefs"
	"github.com/iburimskiy/weather-visualization/internal/thunder"
	"github.com/iburimskiy/weather-visualization/internal/weather"
)

const appName = "weather-visualization"

type App struct {
	Config     *config.Config
	Prefs      *prefs.Manager
	Dashboard  *dashboard.Dashboard
	Controller *animation.Controller
	Layer      *animation.Layer
	Locator    *weather.Locator
	Thunder    *thunder.Player // nil when audio is off or unavailable
}

// Setup loads configuration from configPath (defaults when empty), overrides
// the first city when city is set and wires everything together.
func Setup(configPath, city string) (*App, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if city != "" {
		cfg.DefaultCity = city
	}
	if cfg.APIKey == "" {
		log.Printf("[App] no API key: set api_key or %s", config.EnvAPIKey)
	}

	counts := animation.Counts{
		Rain:         cfg.Animation.Rain,
		Snow:         cfg.Animation.Snow,
		Thunderstorm: cfg.Animation.Thunderstorm,
	}
	if err := counts.Validate(); err != nil {
		return nil, fmt.Errorf("animation counts: %w", err)
	}

	pm := prefs.Open(appName)
	if !pm.Stored() {
		pm.SetUnits(cfg.Units)
	}
	if cfg.Animation.ReducedMotion {
		pm.SetReducedMotion(true)
	}

	var player *thunder.Player
	if cfg.Audio.Enabled {
		p, err := thunder.New(cfg.Audio)
		if err != nil {
			log.Printf("[Thunder] audio disabled: %v", err)
		} else {
			player = p
		}
	}

	layer := animation.NewLayer()
	ctrl := animation.NewController(animation.Config{
		Clock:   animation.SystemClock{},
		Rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
		Motion:  pm,
		Counts:  counts,
		OnFlash: player.Play,
	})
	if err := ctrl.Initialize(layer); err != nil {
		return nil, err
	}

	client := weather.NewClient(cfg.APIKey, cfg.BaseURL, cfg.RequestTimeout)
	dash := dashboard.New(client, pm, weather.CityQuery(cfg.DefaultCity), cfg.RequestTimeout)

	return &App{
		Config:     cfg,
		Prefs:      pm,
		Dashboard:  dash,
		Controller: ctrl,
		Layer:      layer,
		Locator:    weather.NewLocator(cfg.RequestTimeout),
		Thunder:    player,
	}, nil
}

// Close stops the animation and releases the speaker.
func (a *App) Close() {
	a.Controller.Close()
	a.Thunder.Close()
}
