// Package prefs persists the user's display preferences (units, theme and
// reduced motion) and publishes reduced-motion changes to the animation layer.
package prefs

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Settings is what gets stored between sessions.
type Settings struct {
	Units         string `yaml:"units"`
	Theme         Theme  `yaml:"theme"`
	ReducedMotion bool   `yaml:"reducedMotion"`
}

// DefaultSettings returns the settings of a first run.
func DefaultSettings() Settings {
	return Settings{
		Units: "metric",
		Theme: ThemeLight,
	}
}

const (
	settingsObject   = "preferences"
	settingsProperty = "display"
)

// Manager loads and saves Settings through gdata. A nil gdata manager keeps
// settings in memory only.
type Manager struct {
	gdataManager *gdata.Manager
	settings     Settings

	nextID    int
	listeners map[int]func()
}

// Open creates a gdata-backed manager for appName. When gdata cannot be opened
// the manager falls back to memory-only settings.
func Open(appName string) *Manager {
	gm, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Prefs] storage unavailable: %v (settings will not persist)", err)
		gm = nil
	}
	m, err := NewManager(gm)
	if err != nil {
		log.Printf("[Prefs] Warning: %v (using defaults)", err)
	}
	return m
}

// NewManager creates a manager and loads any saved settings. A load error is
// returned alongside a usable manager holding the defaults.
func NewManager(gm *gdata.Manager) (*Manager, error) {
	m := &Manager{
		gdataManager: gm,
		settings:     DefaultSettings(),
		listeners:    make(map[int]func()),
	}
	if err := m.Load(); err != nil {
		return m, err
	}
	return m, nil
}

// Load replaces the in-memory settings with the stored ones.
func (m *Manager) Load() error {
	if m.gdataManager == nil || !m.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		m.settings = DefaultSettings()
		return nil
	}

	data, err := m.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		m.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		m.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	m.settings = loaded
	return nil
}

// Save writes the settings; it is a no-op without storage.
func (m *Manager) Save() error {
	if m.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := m.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Stored reports whether settings from an earlier session exist.
func (m *Manager) Stored() bool {
	return m.gdataManager != nil && m.gdataManager.ObjectPropExists(settingsObject, settingsProperty)
}

// Settings returns a copy of the current settings.
func (m *Manager) Settings() Settings { return m.settings }

// SetUnits stores the unit system and persists it.
func (m *Manager) SetUnits(units string) {
	m.settings.Units = units
	m.persist()
}

// SetTheme stores the theme and persists it.
func (m *Manager) SetTheme(t Theme) {
	m.settings.Theme = t
	m.persist()
}

// SetReducedMotion stores the accessibility flag, persists it and notifies
// subscribers when the value changed.
func (m *Manager) SetReducedMotion(reduced bool) {
	if m.settings.ReducedMotion == reduced {
		return
	}
	m.settings.ReducedMotion = reduced
	m.persist()
	for _, fn := range m.listeners {
		fn()
	}
}

// ReducedMotion implements animation.MotionSource.
func (m *Manager) ReducedMotion() bool { return m.settings.ReducedMotion }

// Subscribe implements animation.MotionSource.
func (m *Manager) Subscribe(fn func()) func() {
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	return func() { delete(m.listeners, id) }
}

func (m *Manager) persist() {
	if err := m.Save(); err != nil {
		log.Printf("[Prefs] %v", err)
	}
}
