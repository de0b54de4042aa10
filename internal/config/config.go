package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// HUD layout
	Margin        = 20
	LineHeight    = 16
	HourlyY       = 300
	HourlyCardW   = 118
	DailyY        = 420
	DailyCardW    = 190
	StatusY       = WindowHeight - 28
	FadeFrequency = 6.0 // layer opacity spring, rad/s
	FadeDamping   = 1.0

	// Particle rendering
	RainLength  = 14
	RainWidth   = 1.5
	SnowRadius  = 3
	CloudRadius = 38
	FlashAlpha  = 0.85

	// Audio
	SampleRate     = 44100
	ThunderSeconds = 2.5
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// EnvAPIKey overrides the configured API key when set.
const EnvAPIKey = "OPENWEATHER_API_KEY"

// Config is the runtime configuration read from a YAML file.
type Config struct {
	APIKey          string        `yaml:"api_key"`
	BaseURL         string        `yaml:"base_url"`
	Units           string        `yaml:"units"`
	DefaultCity     string        `yaml:"default_city"`
	Shortcuts       []string      `yaml:"shortcuts"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	Animation       Animation     `yaml:"animation"`
	Audio           Audio         `yaml:"audio"`
}

// Animation holds the starting element-count targets.
type Animation struct {
	Rain          int  `yaml:"rain"`
	Snow          int  `yaml:"snow"`
	Thunderstorm  int  `yaml:"thunderstorm"`
	ReducedMotion bool `yaml:"reduced_motion"`
}

// Audio configures the thunder played on each lightning flash.
type Audio struct {
	Enabled     bool    `yaml:"enabled"`
	ThunderFile string  `yaml:"thunder_file"` // wav, mp3 or flac; synthesized when empty
	Volume      float64 `yaml:"volume"`       // beep volume offset, base 2
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{Audio: Audio{Enabled: true}}
	applyDefaults(c)
	return c
}

// Load reads a YAML config file, fills missing fields with defaults, applies
// the API key from the environment and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := &Config{Audio: Audio{Enabled: true}}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML from %s: %w", path, err)
	}
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func applyDefaults(c *Config) {
	if key := os.Getenv(EnvAPIKey); key != "" {
		c.APIKey = key
	}
	if c.BaseURL == "" {
		c.BaseURL = "https://api.openweathermap.org/data/2.5"
	}
	if c.Units == "" {
		c.Units = "metric"
	}
	if c.DefaultCity == "" {
		c.DefaultCity = "Mumbai"
	}
	if len(c.Shortcuts) == 0 {
		c.Shortcuts = []string{"London", "New York", "Tokyo", "Paris", "Sydney"}
	}
	if c.RefreshInterval == 0 {
		c.RefreshInterval = 10 * time.Minute
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = 10 * time.Second
	}
	if c.Animation.Rain == 0 {
		c.Animation.Rain = 80
	}
	if c.Animation.Snow == 0 {
		c.Animation.Snow = 50
	}
	if c.Animation.Thunderstorm == 0 {
		c.Animation.Thunderstorm = 100
	}
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	switch {
	case c.Units != "metric" && c.Units != "imperial":
		return fmt.Errorf("%w: units must be metric or imperial, got %q", ErrInvalid, c.Units)
	case c.RefreshInterval < time.Minute:
		return fmt.Errorf("%w: refresh_interval %v shorter than 1m", ErrInvalid, c.RefreshInterval)
	case c.RequestTimeout <= 0:
		return fmt.Errorf("%w: request_timeout must be positive", ErrInvalid)
	case len(c.Shortcuts) > 9:
		return fmt.Errorf("%w: at most 9 shortcuts, got %d", ErrInvalid, len(c.Shortcuts))
	}
	return nil
}
