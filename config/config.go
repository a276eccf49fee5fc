// Package config provides configuration loading and access for the map
// viewer.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all viewer configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	View      ViewConfig      `yaml:"view"`
	Follow    FollowConfig    `yaml:"follow"`
	FlyTo     FlyToConfig     `yaml:"flyto"`
	Markers   MarkersConfig   `yaml:"markers"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// ViewConfig holds the initial viewport state and zoom constraints.
type ViewConfig struct {
	CenterX  float64 `yaml:"center_x"`
	CenterY  float64 `yaml:"center_y"`
	Scale    float64 `yaml:"scale"`
	MinScale float64 `yaml:"min_scale"`
	MaxScale float64 `yaml:"max_scale"`
	GridStep float64 `yaml:"grid_step"` // graticule spacing in global units
}

// FollowConfig holds follow-me parameters.
type FollowConfig struct {
	RecenterPixels float64 `yaml:"recenter_pixels"` // drift before the view re-centers
	TargetSpeed    float64 `yaml:"target_speed"`    // global units per second
	TurnRate       float64 `yaml:"turn_rate"`       // radians per second
	HeadingUp      bool    `yaml:"heading_up"`      // rotate the map to the target heading
}

// FlyToConfig holds fly-to gesture parameters.
type FlyToConfig struct {
	FarPixels    float64 `yaml:"far_pixels"`     // distance that triggers the staged flight
	ZoomOutRatio float64 `yaml:"zoom_out_ratio"` // scale divisor for the overview stage
}

// MarkersConfig holds placemark generation parameters.
type MarkersConfig struct {
	Count  int     `yaml:"count"`
	Spread float64 `yaml:"spread"` // half-extent of the placement square around the origin
	Seed   int64   `yaml:"seed"`
}

// TelemetryConfig holds stats collection parameters.
type TelemetryConfig struct {
	WindowSeconds float64 `yaml:"window_seconds"`
}

// DerivedConfig holds values computed from the loaded configuration.
type DerivedConfig struct {
	PixelW float64 // Screen.Width as float
	PixelH float64 // Screen.Height as float
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// WriteYAML saves the configuration to a file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.PixelW = float64(c.Screen.Width)
	c.Derived.PixelH = float64(c.Screen.Height)
}
