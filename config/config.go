// Package config provides configuration loading and access for the visualizer.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all visualizer configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Field     FieldConfig     `yaml:"field"`
	Params    ParamsConfig    `yaml:"params"`
	Animation AnimationConfig `yaml:"animation"`
	Rotator   RotatorConfig   `yaml:"rotator"`
	Controls  ControlsConfig  `yaml:"controls"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// FieldConfig holds rasterization settings.
type FieldConfig struct {
	Backend        string    `yaml:"backend"`         // libnoise, perlin or simplex
	Scale          float64   `yaml:"scale"`           // Plane units per pixel at zoom 1
	BreathingFreq  float64   `yaml:"breathing_freq"`  // b = 0.5 + 0.5*sin(t*freq)
	ChannelWeights []float32 `yaml:"channel_weights"` // Breathing weight per R, G, B
	Workers        int       `yaml:"workers"`         // Rasterization workers (0 = GOMAXPROCS)
}

// Range is a closed [Min, Max] sampling interval.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// ParamsConfig holds the distributions random fractal parameters are drawn from.
type ParamsConfig struct {
	Frequency         Range   `yaml:"frequency"`
	OctavesMin        int     `yaml:"octaves_min"`
	OctavesMax        int     `yaml:"octaves_max"` // inclusive
	Amplitude         Range   `yaml:"amplitude"`
	AmplitudeFactor   float64 `yaml:"amplitude_factor"`
	Lacunarity        Range   `yaml:"lacunarity"`
	Persistence       Range   `yaml:"persistence"`
	PersistenceFactor float64 `yaml:"persistence_factor"`
}

// AnimationConfig holds per-frame animation parameters.
type AnimationConfig struct {
	DT           float64 `yaml:"dt"`            // Virtual clock advance per frame
	RotationRate float64 `yaml:"rotation_rate"` // rotation += rate*sin(t*freq)
	RotationFreq float64 `yaml:"rotation_freq"`
	ZoomSpeed    float64 `yaml:"zoom_speed"` // Initial zoom speed, sign flips at bounds
	ZoomFreq     float64 `yaml:"zoom_freq"`  // zoom += speed*cos(t*freq)
	ZoomMin      float64 `yaml:"zoom_min"`
	ZoomMax      float64 `yaml:"zoom_max"`
}

// RotatorConfig holds background parameter rotation settings.
type RotatorConfig struct {
	IntervalSec  float64 `yaml:"interval_sec"`  // Wall-clock idle between published parameter sets
	ThresholdMin int     `yaml:"threshold_min"` // Scheduled switch threshold lower bound (inclusive)
	ThresholdMax int     `yaml:"threshold_max"` // Scheduled switch threshold upper bound (exclusive)
}

// ControlsConfig holds key bindings, as key names ("G", "H", "F11").
type ControlsConfig struct {
	Regenerate string `yaml:"regenerate"`
	ToggleHUD  string `yaml:"toggle_hud"`
	Fullscreen string `yaml:"fullscreen"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow     int     `yaml:"perf_window"`      // Frames per perf rolling window
	LogIntervalSec float64 `yaml:"log_interval_sec"` // Seconds between perf log lines
	ShowHUD        bool    `yaml:"show_hud"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32       float32
	ScreenH32       float32
	ChannelWeights  [3]float32
	RotatorInterval time.Duration
	PerfLogInterval time.Duration
	ZoomMin32       float32
	ZoomMax32       float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
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
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	cfg.computeDerived()

	return cfg, nil
}

// Validate returns every inconsistent setting found, joined into one error.
func (c *Config) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Field.Scale <= 0 {
		errs = append(errs, fmt.Errorf("field.scale must be positive, got %g", c.Field.Scale))
	}
	if len(c.Field.ChannelWeights) != 3 {
		errs = append(errs, fmt.Errorf("field.channel_weights needs 3 values, got %d", len(c.Field.ChannelWeights)))
	}
	if c.Params.OctavesMin < 1 || c.Params.OctavesMax < c.Params.OctavesMin {
		errs = append(errs, fmt.Errorf("params octaves range [%d, %d] is invalid", c.Params.OctavesMin, c.Params.OctavesMax))
	}
	for name, r := range map[string]Range{
		"frequency":   c.Params.Frequency,
		"amplitude":   c.Params.Amplitude,
		"lacunarity":  c.Params.Lacunarity,
		"persistence": c.Params.Persistence,
	} {
		if r.Max < r.Min {
			errs = append(errs, fmt.Errorf("params.%s range [%g, %g] is inverted", name, r.Min, r.Max))
		}
	}
	if c.Animation.ZoomMin <= 0 || c.Animation.ZoomMax <= c.Animation.ZoomMin {
		errs = append(errs, fmt.Errorf("animation zoom bounds [%g, %g] are invalid", c.Animation.ZoomMin, c.Animation.ZoomMax))
	}
	if c.Rotator.IntervalSec <= 0 {
		errs = append(errs, fmt.Errorf("rotator.interval_sec must be positive, got %g", c.Rotator.IntervalSec))
	}
	if c.Rotator.ThresholdMax <= c.Rotator.ThresholdMin {
		errs = append(errs, fmt.Errorf("rotator threshold range [%d, %d) is empty", c.Rotator.ThresholdMin, c.Rotator.ThresholdMax))
	}
	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	copy(c.Derived.ChannelWeights[:], c.Field.ChannelWeights)
	c.Derived.RotatorInterval = time.Duration(c.Rotator.IntervalSec * float64(time.Second))
	c.Derived.PerfLogInterval = time.Duration(c.Telemetry.LogIntervalSec * float64(time.Second))
	c.Derived.ZoomMin32 = float32(c.Animation.ZoomMin)
	c.Derived.ZoomMax32 = float32(c.Animation.ZoomMax)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
