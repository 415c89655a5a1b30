package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/san-kum/teardown/internal/scene"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS        = 60
	DefaultTheme      = "studio"
	DefaultMinPolar   = math.Pi / 6
	DefaultMaxPolar   = math.Pi - math.Pi/6
	DefaultOrbitFreq  = 6.0
	DefaultOrbitDamp  = 1.0
	DefaultDataDir    = ".teardown"
	DefaultPresetName = "smooth"
)

var (
	ErrInvalidAlpha    = errors.New("config: alpha must be in (0, 1)")
	ErrInvalidDistance = errors.New("config: camera distances must be positive")
	ErrInvalidScale    = errors.New("config: hover scale must be positive")
	ErrInvalidFPS      = errors.New("config: fps must be between 1 and 240")
	ErrInvalidOrbit    = errors.New("config: orbit polar limits must satisfy 0 <= min < max <= pi")
	ErrUnknownPreset   = errors.New("config: unknown preset")
)

type Config struct {
	Pacing  PacingConfig `yaml:"pacing"`
	Orbit   OrbitConfig  `yaml:"orbit"`
	FPS     int          `yaml:"fps"`
	Theme   string       `yaml:"theme"`
	LogFile string       `yaml:"log_file"`
	DataDir string       `yaml:"data_dir"`
}

type PacingConfig struct {
	Alpha      float64 `yaml:"alpha"`
	HoverScale float64 `yaml:"hover_scale"`
	CameraNear float64 `yaml:"camera_near"`
	CameraFar  float64 `yaml:"camera_far"`
}

// OrbitConfig bounds the viewer's orbit controls. Polar angles are measured
// from the +Y axis, so pi/2 looks straight at the device.
type OrbitConfig struct {
	MinPolar  float64 `yaml:"min_polar"`
	MaxPolar  float64 `yaml:"max_polar"`
	Frequency float64 `yaml:"frequency"`
	Damping   float64 `yaml:"damping"`
}

func DefaultConfig() *Config {
	return &Config{
		Pacing: PacingConfig{
			Alpha:      scene.DefaultAlpha,
			HoverScale: scene.DefaultHoverScale,
			CameraNear: scene.DefaultCameraNear,
			CameraFar:  scene.DefaultCameraFar,
		},
		Orbit: OrbitConfig{
			MinPolar:  DefaultMinPolar,
			MaxPolar:  DefaultMaxPolar,
			Frequency: DefaultOrbitFreq,
			Damping:   DefaultOrbitDamp,
		},
		FPS:     DefaultFPS,
		Theme:   DefaultTheme,
		DataDir: DefaultDataDir,
	}
}

// Load reads path on top of the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	p := c.Pacing
	if !(p.Alpha > 0 && p.Alpha < 1) {
		return fmt.Errorf("%w: got %g", ErrInvalidAlpha, p.Alpha)
	}
	if p.HoverScale <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidScale, p.HoverScale)
	}
	if p.CameraNear <= 0 || p.CameraFar <= 0 {
		return fmt.Errorf("%w: near %g, far %g", ErrInvalidDistance, p.CameraNear, p.CameraFar)
	}
	if c.FPS < 1 || c.FPS > 240 {
		return fmt.Errorf("%w: got %d", ErrInvalidFPS, c.FPS)
	}
	o := c.Orbit
	if o.MinPolar < 0 || o.MaxPolar > math.Pi || o.MinPolar >= o.MaxPolar {
		return fmt.Errorf("%w: got [%g, %g]", ErrInvalidOrbit, o.MinPolar, o.MaxPolar)
	}
	return nil
}

// ApplyPreset overwrites the pacing block with a named preset.
func (c *Config) ApplyPreset(name string) error {
	p := GetPreset(name)
	if p == nil {
		return fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	c.Pacing = *p
	return nil
}

func (c *Config) ScenePacing() scene.Pacing {
	return scene.Pacing{
		Alpha:      c.Pacing.Alpha,
		HoverScale: c.Pacing.HoverScale,
		CameraNear: c.Pacing.CameraNear,
		CameraFar:  c.Pacing.CameraFar,
	}
}
