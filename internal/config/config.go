package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/san-kum/worksim/internal/sim"
	"github.com/san-kum/worksim/internal/work"
	"gopkg.in/yaml.v3"
)

const (
	DefaultForce     = 50.0
	DefaultAngle     = 0.0
	DefaultDistance  = 5.0
	DefaultIncrement = sim.DefaultIncrement
	DefaultFPS       = 60
	DefaultTheme     = "slate"
)

type Config struct {
	Force     float64         `yaml:"force"`
	Angle     float64         `yaml:"angle"`
	Distance  float64         `yaml:"distance"`
	Animation AnimationConfig `yaml:"animation"`
	Limits    LimitsConfig    `yaml:"limits"`
	Theme     string          `yaml:"theme"`
	Log       LogConfig       `yaml:"log"`
}

type AnimationConfig struct {
	Pacing    string  `yaml:"pacing"`
	Increment float64 `yaml:"increment"`
	Duration  float64 `yaml:"duration"` // seconds, time pacing only
	FPS       int     `yaml:"fps"`
}

type LimitsConfig struct {
	Force    Range `yaml:"force"`
	Angle    Range `yaml:"angle"`
	Distance Range `yaml:"distance"`
}

// Range bounds a slider.
type Range struct {
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	Step float64 `yaml:"step"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

func DefaultConfig() *Config {
	return &Config{
		Force:    DefaultForce,
		Angle:    DefaultAngle,
		Distance: DefaultDistance,
		Animation: AnimationConfig{
			Pacing:    string(sim.PaceFrame),
			Increment: DefaultIncrement,
			Duration:  sim.DefaultDuration.Seconds(),
			FPS:       DefaultFPS,
		},
		Limits: LimitsConfig{
			Force:    Range{Min: 0, Max: 100, Step: 1},
			Angle:    Range{Min: -180, Max: 180, Step: 1},
			Distance: Range{Min: 0, Max: 10, Step: 0.5},
		},
		Theme: DefaultTheme,
		Log:   LogConfig{Level: "info"},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
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

// Validate checks limits, pacing and that the initial inputs lie within their limits.
func (c *Config) Validate() error {
	for _, r := range []struct {
		name  string
		rng   Range
		value float64
	}{
		{"force", c.Limits.Force, c.Force},
		{"angle", c.Limits.Angle, c.Angle},
		{"distance", c.Limits.Distance, c.Distance},
	} {
		if r.rng.Min > r.rng.Max || r.rng.Step <= 0 {
			return fmt.Errorf("limits: %w", &work.ParamError{Name: r.name, Wrapped: work.ErrInvalidLimits})
		}
		if !r.rng.Contains(r.value) {
			return fmt.Errorf("config: %w", &work.ParamError{Name: r.name, Value: r.value, Wrapped: work.ErrParameterBounds})
		}
	}
	switch sim.Pacing(c.Animation.Pacing) {
	case sim.PaceFrame, sim.PaceTime:
	default:
		return fmt.Errorf("animation: %q: %w", c.Animation.Pacing, work.ErrInvalidPacing)
	}
	if c.Animation.Increment <= 0 || c.Animation.Increment > 1 {
		return fmt.Errorf("animation: %w", &work.ParamError{Name: "increment", Value: c.Animation.Increment, Wrapped: work.ErrParameterBounds})
	}
	if c.Animation.FPS <= 0 {
		return fmt.Errorf("animation: %w", &work.ParamError{Name: "fps", Value: float64(c.Animation.FPS), Wrapped: work.ErrParameterBounds})
	}
	return nil
}

func (c *Config) Params() sim.Params {
	return sim.Params{Force: c.Force, Angle: c.Angle, Distance: c.Distance}
}

func (c *Config) SetParams(p sim.Params) {
	c.Force, c.Angle, c.Distance = p.Force, p.Angle, p.Distance
}

func (c *Config) NewStepper() *sim.Stepper {
	d := time.Duration(c.Animation.Duration * float64(time.Second))
	return sim.NewStepper(sim.Pacing(c.Animation.Pacing), c.Animation.Increment, d)
}

// FrameInterval is the redraw period.
func (c *Config) FrameInterval() time.Duration {
	fps := c.Animation.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp limits v to the range and snaps it to the nearest step from Min.
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return r.Min
	}
	if r.Step > 0 {
		v = r.Min + math.Round((v-r.Min)/r.Step)*r.Step
	}
	return math.Max(r.Min, math.Min(r.Max, v))
}

// Nudge moves v by n steps and clamps the result.
func (r Range) Nudge(v float64, n int) float64 {
	return r.Clamp(v + float64(n)*r.Step)
}
