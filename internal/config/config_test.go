package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/worksim/internal/sim"
	"github.com/san-kum/worksim/internal/work"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Force != 50 || cfg.Angle != 0 || cfg.Distance != 5 {
		t.Errorf("unexpected defaults: %+v", cfg.Params())
	}
	if cfg.Animation.Increment != 0.01 {
		t.Errorf("expected increment 0.01, got %f", cfg.Animation.Increment)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"force above max", func(c *Config) { c.Force = 500 }, work.ErrParameterBounds},
		{"negative distance", func(c *Config) { c.Distance = -1 }, work.ErrParameterBounds},
		{"angle out of range", func(c *Config) { c.Angle = 270 }, work.ErrParameterBounds},
		{"inverted limits", func(c *Config) { c.Limits.Force = Range{Min: 10, Max: 0, Step: 1} }, work.ErrInvalidLimits},
		{"zero step", func(c *Config) { c.Limits.Angle.Step = 0 }, work.ErrInvalidLimits},
		{"unknown pacing", func(c *Config) { c.Animation.Pacing = "vsync" }, work.ErrInvalidPacing},
		{"zero increment", func(c *Config) { c.Animation.Increment = 0 }, work.ErrParameterBounds},
		{"zero fps", func(c *Config) { c.Animation.FPS = 0 }, work.ErrParameterBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestValidateReportsParam(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Distance = 42
	var pe *work.ParamError
	if err := cfg.Validate(); !errors.As(err, &pe) {
		t.Fatalf("expected ParamError, got %v", err)
	}
	if pe.Name != "distance" || pe.Value != 42 {
		t.Errorf("unexpected param error %+v", pe)
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "worksim.yaml")

	cfg := DefaultConfig()
	cfg.Force, cfg.Angle = 75, 45
	cfg.Animation.Pacing = string(sim.PaceTime)
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Force != 75 || loaded.Angle != 45 {
		t.Errorf("expected 75/45, got %v/%v", loaded.Force, loaded.Angle)
	}
	if loaded.Animation.Pacing != "time" {
		t.Errorf("expected time pacing, got %s", loaded.Animation.Pacing)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("angle: 30\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Angle != 30 || cfg.Force != DefaultForce || cfg.Animation.FPS != DefaultFPS {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("force: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestRangeClamp(t *testing.T) {
	r := Range{Min: 0, Max: 10, Step: 0.5}
	tests := []struct {
		in, want float64
	}{
		{-3, 0},
		{12, 10},
		{4.3, 4.5},
		{4.2, 4},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := r.Clamp(tt.in); got != tt.want {
			t.Errorf("clamp(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
	if got := r.Nudge(9.5, 3); got != 10 {
		t.Errorf("nudge should saturate, got %v", got)
	}
	if got := r.Nudge(5, -2); got != 4 {
		t.Errorf("expected 4, got %v", got)
	}
}

func TestNewStepper(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Animation.Pacing = "time"
	cfg.Animation.Duration = 2
	s := cfg.NewStepper()
	if s.Pacing != sim.PaceTime || s.Duration != 2*time.Second {
		t.Errorf("unexpected stepper %+v", s)
	}
	if got := cfg.FrameInterval(); got != time.Second/60 {
		t.Errorf("expected 60fps interval, got %v", got)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("perpendicular")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Angle != 90 {
		t.Errorf("expected angle 90, got %f", cfg.Angle)
	}
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsValidate(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for _, name := range names {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
		if PresetInfo(name) == "" {
			t.Errorf("preset %s has no description", name)
		}
	}
}
