package config

import (
	"sort"

	"github.com/san-kum/worksim/internal/sim"
)

var Presets = map[string]sim.Params{
	"aligned":       {Force: 50, Angle: 0, Distance: 5},
	"perpendicular": {Force: 50, Angle: 90, Distance: 5},
	"opposed":       {Force: 50, Angle: 180, Distance: 5},
	"inclined":      {Force: 80, Angle: 30, Distance: 8},
	"steep":         {Force: 100, Angle: 75, Distance: 10},
	"braking":       {Force: 40, Angle: 150, Distance: 6},
	"lift":          {Force: 60, Angle: -45, Distance: 4},
}

var presetInfo = map[string]string{
	"aligned":       "maximum work, force along the motion",
	"perpendicular": "zero work, force across the motion",
	"opposed":       "negative work, force against the motion",
	"inclined":      "pulling a sled with a rope",
	"steep":         "mostly lifting, little work",
	"braking":       "force mostly resisting the motion",
	"lift":          "pushing down at an angle",
}

// GetPreset returns the default config with the named preset applied, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.SetParams(p)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func PresetInfo(name string) string { return presetInfo[name] }
