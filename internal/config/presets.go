package config

import (
	"math"
	"sort"
)

var Presets = map[string]*Config{
	"reference": preset(func(c *Config) {}),
	"frictionless": preset(func(c *Config) {
		c.Track.Friction = 0
	}),
	"quarter": preset(func(c *Config) {
		c.Track.AngleDeg = 90
	}),
	"shallow": preset(func(c *Config) {
		c.Track.AngleDeg = 0.1 * 180 / math.Pi
	}),
	"sticky": preset(func(c *Config) {
		c.Track.Friction = 2
	}),
	"fine": preset(func(c *Config) {
		c.Numerics.Dt = 0.001
		c.Numerics.FlightDt = 0.001
		c.Numerics.MinSpeed = 1e-4
	}),
	"moon": preset(func(c *Config) {
		c.Track.Gravity = 1.62
	}),
}

func preset(apply func(c *Config)) *Config {
	c := DefaultConfig()
	apply(c)
	return c
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
