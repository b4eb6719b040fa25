package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/arcsim/internal/arc"
)

const (
	DefaultMass            = 2.0
	DefaultRadius          = 4.0
	DefaultAngleDeg        = 180.0
	DefaultFriction        = 0.02
	DefaultGravity         = 9.81
	DefaultDt              = 0.01
	DefaultFlightDt        = 0.01
	DefaultTolerance       = 1e-4
	DefaultUpperBound      = 100.0
	DefaultMinSpeed        = 1e-3
	DefaultMaxArcSteps     = 1_000_000
	DefaultMaxFlightSteps  = 1_000_000
	DefaultMinFlightPoints = 10
	DefaultOutputDir       = "out"
)

type Config struct {
	Track    TrackConfig    `yaml:"track"`
	Numerics NumericsConfig `yaml:"numerics"`
	Output   OutputConfig   `yaml:"output"`
}

type TrackConfig struct {
	Mass     float64 `yaml:"mass"`
	Radius   float64 `yaml:"radius"`
	AngleDeg float64 `yaml:"total_angle_deg"`
	Friction float64 `yaml:"friction"`
	Gravity  float64 `yaml:"gravity"`
}

// NumericsConfig holds accuracy and performance knobs; none of them are
// physical constants.
type NumericsConfig struct {
	Dt              float64 `yaml:"dt"`
	FlightDt        float64 `yaml:"dt_flight"`
	Tolerance       float64 `yaml:"tolerance"`
	UpperBound      float64 `yaml:"upper_bound"`
	MinSpeed        float64 `yaml:"min_speed"`
	MaxArcSteps     int     `yaml:"max_arc_steps"`
	MaxFlightSteps  int     `yaml:"max_flight_steps"`
	MinFlightPoints int     `yaml:"min_flight_points"`
}

type OutputConfig struct {
	Dir  string `yaml:"dir"`
	CSV  bool   `yaml:"csv"`
	JSON bool   `yaml:"json"`
	SVG  bool   `yaml:"svg"`
	PNG  bool   `yaml:"png"`
}

func DefaultConfig() *Config {
	return &Config{
		Track: TrackConfig{
			Mass:     DefaultMass,
			Radius:   DefaultRadius,
			AngleDeg: DefaultAngleDeg,
			Friction: DefaultFriction,
			Gravity:  DefaultGravity,
		},
		Numerics: NumericsConfig{
			Dt:              DefaultDt,
			FlightDt:        DefaultFlightDt,
			Tolerance:       DefaultTolerance,
			UpperBound:      DefaultUpperBound,
			MinSpeed:        DefaultMinSpeed,
			MaxArcSteps:     DefaultMaxArcSteps,
			MaxFlightSteps:  DefaultMaxFlightSteps,
			MinFlightPoints: DefaultMinFlightPoints,
		},
		Output: OutputConfig{
			Dir: DefaultOutputDir,
		},
	}
}

// Load reads a YAML file on top of the defaults, so a file only needs the
// fields it changes.
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

// Params converts the file representation into the simulation parameters.
func (c *Config) Params() arc.Params {
	return arc.Params{
		Mass:            c.Track.Mass,
		Radius:          c.Track.Radius,
		TotalAngle:      c.Track.AngleDeg * math.Pi / 180,
		Friction:        c.Track.Friction,
		Gravity:         c.Track.Gravity,
		Dt:              c.Numerics.Dt,
		FlightDt:        c.Numerics.FlightDt,
		Tolerance:       c.Numerics.Tolerance,
		UpperBound:      c.Numerics.UpperBound,
		MinSpeed:        c.Numerics.MinSpeed,
		MaxArcSteps:     c.Numerics.MaxArcSteps,
		MaxFlightSteps:  c.Numerics.MaxFlightSteps,
		MinFlightPoints: c.Numerics.MinFlightPoints,
	}
}

// Validate checks the converted parameters.
func (c *Config) Validate() error {
	return c.Params().Validate()
}

func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
