package arc

import (
	"fmt"
	"math"
)

// Params holds the physical constants and numerical knobs of one run.
// Units are SI: kg, m, rad, m/s², s, m/s.
type Params struct {
	Mass       float64 `json:"mass"`
	Radius     float64 `json:"radius"`
	TotalAngle float64 `json:"total_angle"`
	Friction   float64 `json:"friction"`
	Gravity    float64 `json:"gravity"`

	// Dt and FlightDt are integration steps for the two phases.
	Dt       float64 `json:"dt"`
	FlightDt float64 `json:"dt_flight"`

	Tolerance  float64 `json:"tolerance"`
	UpperBound float64 `json:"upper_bound"`
	MinSpeed   float64 `json:"min_speed"`

	MaxArcSteps     int `json:"max_arc_steps"`
	MaxFlightSteps  int `json:"max_flight_steps"`
	MinFlightPoints int `json:"min_flight_points"`
}

func DefaultParams() Params {
	return Params{
		Mass:            2,
		Radius:          4,
		TotalAngle:      math.Pi,
		Friction:        0.02,
		Gravity:         9.81,
		Dt:              0.01,
		FlightDt:        0.01,
		Tolerance:       1e-4,
		UpperBound:      100,
		MinSpeed:        1e-3,
		MaxArcSteps:     1_000_000,
		MaxFlightSteps:  1_000_000,
		MinFlightPoints: 10,
	}
}

// Validate reports the first field outside its valid range.
func (p Params) Validate() error {
	fields := []struct {
		name     string
		value    float64
		positive bool
	}{
		{"mass", p.Mass, true},
		{"radius", p.Radius, true},
		{"total_angle", p.TotalAngle, false},
		{"friction", p.Friction, false},
		{"gravity", p.Gravity, true},
		{"dt", p.Dt, true},
		{"dt_flight", p.FlightDt, true},
		{"tolerance", p.Tolerance, true},
		{"upper_bound", p.UpperBound, true},
		{"min_speed", p.MinSpeed, false},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s is %v", ErrParameterBounds, f.name, f.value)
		}
		if f.positive && f.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrParameterBounds, f.name, f.value)
		}
		if f.value < 0 {
			return fmt.Errorf("%w: %s must be non-negative, got %g", ErrParameterBounds, f.name, f.value)
		}
	}
	if p.MaxArcSteps <= 0 || p.MaxFlightSteps <= 0 {
		return fmt.Errorf("%w: step caps must be positive (arc=%d, flight=%d)", ErrParameterBounds, p.MaxArcSteps, p.MaxFlightSteps)
	}
	if p.MinFlightPoints < 0 {
		return fmt.Errorf("%w: min_flight_points must be non-negative, got %d", ErrParameterBounds, p.MinFlightPoints)
	}
	return nil
}

// MaxIterations is the number of bisection rounds Solve performs.
func (p Params) MaxIterations() int {
	if p.UpperBound <= p.Tolerance {
		return 0
	}
	return int(math.Ceil(math.Log2(p.UpperBound / p.Tolerance)))
}
