package metrics

import (
	"math"

	"github.com/san-kum/arcsim/internal/arc"
)

// Energy reports the mechanical energy lost on the track, in joules.
// With friction off it measures integration drift instead.
type Energy struct {
	name    string
	mass    float64
	gravity float64
	initial float64
	current float64
	samples int
}

func NewEnergy(p arc.Params, launch float64) *Energy {
	return &Energy{
		name:    "energy_dissipated",
		mass:    p.Mass,
		gravity: p.Gravity,
		initial: 0.5 * p.Mass * launch * launch,
	}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(s arc.ArcSample) {
	e.current = Mechanical(e.mass, e.gravity, s.Speed, s.Y)
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.initial - e.current
}

func (e *Energy) Reset() {
	e.current = 0
	e.samples = 0
}

// Mechanical is kinetic plus potential energy above ground level.
func Mechanical(mass, gravity, speed, height float64) float64 {
	return 0.5*mass*speed*speed + mass*gravity*height
}

// FrictionlessCriticalSpeed is the launch speed energy conservation demands
// on a frictionless arc of p.TotalAngle ≤ π: the body must keep a positive
// speed and a non-negative normal force all the way to the end.
func FrictionlessCriticalSpeed(p arc.Params) float64 {
	c := math.Cos(p.TotalAngle)
	k := math.Max(2-2*c, 2-3*c)
	return math.Sqrt(p.Gravity * p.Radius * math.Max(k, 0))
}
