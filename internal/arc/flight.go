package arc

import (
	"iter"
	"math"
)

// FlightStep advances projectile motion by p.FlightDt. The ground absorbs:
// y never goes below zero.
func FlightStep(p Params, s FlightState) FlightState {
	vy := s.VY - p.Gravity*p.FlightDt
	return FlightState{
		Pos: Point{
			X: s.Pos.X + s.VX*p.FlightDt,
			Y: math.Max(0, s.Pos.Y+vy*p.FlightDt),
		},
		VX:   s.VX,
		VY:   vy,
		Time: s.Time + p.FlightDt,
	}
}

// Flight yields the free-fall states after d until the body is on the
// ground and at least p.MinFlightPoints states were produced. Each call
// starts a fresh, reproducible sequence.
func Flight(p Params, d Detachment) iter.Seq2[FlightState, error] {
	return func(yield func(FlightState, error) bool) {
		s := d.FlightState()
		for n := 0; s.Pos.Y > 0 || n < p.MinFlightPoints; n++ {
			if n >= p.MaxFlightSteps {
				yield(s, &SimulationError{Phase: PhaseFlight, Step: n, Time: s.Time, Wrapped: ErrIterationLimit})
				return
			}
			s = FlightStep(p, s)
			if !yield(s, nil) {
				return
			}
		}
	}
}
