package arc

import (
	"errors"
	"fmt"
)

var (
	// ErrInfeasibleSpeed indicates no launch speed below the search bound completes the arc.
	ErrInfeasibleSpeed = errors.New("arc: no feasible launch speed within search range")

	// ErrDegenerateTrajectory indicates the body left the track before a single step was recorded.
	ErrDegenerateTrajectory = errors.New("arc: empty on-track trajectory")

	// ErrIterationLimit indicates a stepping loop exceeded its step cap.
	ErrIterationLimit = errors.New("arc: iteration limit exceeded")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("arc: parameter out of valid bounds")
)

type Phase string

const (
	PhaseArc    Phase = "arc"
	PhaseFlight Phase = "flight"
)

// SimulationError wraps an error with the phase and step it occurred at.
type SimulationError struct {
	Phase   Phase
	Step    int
	Time    float64
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("%s step %d (t=%.4f): %v", e.Phase, e.Step, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
