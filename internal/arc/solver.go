package arc

import (
	"fmt"
	"math"
)

// CanComplete reports whether launching at v0 carries the body to the end
// of the arc without lifting off or stalling.
func CanComplete(p Params, v0 float64) (bool, error) {
	s := ArcState{Speed: v0}
	for step := 0; ; step++ {
		switch Detach(p, s) {
		case CauseArcEnd:
			return true, nil
		case CauseLiftoff, CauseStall:
			return false, nil
		}
		if step >= p.MaxArcSteps {
			return false, &SimulationError{Phase: PhaseArc, Step: step, Time: float64(step) * p.Dt, Wrapped: ErrIterationLimit}
		}
		s = Step(p, s)
	}
}

// Solve bisects [0, p.UpperBound] for the smallest launch speed that
// completes the arc. It always runs p.MaxIterations() rounds. A result that
// rounds to the upper bound is reported as infeasible rather than as a speed.
func Solve(p Params) (Solution, error) {
	if err := p.Validate(); err != nil {
		return Solution{}, err
	}

	lo, hi := 0.0, p.UpperBound
	n := 0
	for hi-lo > p.Tolerance {
		mid := (lo + hi) / 2
		ok, err := CanComplete(p, mid)
		if err != nil {
			return Solution{Low: lo, High: hi, Iterations: n}, fmt.Errorf("probe v0=%.6f: %w", mid, err)
		}
		if ok {
			hi = mid
		} else {
			lo = mid
		}
		n++
	}

	v0 := (lo + hi) / 2
	return Solution{
		Speed:      v0,
		Low:        lo,
		High:       hi,
		Iterations: n,
		Feasible:   round2(v0) != round2(p.UpperBound),
	}, nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
