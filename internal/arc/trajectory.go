package arc

import (
	"fmt"
	"math"
)

// Run solves for the critical launch speed and, when one exists, simulates
// the trajectory launched at it.
func Run(p Params) (*Result, error) {
	sol, err := Solve(p)
	if err != nil {
		return nil, err
	}

	res := &Result{Params: p, Solution: sol}
	if !sol.Feasible {
		return res, nil
	}

	traj, err := AssembleFrom(p, sol.Speed)
	if err != nil {
		return res, err
	}
	res.Trajectory = traj
	return res, nil
}

// AssembleFrom slides the body along the arc from launch speed v0 until it
// detaches, then follows its flight to the ground.
func AssembleFrom(p Params, v0 float64) (*Trajectory, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	traj := &Trajectory{
		Launch: v0,
		Arc:    make([]ArcSample, 0, 256),
	}

	s := ArcState{Speed: v0}
	step := 0
	for {
		cause := Detach(p, s)
		if cause != CauseNone {
			traj.Detachment = Detachment{
				Point: s.Position(p.Radius),
				Angle: s.Angle,
				Speed: s.Speed,
				VX:    s.Speed * math.Cos(s.Angle),
				VY:    s.Speed * math.Sin(s.Angle),
				Time:  float64(step) * p.Dt,
				Step:  step,
				Cause: cause,
			}
			break
		}
		if step >= p.MaxArcSteps {
			return nil, &SimulationError{Phase: PhaseArc, Step: step, Time: float64(step) * p.Dt, Wrapped: ErrIterationLimit}
		}

		s = Step(p, s)
		step++
		traj.Arc = append(traj.Arc, ArcSample{
			Point: s.Position(p.Radius),
			Speed: s.Speed,
			Angle: s.Angle,
			Time:  float64(step) * p.Dt,
		})
	}

	if len(traj.Arc) == 0 {
		return nil, fmt.Errorf("%w: detached at launch (%s)", ErrDegenerateTrajectory, traj.Detachment.Cause)
	}

	for fs, err := range Flight(p, traj.Detachment) {
		if err != nil {
			return nil, err
		}
		traj.Flight = append(traj.Flight, fs)
	}

	return traj, nil
}
