// Package arc simulates a point mass sliding along a circular arc with
// Coulomb friction, then flying free under gravity once it leaves the track.
//
// The package is split along the phases of a run:
//
//   - [Step]: one explicit Euler step of the on-track state
//   - [Detach]: decides whether the body has left the track, and why
//   - [CanComplete]: whether a launch speed carries the body over the whole arc
//   - [Solve]: bisection over launch speed for the critical speed
//   - [Flight]: lazy projectile sequence from the detachment point to the ground
//   - [Run], [AssembleFrom]: full trajectory (arc samples, detachment, flight)
//
// # Example
//
//	p := arc.DefaultParams()
//	res, err := arc.Run(p)
//	if err != nil {
//	    return err
//	}
//	if !res.Solution.Feasible {
//	    // no launch speed below p.UpperBound completes the arc
//	}
//
// # Termination
//
// Every loop is bounded twice: physically by the speed floor, the angle
// clamp and the ground clamp, and defensively by [Params.MaxArcSteps] and
// [Params.MaxFlightSteps]. Hitting a cap yields [ErrIterationLimit].
//
// All functions are pure and safe for concurrent use; a [Params] value is
// never mutated.
package arc
