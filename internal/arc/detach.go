package arc

// Detach reports whether the on-track phase is over at s.
// Reaching the arc end wins over liftoff, liftoff over stalling.
func Detach(p Params, s ArcState) Cause {
	switch {
	case s.Angle >= p.TotalAngle:
		return CauseArcEnd
	case NormalForce(p, s.Speed, s.Angle) <= 0:
		return CauseLiftoff
	case s.Speed < p.MinSpeed:
		return CauseStall
	default:
		return CauseNone
	}
}
