package arc

import "math"

// NormalForce is the track reaction on the body, in newtons. It turns
// negative once the track would have to pull the body inward.
func NormalForce(p Params, v, theta float64) float64 {
	return p.Mass*v*v/p.Radius + p.Mass*p.Gravity*math.Cos(theta)
}

// TangentialAccel is the acceleration along the direction of motion:
// friction opposes motion and gravity pulls back down the arc.
func TangentialAccel(p Params, v, theta float64) float64 {
	friction := p.Friction * NormalForce(p, v, theta)
	return -friction/p.Mass - p.Gravity*math.Sin(theta)
}

// Step advances the on-track state by p.Dt.
// The path advances with the pre-step speed; speed is clamped at zero and
// the angle at p.TotalAngle.
func Step(p Params, s ArcState) ArcState {
	a := TangentialAccel(p, s.Speed, s.Angle)
	path := s.Path + s.Speed*p.Dt
	return ArcState{
		Speed: math.Max(s.Speed+a*p.Dt, 0),
		Angle: math.Min(path/p.Radius, p.TotalAngle),
		Path:  path,
	}
}
