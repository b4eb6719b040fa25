package arc

import (
	"fmt"
	"math"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ArcState is the on-track state. Position is derived from Angle.
type ArcState struct {
	Speed float64
	Angle float64
	Path  float64
}

func (s ArcState) Position(radius float64) Point {
	return Point{
		X: radius * math.Sin(s.Angle),
		Y: radius * (1 - math.Cos(s.Angle)),
	}
}

type ArcSample struct {
	Point
	Speed float64 `json:"speed"`
	Angle float64 `json:"angle"`
	Time  float64 `json:"t"`
}

type FlightState struct {
	Pos  Point   `json:"pos"`
	VX   float64 `json:"vx"`
	VY   float64 `json:"vy"`
	Time float64 `json:"t"`
}

func (s FlightState) Speed() float64 {
	return math.Hypot(s.VX, s.VY)
}

// Cause tells why the on-track phase ended.
type Cause int

const (
	CauseNone Cause = iota
	CauseArcEnd
	CauseLiftoff
	CauseStall
)

func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseArcEnd:
		return "arc_end"
	case CauseLiftoff:
		return "liftoff"
	case CauseStall:
		return "stall"
	default:
		return fmt.Sprintf("cause(%d)", int(c))
	}
}

func (c Cause) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Detachment is recorded once per trajectory, at the switch to free flight.
type Detachment struct {
	Point Point   `json:"point"`
	Angle float64 `json:"angle"`
	Speed float64 `json:"speed"`
	VX    float64 `json:"vx"`
	VY    float64 `json:"vy"`
	Time  float64 `json:"t"`
	Step  int     `json:"step"`
	Cause Cause   `json:"cause"`
}

func (d Detachment) FlightState() FlightState {
	return FlightState{Pos: d.Point, VX: d.VX, VY: d.VY, Time: d.Time}
}

type Solution struct {
	Speed      float64 `json:"speed"`
	Low        float64 `json:"low"`
	High       float64 `json:"high"`
	Iterations int     `json:"iterations"`
	Feasible   bool    `json:"feasible"`
}

type Trajectory struct {
	Launch     float64
	Arc        []ArcSample
	Detachment Detachment
	Flight     []FlightState
}

func (t *Trajectory) ArcPoints() []Point {
	pts := make([]Point, len(t.Arc))
	for i, s := range t.Arc {
		pts[i] = s.Point
	}
	return pts
}

func (t *Trajectory) FlightPoints() []Point {
	pts := make([]Point, len(t.Flight))
	for i, s := range t.Flight {
		pts[i] = s.Pos
	}
	return pts
}

// Landing returns the last flight state, or the detachment state if no
// flight step was taken.
func (t *Trajectory) Landing() FlightState {
	if len(t.Flight) == 0 {
		return t.Detachment.FlightState()
	}
	return t.Flight[len(t.Flight)-1]
}

// Result bundles the solver outcome with the trajectory it launched.
// Trajectory is nil when the solver found no feasible speed.
type Result struct {
	Params     Params
	Solution   Solution
	Trajectory *Trajectory
}

// Err returns ErrInfeasibleSpeed, wrapped with the converged speed, when no
// trajectory was produced.
func (r *Result) Err() error {
	if r.Solution.Feasible {
		return nil
	}
	return fmt.Errorf("%w: converged to %.2f m/s (bound %.2f m/s)", ErrInfeasibleSpeed, r.Solution.Speed, r.Params.UpperBound)
}
