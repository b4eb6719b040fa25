package metrics

import "github.com/san-kum/arcsim/internal/arc"

// Metric accumulates a scalar over the on-track samples of a trajectory.
type Metric interface {
	Name() string
	Observe(s arc.ArcSample)
	Value() float64
	Reset()
}

// Collect feeds every arc sample of traj to the metrics and returns their
// values keyed by name, together with the flight statistics.
func Collect(traj *arc.Trajectory, ms ...Metric) map[string]float64 {
	out := make(map[string]float64, len(ms)+4)
	for _, m := range ms {
		m.Reset()
		for _, s := range traj.Arc {
			m.Observe(s)
		}
		out[m.Name()] = m.Value()
	}

	fs := Flight(traj)
	out["flight_time"] = fs.Duration
	out["flight_range"] = fs.Range
	out["apex"] = fs.Apex
	out["impact_speed"] = fs.ImpactSpeed
	return out
}

// Default returns the metrics reported for every run.
func Default(p arc.Params, launch float64) []Metric {
	return []Metric{
		NewEnergy(p, launch),
		NewNormalMargin(p),
		NewPeakSpeed(),
	}
}
