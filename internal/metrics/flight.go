package metrics

import (
	"math"

	"github.com/san-kum/arcsim/internal/arc"
)

type FlightStats struct {
	Duration    float64
	Range       float64
	Apex        float64
	ImpactSpeed float64
}

// Flight summarises the free-flight phase. Range is signed: a body that
// leaves the top of a half loop flies back towards negative x.
func Flight(traj *arc.Trajectory) FlightStats {
	d := traj.Detachment
	landing := traj.Landing()

	apex := d.Point.Y
	for _, fs := range traj.Flight {
		apex = math.Max(apex, fs.Pos.Y)
	}

	return FlightStats{
		Duration:    landing.Time - d.Time,
		Range:       landing.Pos.X - d.Point.X,
		Apex:        apex,
		ImpactSpeed: landing.Speed(),
	}
}
