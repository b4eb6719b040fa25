package viz

import (
	"github.com/san-kum/arcsim/internal/arc"
)

// Scene draws the ground line, the arc, the flight and the detachment point
// on a w x h character canvas.
func Scene(traj *arc.Trajectory, w, h int) string {
	c := NewCanvas(w, h)
	if traj == nil || len(traj.Arc) == 0 {
		return c.String()
	}

	arcPts := append([]arc.Point{{}}, traj.ArcPoints()...)
	flightPts := traj.FlightPoints()
	f := FrameOf(arcPts, flightPts)

	c.Polyline(f, []arc.Point{{X: f.MinX, Y: 0}, {X: f.MaxX, Y: 0}})
	c.Polyline(f, arcPts)
	c.Polyline(f, flightPts)
	c.Marker(f, traj.Detachment.Point)
	return c.String()
}
