package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/arcsim/internal/arc"
)

// downsample keeps at most n evenly spaced values, always including the last.
func downsample(vals []float64, n int) []float64 {
	if n <= 1 || len(vals) <= n {
		return vals
	}
	out := make([]float64, n)
	step := float64(len(vals)-1) / float64(n-1)
	for i := range out {
		out[i] = vals[int(float64(i)*step+0.5)]
	}
	return out
}

// SpeedChart plots speed over the whole run: launch, arc, then flight.
func SpeedChart(traj *arc.Trajectory, width, height int) string {
	if traj == nil || len(traj.Arc) == 0 {
		return ""
	}
	speeds := make([]float64, 0, len(traj.Arc)+len(traj.Flight)+1)
	speeds = append(speeds, traj.Launch)
	for _, s := range traj.Arc {
		speeds = append(speeds, s.Speed)
	}
	for _, s := range traj.Flight {
		speeds = append(speeds, s.Speed())
	}
	return asciigraph.Plot(downsample(speeds, width),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.Caption("speed (m/s) over time"),
	)
}

// HeightChart plots y along the path.
func HeightChart(traj *arc.Trajectory, width, height int) string {
	if traj == nil || len(traj.Arc) == 0 {
		return ""
	}
	ys := make([]float64, 0, len(traj.Arc)+len(traj.Flight)+1)
	ys = append(ys, 0)
	for _, s := range traj.Arc {
		ys = append(ys, s.Y)
	}
	for _, s := range traj.Flight {
		ys = append(ys, s.Pos.Y)
	}
	return asciigraph.Plot(downsample(ys, width),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.Caption("height (m) over time"),
	)
}
