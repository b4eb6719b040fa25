package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/arcsim/internal/experiment"
	"github.com/san-kum/arcsim/internal/metrics"
)

// MsgInfeasible is shown when no launch speed within the search bound
// completes the arc.
const MsgInfeasible = "body cannot traverse the arc"

func row(s styles, label, value string) string {
	return s.label.Render(label) + s.value.Render(value) + "\n"
}

// Report summarises one run: the critical speed, the detachment event and
// the flight statistics.
func Report(res *experiment.Result, theme Theme) string {
	s := theme.styles()
	var b strings.Builder

	b.WriteString(s.title.Render("arcsim · "+res.Name) + "\n")
	b.WriteString(s.separator(40) + "\n")

	if !res.Solution.Feasible {
		b.WriteString(s.bad.Render(MsgInfeasible) + "\n")
		b.WriteString(row(s, "converged to", fmt.Sprintf("%.2f m/s", res.Solution.Speed)))
		b.WriteString(row(s, "search bound", fmt.Sprintf("%.2f m/s", res.Params.UpperBound)))
		if res.Trajectory == nil {
			return b.String()
		}
	} else {
		b.WriteString(row(s, "minimum launch speed", fmt.Sprintf("v0 = %.2f m/s", res.Solution.Speed)))
		b.WriteString(row(s, "frictionless bound", s.muted.Render(fmt.Sprintf("%.2f m/s", res.Analytic))))
		b.WriteString(row(s, "bisection", s.muted.Render(fmt.Sprintf("%d iterations", res.Solution.Iterations))))
	}

	if res.Trajectory == nil {
		return b.String()
	}
	traj := res.Trajectory
	d := traj.Detachment

	if traj.Launch != res.Solution.Speed {
		b.WriteString(row(s, "launch speed", s.warning.Render(fmt.Sprintf("%.2f m/s", traj.Launch))))
	}

	b.WriteString(s.separator(40) + "\n")
	b.WriteString(row(s, "detachment point", fmt.Sprintf("x = %.2f m, y = %.2f m", d.Point.X, d.Point.Y)))
	b.WriteString(row(s, "horizontal speed", fmt.Sprintf("vx = %.2f m/s", d.VX)))
	b.WriteString(row(s, "vertical speed", fmt.Sprintf("vy = %.2f m/s", d.VY)))
	b.WriteString(row(s, "detachment angle", fmt.Sprintf("%.2f°", d.Angle*180/math.Pi)))
	b.WriteString(row(s, "cause", s.good.Render(d.Cause.String())))

	fs := metrics.Flight(traj)
	b.WriteString(s.separator(40) + "\n")
	b.WriteString(row(s, "flight time", fmt.Sprintf("%.2f s", fs.Duration)))
	b.WriteString(row(s, "flight range", fmt.Sprintf("%.2f m", fs.Range)))
	b.WriteString(row(s, "apex", fmt.Sprintf("%.2f m", fs.Apex)))
	b.WriteString(row(s, "impact speed", fmt.Sprintf("%.2f m/s", fs.ImpactSpeed)))

	if e, ok := res.Metrics["energy_dissipated"]; ok {
		b.WriteString(row(s, "friction loss", fmt.Sprintf("%.2f J", e)))
	}

	return b.String()
}
