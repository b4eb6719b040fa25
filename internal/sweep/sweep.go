// Package sweep runs the critical-speed solver across a range of one
// parameter. Points are independent runs and execute concurrently.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/arcsim/internal/arc"
)

// setters are keyed like the CLI flags; angle is in degrees.
var setters = map[string]func(p *arc.Params, v float64){
	"mass":      func(p *arc.Params, v float64) { p.Mass = v },
	"radius":    func(p *arc.Params, v float64) { p.Radius = v },
	"angle":     func(p *arc.Params, v float64) { p.TotalAngle = v * math.Pi / 180 },
	"friction":  func(p *arc.Params, v float64) { p.Friction = v },
	"gravity":   func(p *arc.Params, v float64) { p.Gravity = v },
	"dt":        func(p *arc.Params, v float64) { p.Dt = v },
	"min_speed": func(p *arc.Params, v float64) { p.MinSpeed = v },
}

func ListParams() []string {
	names := make([]string, 0, len(setters))
	for name := range setters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type Sweep struct {
	Param   string
	From    float64
	To      float64
	Steps   int
	Workers int
}

// Point is the outcome at one parameter value. Err holds per-point failures
// (degenerate trajectory, step cap) that do not abort the sweep.
type Point struct {
	Value    float64
	Solution arc.Solution
	Cause    arc.Cause
	Angle    float64
	Err      error
}

func (s Sweep) Values() []float64 {
	if s.Steps <= 1 {
		return []float64{s.From}
	}
	vals := make([]float64, s.Steps)
	step := (s.To - s.From) / float64(s.Steps-1)
	for i := range vals {
		vals[i] = s.From + float64(i)*step
	}
	return vals
}

func (s Sweep) validate() error {
	if _, ok := setters[s.Param]; !ok {
		return fmt.Errorf("unknown sweep parameter: %s (available: %v)", s.Param, ListParams())
	}
	if s.Steps < 1 {
		return fmt.Errorf("steps must be at least 1, got %d", s.Steps)
	}
	return nil
}

// Run solves every point of s on top of base. Invalid parameters at any
// point abort the whole sweep.
func Run(ctx context.Context, base arc.Params, s Sweep, logger *zap.Logger) ([]Point, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	workers := s.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	values := s.Values()
	points := make([]Point, len(values))
	set := setters[s.Param]

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, v := range values {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			p := base
			set(&p, v)
			pt, err := solvePoint(p, v)
			if err != nil {
				return fmt.Errorf("%s=%g: %w", s.Param, v, err)
			}
			points[i] = pt

			logger.Debug("sweep point",
				zap.String("param", s.Param),
				zap.Float64("value", v),
				zap.Float64("v0", pt.Solution.Speed),
				zap.Bool("feasible", pt.Solution.Feasible),
				zap.Stringer("cause", pt.Cause),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}

func solvePoint(p arc.Params, v float64) (Point, error) {
	res, err := arc.Run(p)
	if errors.Is(err, arc.ErrParameterBounds) {
		return Point{}, err
	}

	pt := Point{Value: v, Err: err}
	if res == nil {
		return pt, nil
	}
	pt.Solution = res.Solution
	if res.Trajectory != nil {
		pt.Cause = res.Trajectory.Detachment.Cause
		pt.Angle = res.Trajectory.Detachment.Angle
	}
	if pt.Err == nil {
		pt.Err = res.Err()
	}
	return pt, nil
}
