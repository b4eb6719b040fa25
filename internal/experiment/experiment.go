package experiment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/san-kum/arcsim/internal/arc"
	"github.com/san-kum/arcsim/internal/metrics"
)

type Config struct {
	Name   string
	Params arc.Params
	// Launch, when set, overrides the solved speed. Zero is a valid launch.
	Launch *float64
}

type Experiment struct {
	cfg    Config
	logger *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Experiment {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Experiment{
		cfg:    cfg,
		logger: logger.With(zap.String("experiment", cfg.Name)),
	}
}

type Result struct {
	Name string
	*arc.Result
	Metrics map[string]float64
	// Analytic is the frictionless energy bound, shown for comparison only.
	Analytic float64
	Elapsed  time.Duration
}

// Feasible reports whether a trajectory was produced.
func (r *Result) Feasible() bool {
	return r.Trajectory != nil
}

func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p := e.cfg.Params
	start := time.Now()

	sol, err := arc.Solve(p)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	e.logger.Info("solved critical speed",
		zap.Float64("v0", sol.Speed),
		zap.Float64("low", sol.Low),
		zap.Float64("high", sol.High),
		zap.Int("iterations", sol.Iterations),
		zap.Bool("feasible", sol.Feasible),
	)

	res := &Result{
		Name:     e.cfg.Name,
		Result:   &arc.Result{Params: p, Solution: sol},
		Analytic: metrics.FrictionlessCriticalSpeed(p),
	}

	launch := sol.Speed
	if e.cfg.Launch != nil {
		launch = *e.cfg.Launch
		if launch < 0 || math.IsNaN(launch) || math.IsInf(launch, 0) {
			return res, fmt.Errorf("%w: launch speed must be non-negative, got %g", arc.ErrParameterBounds, launch)
		}
		e.logger.Info("launch speed overridden", zap.Float64("launch", launch))
	} else if !sol.Feasible {
		e.logger.Warn("no feasible launch speed", zap.Float64("upper_bound", p.UpperBound), zap.Error(res.Err()))
		res.Elapsed = time.Since(start)
		return res, nil
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}

	traj, err := arc.AssembleFrom(p, launch)
	if err != nil {
		if errors.Is(err, arc.ErrIterationLimit) {
			e.logger.Error("step cap exceeded", zap.Error(err))
		}
		return res, fmt.Errorf("assemble: %w", err)
	}
	res.Trajectory = traj
	res.Metrics = metrics.Collect(traj, metrics.Default(p, launch)...)
	res.Elapsed = time.Since(start)

	d := traj.Detachment
	e.logger.Info("detached",
		zap.Stringer("cause", d.Cause),
		zap.Float64("x", d.Point.X),
		zap.Float64("y", d.Point.Y),
		zap.Float64("theta", d.Angle),
		zap.Float64("vx", d.VX),
		zap.Float64("vy", d.VY),
		zap.Int("arc_points", len(traj.Arc)),
		zap.Int("flight_points", len(traj.Flight)),
		zap.Duration("elapsed", res.Elapsed),
	)
	return res, nil
}
