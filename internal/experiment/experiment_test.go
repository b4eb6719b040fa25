package experiment

import (
	"context"
	"errors"
	"math"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"

	"github.com/san-kum/arcsim/internal/arc"
)

func TestRunReference(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	exp := New(Config{Name: "reference", Params: arc.DefaultParams()}, zap.New(core))

	res, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !res.Feasible() {
		t.Fatal("expected feasible run")
	}
	if res.Trajectory.Detachment.Cause != arc.CauseArcEnd {
		t.Errorf("expected arc end detachment, got %s", res.Trajectory.Detachment.Cause)
	}
	if _, ok := res.Metrics["energy_dissipated"]; !ok {
		t.Error("missing energy metric")
	}
	if math.Abs(res.Analytic-math.Sqrt(5*9.81*4)) > 1e-9 {
		t.Errorf("unexpected analytic reference %f", res.Analytic)
	}

	if logs.FilterMessage("solved critical speed").Len() != 1 {
		t.Error("expected one solve log entry")
	}
	entries := logs.FilterMessage("detached").All()
	if len(entries) != 1 {
		t.Fatalf("expected one detach log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["cause"]; got != "arc_end" {
		t.Errorf("expected cause arc_end in log, got %v", got)
	}
}

func TestRunInfeasible(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	p := arc.DefaultParams()
	p.Friction = 2

	res, err := New(Config{Name: "sticky", Params: p}, zap.New(core)).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if res.Feasible() {
		t.Error("expected infeasible run")
	}
	if !errors.Is(res.Err(), arc.ErrInfeasibleSpeed) {
		t.Errorf("expected ErrInfeasibleSpeed, got %v", res.Err())
	}
	if logs.FilterMessage("no feasible launch speed").Len() != 1 {
		t.Error("expected a warning")
	}
}

func speed(v float64) *float64 { return &v }

func TestRunLaunchOverride(t *testing.T) {
	res, err := New(Config{Name: "slow", Params: arc.DefaultParams(), Launch: speed(12)}, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if res.Trajectory.Launch != 12 {
		t.Errorf("expected launch 12, got %f", res.Trajectory.Launch)
	}
	if res.Trajectory.Detachment.Cause != arc.CauseLiftoff {
		t.Errorf("expected liftoff, got %s", res.Trajectory.Detachment.Cause)
	}
}

func TestRunLaunchSlowStalls(t *testing.T) {
	res, err := New(Config{Name: "crawl", Params: arc.DefaultParams(), Launch: speed(0.5)}, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if res.Trajectory.Detachment.Cause != arc.CauseStall {
		t.Errorf("expected stall, got %s", res.Trajectory.Detachment.Cause)
	}
}

func TestRunLaunchZero(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	_, err := New(Config{Name: "rest", Params: arc.DefaultParams(), Launch: speed(0)}, zap.New(core)).Run(context.Background())
	if !errors.Is(err, arc.ErrDegenerateTrajectory) {
		t.Fatalf("expected ErrDegenerateTrajectory for a body at rest, got %v", err)
	}
	if logs.FilterMessage("launch speed overridden").Len() != 1 {
		t.Error("zero launch should still be applied as an override")
	}
}

func TestRunLaunchNegative(t *testing.T) {
	_, err := New(Config{Params: arc.DefaultParams(), Launch: speed(-1)}, nil).Run(context.Background())
	if !errors.Is(err, arc.ErrParameterBounds) {
		t.Errorf("expected ErrParameterBounds, got %v", err)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *arc.Params)
		want   error
	}{
		{"invalid radius", func(p *arc.Params) { p.Radius = 0 }, arc.ErrParameterBounds},
		{"empty arc", func(p *arc.Params) { p.TotalAngle = 0 }, arc.ErrDegenerateTrajectory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := arc.DefaultParams()
			tt.mutate(&p)
			_, err := New(Config{Params: p}, nil).Run(context.Background())
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New(Config{Params: arc.DefaultParams()}, nil).Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
