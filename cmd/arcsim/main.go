package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/arcsim/internal/arc"
	"github.com/san-kum/arcsim/internal/config"
	"github.com/san-kum/arcsim/internal/experiment"
	"github.com/san-kum/arcsim/internal/export"
	"github.com/san-kum/arcsim/internal/plot"
	"github.com/san-kum/arcsim/internal/scenario"
	"github.com/san-kum/arcsim/internal/sweep"
	"github.com/san-kum/arcsim/internal/viz"
)

var (
	configFile string
	preset     string
	verbose    bool

	mass       float64
	radius     float64
	angleDeg   float64
	friction   float64
	gravity    float64
	dt         float64
	dtFlight   float64
	tolerance  float64
	upperBound float64
	minSpeed   float64

	launch    float64
	outDir    string
	writeCSV  bool
	writeJSON bool
	writeSVG  bool
	writePNG  bool
	noChart   bool
	theme     string

	sweepParam   string
	sweepFrom    float64
	sweepTo      float64
	sweepSteps   int
	sweepWorkers int
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "arcsim",
		Short:         "critical launch speed and flight of a body on a circular arc",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.BoolVarP(&verbose, "verbose", "v", false, "development logging")
	pf.Float64Var(&mass, "mass", config.DefaultMass, "body mass (kg)")
	pf.Float64Var(&radius, "radius", config.DefaultRadius, "arc radius (m)")
	pf.Float64Var(&angleDeg, "angle", config.DefaultAngleDeg, "total arc angle (degrees)")
	pf.Float64Var(&friction, "friction", config.DefaultFriction, "friction coefficient")
	pf.Float64Var(&gravity, "gravity", config.DefaultGravity, "gravitational acceleration (m/s^2)")
	pf.Float64Var(&dt, "dt", config.DefaultDt, "arc timestep")
	pf.Float64Var(&dtFlight, "dt-flight", config.DefaultFlightDt, "flight timestep")
	pf.Float64Var(&tolerance, "tolerance", config.DefaultTolerance, "bisection tolerance (m/s)")
	pf.Float64Var(&upperBound, "upper", config.DefaultUpperBound, "bisection upper bound (m/s)")
	pf.Float64Var(&minSpeed, "min-speed", config.DefaultMinSpeed, "stall speed floor (m/s)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "solve for the critical speed and simulate the trajectory",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	runCmd.Flags().Float64Var(&launch, "speed", 0, "launch at this speed instead of the solved one")
	runCmd.Flags().StringVar(&outDir, "out", config.DefaultOutputDir, "output directory")
	runCmd.Flags().BoolVar(&writeCSV, "csv", false, "write trajectory.csv")
	runCmd.Flags().BoolVar(&writeJSON, "json", false, "write result.json")
	runCmd.Flags().BoolVar(&writeSVG, "svg", false, "write trajectory.svg")
	runCmd.Flags().BoolVar(&writePNG, "png", false, "write trajectory.png")
	runCmd.Flags().BoolVar(&noChart, "no-chart", false, "skip terminal charts")
	runCmd.Flags().StringVar(&theme, "theme", "ocean", fmt.Sprintf("report theme %v", viz.ThemeNames()))

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "print the critical launch speed only",
		Args:  cobra.NoArgs,
		RunE:  solveSpeed,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "solve across a range of one parameter",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepParam, "param", "friction", fmt.Sprintf("parameter to vary %v", sweep.ListParams()))
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "first value")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 1, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 11, "number of values")
	sweepCmd.Flags().IntVar(&sweepWorkers, "workers", 0, "concurrent solves (0 = GOMAXPROCS)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "browse a computed run in the terminal",
		Args:  cobra.NoArgs,
		RunE:  viewRun,
	}
	viewCmd.Flags().Float64Var(&launch, "speed", 0, "launch at this speed instead of the solved one")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted batch of runs",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	scenarioCmd.Flags().StringVar(&outDir, "out", config.DefaultOutputDir, "output directory for steps with save_as")

	rootCmd.AddCommand(runCmd, solveCmd, sweepCmd, presetsCmd, viewCmd, scenarioCmd)
	return rootCmd
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

// loadConfig picks a base (defaults, a preset, or a config file) and then
// applies any flag the user set explicitly. A config file is read on top of
// the defaults and replaces the preset rather than layering over it.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	cfg := config.DefaultConfig()
	name := "default"

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, "", fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
		name = preset
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		name = strings.TrimSuffix(filepath.Base(configFile), filepath.Ext(configFile))
	}

	flags := cmd.Flags()
	if flags.Changed("mass") {
		cfg.Track.Mass = mass
	}
	if flags.Changed("radius") {
		cfg.Track.Radius = radius
	}
	if flags.Changed("angle") {
		cfg.Track.AngleDeg = angleDeg
	}
	if flags.Changed("friction") {
		cfg.Track.Friction = friction
	}
	if flags.Changed("gravity") {
		cfg.Track.Gravity = gravity
	}
	if flags.Changed("dt") {
		cfg.Numerics.Dt = dt
	}
	if flags.Changed("dt-flight") {
		cfg.Numerics.FlightDt = dtFlight
	}
	if flags.Changed("tolerance") {
		cfg.Numerics.Tolerance = tolerance
	}
	if flags.Changed("upper") {
		cfg.Numerics.UpperBound = upperBound
	}
	if flags.Changed("min-speed") {
		cfg.Numerics.MinSpeed = minSpeed
	}
	if flags.Changed("out") {
		cfg.Output.Dir = outDir
	}
	cfg.Output.CSV = cfg.Output.CSV || writeCSV
	cfg.Output.JSON = cfg.Output.JSON || writeJSON
	cfg.Output.SVG = cfg.Output.SVG || writeSVG
	cfg.Output.PNG = cfg.Output.PNG || writePNG

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, name, nil
}

func runExperiment(cmd *cobra.Command) (*experiment.Result, *config.Config, *zap.Logger, error) {
	cfg, name, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	logger, err := newLogger()
	if err != nil {
		return nil, nil, nil, err
	}

	ecfg := experiment.Config{Name: name, Params: cfg.Params()}
	if f := cmd.Flags().Lookup("speed"); f != nil && f.Changed {
		ecfg.Launch = &launch
	}
	exp := experiment.New(ecfg, logger)

	res, err := exp.Run(cmd.Context())
	if err != nil {
		var simErr *arc.SimulationError
		if errors.As(err, &simErr) {
			logger.Error("simulation failed",
				zap.String("phase", string(simErr.Phase)),
				zap.Int("step", simErr.Step),
				zap.Error(simErr.Wrapped),
			)
		}
		return nil, nil, logger, err
	}
	return res, cfg, logger, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	res, cfg, logger, err := runExperiment(cmd)
	if logger != nil {
		defer logger.Sync()
	}
	if err != nil {
		return err
	}

	fmt.Print(viz.Report(res, viz.GetTheme(theme)))

	if err := res.Err(); errors.Is(err, arc.ErrInfeasibleSpeed) {
		logger.Warn("no trajectory produced", zap.Error(err))
	}
	if !res.Feasible() {
		return nil
	}

	if !noChart {
		fmt.Println()
		fmt.Print(viz.Scene(res.Trajectory, 60, 15))
		fmt.Println()
		fmt.Println(viz.SpeedChart(res.Trajectory, 60, 8))
	}

	formats := export.Formats{CSV: cfg.Output.CSV, JSON: cfg.Output.JSON, SVG: cfg.Output.SVG}
	if !formats.Any() && !cfg.Output.PNG {
		return nil
	}

	st := export.New(cfg.Output.Dir)
	if err := st.Init(); err != nil {
		return err
	}
	dir, err := st.RunDir(res.Name)
	if err != nil {
		return err
	}
	written, err := st.Save(dir, res, formats)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if cfg.Output.PNG {
		path := filepath.Join(dir, "trajectory.png")
		title := fmt.Sprintf("%s: v0 = %.2f m/s", res.Name, res.Trajectory.Launch)
		if err := plot.SavePNG(path, res.Trajectory, title); err != nil {
			return fmt.Errorf("png: %w", err)
		}
		written = append(written, path)
	}

	fmt.Println()
	for _, path := range written {
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}

func solveSpeed(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	p := cfg.Params()

	sol, err := arc.Solve(p)
	if err != nil {
		return err
	}

	res := &arc.Result{Params: p, Solution: sol}
	if err := res.Err(); errors.Is(err, arc.ErrInfeasibleSpeed) {
		fmt.Println(viz.MsgInfeasible)
		fmt.Printf("  converged to %.2f m/s (upper bound %.2f m/s)\n", sol.Speed, p.UpperBound)
		return nil
	}

	fmt.Printf("v0 = %.2f m/s\n", sol.Speed)
	fmt.Printf("  bracket [%.6f, %.6f] after %d iterations\n", sol.Low, sol.High, sol.Iterations)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	s := sweep.Sweep{
		Param:   sweepParam,
		From:    sweepFrom,
		To:      sweepTo,
		Steps:   sweepSteps,
		Workers: sweepWorkers,
	}
	points, err := sweep.Run(cmd.Context(), cfg.Params(), s, logger)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tV0\tFEASIBLE\tCAUSE\tDETACH\tNOTE\n", strings.ToUpper(sweepParam))
	for _, pt := range points {
		note := ""
		if pt.Err != nil && !errors.Is(pt.Err, arc.ErrInfeasibleSpeed) {
			note = pt.Err.Error()
		}
		detach := "-"
		if pt.Cause != arc.CauseNone {
			detach = fmt.Sprintf("%.1f°", pt.Angle*180/math.Pi)
		}
		fmt.Fprintf(w, "%.4g\t%.2f\t%t\t%s\t%s\t%s\n",
			pt.Value,
			pt.Solution.Speed,
			pt.Solution.Feasible,
			pt.Cause,
			detach,
			note,
		)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMASS\tRADIUS\tANGLE\tFRICTION\tGRAVITY\tDT")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f°\t%.3f\t%.2f\t%g\n",
			name,
			p.Track.Mass,
			p.Track.Radius,
			p.Track.AngleDeg,
			p.Track.Friction,
			p.Track.Gravity,
			p.Numerics.Dt,
		)
	}
	return w.Flush()
}

func viewRun(cmd *cobra.Command, args []string) error {
	res, _, logger, err := runExperiment(cmd)
	if logger != nil {
		defer logger.Sync()
	}
	if err != nil {
		return err
	}
	return viz.RunViewer(res)
}

// runScenario prints a row for every step that ran. When a step fails, the
// earlier steps are still tabulated and saved before the error is returned.
func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := scenario.Load(args[0])
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	results, runErr := scenario.Run(cmd.Context(), sc, logger)

	st := export.New(outDir)
	all := export.Formats{CSV: true, JSON: true, SVG: true}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tV0\tFEASIBLE\tCAUSE\tDETACH_X\tDETACH_Y\tSAVED")
	for i, res := range results {
		cause, x, y := "-", "-", "-"
		if res.Feasible() {
			d := res.Trajectory.Detachment
			cause = d.Cause.String()
			x = fmt.Sprintf("%.2f", d.Point.X)
			y = fmt.Sprintf("%.2f", d.Point.Y)
		}

		saved := "-"
		if name := sc.Steps[i].SaveAs; name != "" {
			dir, err := saveStep(st, name, res, all)
			if err != nil {
				w.Flush()
				return errors.Join(runErr, err)
			}
			saved = dir
		}

		fmt.Fprintf(w, "%s\t%.2f\t%t\t%s\t%s\t%s\t%s\n",
			res.Name, res.Solution.Speed, res.Solution.Feasible, cause, x, y, saved)
	}
	if err := w.Flush(); err != nil {
		return errors.Join(runErr, err)
	}
	return runErr
}

func saveStep(st *export.Store, name string, res *experiment.Result, f export.Formats) (string, error) {
	if err := st.Init(); err != nil {
		return "", err
	}
	dir, err := st.RunDir(name)
	if err != nil {
		return "", err
	}
	if _, err := st.Save(dir, res, f); err != nil {
		return "", fmt.Errorf("export %s: %w", name, err)
	}
	return dir, nil
}
