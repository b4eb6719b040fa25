// Package scenario runs a scripted batch of named runs from a YAML file.
package scenario

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/arcsim/internal/config"
	"github.com/san-kum/arcsim/internal/experiment"
)

var ErrNoSteps = errors.New("scenario: no steps")

type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step starts from a preset (or the defaults) and applies Overrides, which
// use the same layout as a config file. Launch, when present, replaces the
// solved speed; launch: 0 starts the body at rest.
type Step struct {
	Name      string    `yaml:"name"`
	Preset    string    `yaml:"preset"`
	Launch    *float64  `yaml:"launch"`
	Overrides yaml.Node `yaml:"overrides"`
	SaveAs    string    `yaml:"save_as"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	if len(sc.Steps) == 0 {
		return nil, ErrNoSteps
	}
	for i := range sc.Steps {
		if sc.Steps[i].Name == "" {
			sc.Steps[i].Name = sc.Steps[i].defaultName(i)
		}
	}
	return &sc, nil
}

func (st Step) defaultName(i int) string {
	if st.Preset != "" {
		return fmt.Sprintf("%d-%s", i+1, st.Preset)
	}
	return fmt.Sprintf("step%d", i+1)
}

// Config resolves the step into a validated configuration.
func (st Step) Config() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if st.Preset != "" {
		cfg = config.GetPreset(st.Preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", st.Preset, config.ListPresets())
		}
	}
	if st.Overrides.Kind != 0 {
		if err := st.Overrides.Decode(cfg); err != nil {
			return nil, fmt.Errorf("overrides: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Run executes the steps in order. The returned slice is index-aligned with
// sc.Steps up to the first failing step.
func Run(ctx context.Context, sc *Scenario, logger *zap.Logger) ([]*experiment.Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("scenario", sc.Name))
	results := make([]*experiment.Result, 0, len(sc.Steps))

	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		logger.Info("running step",
			zap.Int("step", i+1),
			zap.Int("of", len(sc.Steps)),
			zap.String("name", step.Name),
		)

		cfg, err := step.Config()
		if err != nil {
			return results, fmt.Errorf("step %d (%s): %w", i+1, step.Name, err)
		}

		exp := experiment.New(experiment.Config{
			Name:   step.Name,
			Params: cfg.Params(),
			Launch: step.Launch,
		}, logger)

		res, err := exp.Run(ctx)
		if err != nil {
			return results, fmt.Errorf("step %d (%s): %w", i+1, step.Name, err)
		}
		results = append(results, res)
	}
	return results, nil
}
