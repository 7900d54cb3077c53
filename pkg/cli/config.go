package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wildfunctions/mathplot/pkg/engine"
)

// addConfigFlags registers the engine settings as persistent flags on root.
func addConfigFlags(root *cobra.Command) {
	def := engine.DefaultConfig()
	f := root.PersistentFlags()
	f.String("config", "", "YAML file with engine settings; explicit flags override it")
	f.String("format", def.Format, "Input format: aos | rpn")
	f.String("mode", def.Mode, "Plot mode: cartesian | polar")
	f.String("method", def.Method, "Area method: rectangular | trapezoidal")
	f.Float64("min", def.Min, "Domain lower bound (default per mode: -10 cartesian, 0 polar)")
	f.Float64("max", def.Max, "Domain upper bound (default per mode: 10 cartesian, 2π polar)")
	f.Int("steps", def.Steps, "Number of plot steps (steps+1 points)")
	f.Int("area-steps", def.AreaSteps, "Number of integration subintervals")
	f.StringP("output", "o", def.Output, "Output format: text | json | csv")
	f.Bool("strict", false, "Reject powers whose exponent depends on x instead of using the general rule")
	f.Bool("verbose", false, "Enable debug logging")
	f.Bool("quiet", false, "Suppress all logging except errors")
}

// domainKeys records which bounds a config file sets.
type domainKeys struct {
	Min *float64 `yaml:"min"`
	Max *float64 `yaml:"max"`
}

// loadConfig builds the engine config: defaults, then the YAML file, then
// flags the user set explicitly. Bounds set by neither come from the
// selected mode's default domain.
func loadConfig(cmd *cobra.Command) (engine.Config, error) {
	cfg := engine.DefaultConfig()
	flags := cmd.Flags()
	var keys domainKeys

	if path, _ := flags.GetString("config"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return cfg, exitError(exitConfig, err, "config file not found: %s", path)
			}
			return cfg, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, exitError(exitConfig, err, "parsing config %s: %v", path, err)
		}
		_ = yaml.Unmarshal(data, &keys)
	}

	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("mode") {
		cfg.Mode, _ = flags.GetString("mode")
	}
	if flags.Changed("method") {
		cfg.Method, _ = flags.GetString("method")
	}
	if flags.Changed("min") {
		cfg.Min, _ = flags.GetFloat64("min")
	}
	if flags.Changed("max") {
		cfg.Max, _ = flags.GetFloat64("max")
	}
	if flags.Changed("steps") {
		cfg.Steps, _ = flags.GetInt("steps")
	}
	if flags.Changed("area-steps") {
		cfg.AreaSteps, _ = flags.GetInt("area-steps")
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Changed("strict") {
		cfg.Strict, _ = flags.GetBool("strict")
	}

	d := cfg.ModeDomain()
	if keys.Min == nil && !flags.Changed("min") {
		cfg.Min = d.Min
	}
	if keys.Max == nil && !flags.Changed("max") {
		cfg.Max = d.Max
	}

	if err := cfg.Validate(); err != nil {
		return cfg, exitError(exitConfig, err, "invalid config: %v", err)
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = slog.LevelDebug
	}
	if q, _ := cmd.Flags().GetBool("quiet"); q {
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// newEngine loads the config and loads text into a fresh engine.
func newEngine(cmd *cobra.Command, text string) (*engine.Engine, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	e, err := engine.New(cfg, engine.WithLogger(newLogger(cmd)))
	if err != nil {
		return nil, exitError(exitConfig, err, "%v", err)
	}
	if err := e.SetExpression(cmd.Context(), text); err != nil {
		return nil, classify(err)
	}
	return e, nil
}
