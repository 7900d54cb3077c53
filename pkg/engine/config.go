package engine

import (
	"fmt"
	"strings"

	"github.com/wildfunctions/mathplot/pkg/aos"
	"github.com/wildfunctions/mathplot/pkg/plot"
)

// Config holds the parameters of a plotting session.
type Config struct {
	Format    string  `json:"format" yaml:"format"` // "aos" or "rpn"
	Mode      string  `json:"mode" yaml:"mode"`     // plot mode
	Method    string  `json:"method" yaml:"method"` // area method
	Min       float64 `json:"min" yaml:"min"`
	Max       float64 `json:"max" yaml:"max"`
	Steps     int     `json:"steps" yaml:"steps"`
	AreaSteps int     `json:"area_steps" yaml:"area_steps"`
	Output    string  `json:"output" yaml:"output"` // "text", "json" or "csv"
	Strict    bool    `json:"strict" yaml:"strict"` // reject variable exponents
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Format:    "aos",
		Mode:      "cartesian",
		Method:    "rectangular",
		Min:       -10,
		Max:       10,
		Steps:     1200,
		AreaSteps: 10000,
		Output:    "text",
	}
}

// ModeDomain returns the default parameter interval of the configured mode:
// [-10, 10] for cartesian, [0, 2π] for polar. Unknown modes fall back to the
// cartesian interval.
func (c Config) ModeDomain() plot.Domain {
	m, err := plot.GetMode(c.Mode)
	if err != nil {
		return plot.Cartesian{}.DefaultDomain()
	}
	return m.DefaultDomain()
}

// Domain returns the configured parameter interval.
func (c Config) Domain() plot.Domain {
	return plot.Domain{Min: c.Min, Max: c.Max}
}

// Validate checks every field of c.
func (c Config) Validate() error {
	if _, err := aos.FormatByName(c.Format); err != nil {
		return err
	}
	if _, err := plot.GetMode(c.Mode); err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(plot.ModeNames(), ", "))
	}
	if _, err := plot.GetMethod(c.Method); err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(plot.MethodNames(), ", "))
	}
	if err := c.Domain().Validate(); err != nil {
		return err
	}
	if c.Steps < 1 {
		return fmt.Errorf("steps must be positive, got %d", c.Steps)
	}
	if c.AreaSteps < 1 {
		return fmt.Errorf("area steps must be positive, got %d", c.AreaSteps)
	}
	switch c.Output {
	case "text", "json", "csv":
	default:
		return fmt.Errorf("unknown output format: %s (available: text, json, csv)", c.Output)
	}
	return nil
}
