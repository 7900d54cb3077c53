package cli

import (
	"github.com/spf13/cobra"

	"github.com/wildfunctions/mathplot/pkg/engine"
	"github.com/wildfunctions/mathplot/pkg/plot"
)

// NewSampleCmd creates the "sample" subcommand.
func NewSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample <expression>",
		Short: "Sample the expression (or its derivative) over the domain",
		Args:  cobra.ExactArgs(1),
		RunE:  runSample,
	}
	cmd.Flags().Bool("derivative", false, "Sample the derivative instead of the expression")
	return cmd
}

func runSample(cmd *cobra.Command, args []string) error {
	e, err := newEngine(cmd, args[0])
	if err != nil {
		return err
	}

	target := engine.TargetExpression
	if d, _ := cmd.Flags().GetBool("derivative"); d {
		target = engine.TargetDerivative
	}
	pts, err := e.Sample(target, "")
	if err != nil {
		return classify(err)
	}

	out := cmd.OutOrStdout()
	switch e.Config().Output {
	case "csv":
		return engine.WriteSamplesCSV(out, pts)
	case "json":
		return engine.WriteJSON(out, plot.Collect(pts))
	default:
		engine.WriteSamplesText(out, pts)
		return nil
	}
}

// NewAreaCmd creates the "area" subcommand.
func NewAreaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "area <expression>",
		Short: "Approximate the area under the expression over the domain",
		Args:  cobra.ExactArgs(1),
		RunE:  runArea,
	}
}

func runArea(cmd *cobra.Command, args []string) error {
	e, err := newEngine(cmd, args[0])
	if err != nil {
		return err
	}
	area, err := e.Area(cmd.Context(), "")
	if err != nil {
		return classify(err)
	}

	cfg := e.Config()
	s, _ := e.Session()
	r := engine.AreaReport{
		SessionID:  s.ID,
		Expression: s.Expression.String(),
		Method:     cfg.Method,
		Min:        cfg.Min,
		Max:        cfg.Max,
		Steps:      cfg.AreaSteps,
		Area:       area,
	}

	out := cmd.OutOrStdout()
	if cfg.Output == "json" {
		return engine.WriteJSON(out, r)
	}
	engine.WriteTextArea(out, r)
	return nil
}
