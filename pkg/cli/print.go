package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wildfunctions/mathplot/pkg/aos"
	"github.com/wildfunctions/mathplot/pkg/engine"
)

// NewPrintCmd creates the "print" subcommand.
func NewPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print <expression>",
		Short: "Print the simplified expression and its simplified derivative",
		Args:  cobra.ExactArgs(1),
		RunE:  runPrint,
	}
}

func runPrint(cmd *cobra.Command, args []string) error {
	e, err := newEngine(cmd, args[0])
	if err != nil {
		return err
	}
	r, err := e.Report()
	if err != nil {
		return classify(err)
	}

	out := cmd.OutOrStdout()
	if e.Config().Output == "json" {
		return engine.WriteJSON(out, r)
	}
	engine.WriteTextReport(out, r)
	return nil
}

// NewDeriveCmd creates the "derive" subcommand.
func NewDeriveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive <expression>",
		Short: "Print the derivative of an expression",
		Args:  cobra.ExactArgs(1),
		RunE:  runDerive,
	}
	cmd.Flags().Bool("raw", false, "Print the derivative without simplifying it")
	return cmd
}

func runDerive(cmd *cobra.Command, args []string) error {
	if raw, _ := cmd.Flags().GetBool("raw"); raw {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		e, err := engine.New(cfg, engine.WithLogger(newLogger(cmd)))
		if err != nil {
			return exitError(exitConfig, err, "%v", err)
		}
		d, err := e.RawDerivative(args[0])
		if err != nil {
			return classify(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), d)
		return nil
	}

	e, err := newEngine(cmd, args[0])
	if err != nil {
		return err
	}
	forms, err := e.PrintForms()
	if err != nil {
		return classify(err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), forms[1])
	return nil
}

// NewParseCmd creates the "parse" subcommand.
func NewParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <expression>",
		Short: "Show the outermost split of an expression and its canonical form",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
}

type parseReport struct {
	Head      string  `json:"head"`
	Left      *string `json:"left,omitempty"`
	Right     *string `json:"right,omitempty"`
	Canonical string  `json:"canonical"`
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	format, _ := aos.FormatByName(cfg.Format)
	n, err := aos.ParseAs(args[0], format)
	if err != nil {
		return classify(err)
	}
	t, err := aos.Parse(args[0])
	if err != nil {
		return classify(err)
	}

	r := parseReport{Head: t.Head, Left: t.Left, Right: t.Right, Canonical: n.String()}
	out := cmd.OutOrStdout()
	if cfg.Output == "json" {
		return engine.WriteJSON(out, r)
	}
	fmt.Fprintf(out, "Head:       %s\n", r.Head)
	if r.Left != nil {
		fmt.Fprintf(out, "Left:       %s\n", *r.Left)
	}
	if r.Right != nil {
		fmt.Fprintf(out, "Right:      %s\n", *r.Right)
	}
	fmt.Fprintf(out, "Canonical:  %s\n", r.Canonical)
	return nil
}
