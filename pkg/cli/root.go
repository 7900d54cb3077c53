// Package cli implements the mathplot command line.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the mathplot command tree.
func NewRootCmd(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "mathplot",
		Short: "Symbolic derivative, plot sampling and area for one-variable expressions",
		Long: "mathplot parses an AOS expression such as \"(3 * (x + 2))\", prints it and its\n" +
			"derivative in simplified form, samples either curve for plotting, and\n" +
			"approximates the area under the expression.",
		// SilenceUsage prevents printing usage on every error
		SilenceUsage: true,
	}
	addConfigFlags(root)

	root.Version = version
	root.SetVersionTemplate(fmt.Sprintf("mathplot version %s\n", version))

	root.AddCommand(NewPrintCmd())
	root.AddCommand(NewDeriveCmd())
	root.AddCommand(NewParseCmd())
	root.AddCommand(NewSampleCmd())
	root.AddCommand(NewAreaCmd())
	root.AddCommand(NewRandomCmd())
	return root
}
