package cli

import (
	"math/rand"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wildfunctions/mathplot/pkg/engine"
	"github.com/wildfunctions/mathplot/pkg/pool"
)

// NewRandomCmd creates the "random" subcommand.
func NewRandomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a random expression and print it with its derivative",
		Args:  cobra.NoArgs,
		RunE:  runRandom,
	}
	cmd.Flags().String("pool", "moderate", "Building blocks: "+strings.Join(pool.Names(), " | "))
	cmd.Flags().Int64("seed", 0, "Random seed (0 = random)")
	cmd.Flags().Int("depth", 4, "Maximum tree depth")
	return cmd
}

func runRandom(cmd *cobra.Command, _ []string) error {
	name, _ := cmd.Flags().GetString("pool")
	p, err := pool.Get(name)
	if err != nil {
		return exitError(exitConfig, err, "%v (available: %s)", err, strings.Join(pool.Names(), ", "))
	}
	depth, _ := cmd.Flags().GetInt("depth")
	if depth < 1 {
		return exitError(exitConfig, nil, "depth must be positive, got %d", depth)
	}
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = rand.Int63()
	}

	rng := rand.New(rand.NewSource(seed))
	e, err := newEngine(cmd, p.RandomTree(rng, depth).String())
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
