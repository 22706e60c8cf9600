// Command egs proves lower bounds on the Erdos-Guy-Selfridge function
// t(N): the largest t such that N! can be written as a product of N factors
// each at least t.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	fastVariant bool
	cutoff      float64
	verbose     bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "egs",
		Short:         "prove lower bounds on the Erdos-Guy-Selfridge function t(N)",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().BoolVar(&fastVariant, "fast", true, "use the fast greedy small-prime phase instead of the standard one")
	root.PersistentFlags().Float64Var(&cutoff, "cutoff", 0, "prime-enumeration/prime-counting crossover exponent (0 selects the default); pure performance tuning, never changes results")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")

	root.AddCommand(
		newBoundCmd(),
		newExhaustiveCmd(),
		newRunCmd(),
		newHintCmd(),
	)
	return root
}
