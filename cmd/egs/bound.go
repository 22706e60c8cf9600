package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tdunning/egs/internal/engine"
	"github.com/tdunning/egs/internal/search"
)

func newBoundCmd() *cobra.Command {
	var ratio string
	cmd := &cobra.Command{
		Use:   "bound N",
		Short: "find a certified lower bound on t(N) via heuristic bisection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			a, b, err := parseRatio(ratio)
			if err != nil {
				return err
			}
			tabs := engine.Setup(n, variant())
			cfg := runConfig()

			t, err := search.Bound(tabs.PT, tabs.ST, n, a, b, cfg)
			if err != nil {
				return err
			}
			res, err := engine.Run(tabs.PT, tabs.ST, n, t, cfg)
			if err != nil {
				return err
			}
			_, _ = printer.Printf("t(%d) >= %d  (%s greedy proved %d factors, N=%d)\n", n, t, cfg.Variant, res.Count, n)
			return nil
		},
	}
	cmd.Flags().StringVar(&ratio, "ratio", "1/3", "t/N ratio a/b used to seed the search")
	return cmd
}
