package main

import (
	"os/signal"
	"runtime"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tdunning/egs/internal/engine"
	"github.com/tdunning/egs/internal/search"
)

func newExhaustiveCmd() *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "exhaustive N",
		Short: "find the exact largest t the engine can certify for a single N",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			tabs := engine.Setup(n, variant())
			cfg := runConfig()

			logf("exhaustive search for N=%d across %d workers", n, workers)
			t, err := search.Exhaustive(ctx, tabs.PT, tabs.ST, n, cfg, workers)
			if err != nil {
				return err
			}
			_, _ = printer.Printf("t(%d) >= %d (exhaustively verified)\n", n, t)
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of parallel workers")
	return cmd
}
