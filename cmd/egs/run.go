package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tdunning/egs/internal/dumpfile"
	"github.com/tdunning/egs/internal/engine"
	"github.com/tdunning/egs/internal/verify"
)

func newRunCmd() *cobra.Command {
	var dumpPath string
	var doVerify bool
	cmd := &cobra.Command{
		Use:   "run N t",
		Short: "certify that t(N) >= t directly, without searching for t",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			t, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return err
			}

			tabs := engine.Setup(n, variant())
			cfg := runConfig()
			cfg.RecordLog = dumpPath != "" || doVerify

			res, err := engine.Run(tabs.PT, tabs.ST, n, t, cfg)
			if err != nil {
				return err
			}
			_, _ = printer.Printf("%s greedy: %d factors of %d! each >= %d (needed %d)\n", cfg.Variant, res.Count, n, t, n)

			if dumpPath != "" {
				f, err := os.Create(dumpPath)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := dumpfile.Write(f, res.Log); err != nil {
					return err
				}
				logf("wrote %d descriptors to %s", len(res.Log.Items), dumpPath)
			}

			if doVerify {
				cnt, err := verify.Verify(tabs.PT, tabs.ST, n, t, res.Log)
				if err != nil {
					return err
				}
				_, _ = printer.Printf("independent replay confirms %d factors\n", cnt)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dumpPath, "dump", "", "write the factorization log to this file")
	cmd.Flags().BoolVar(&doVerify, "verify", false, "replay the factorization log through an independent verifier before reporting success")
	return cmd
}
