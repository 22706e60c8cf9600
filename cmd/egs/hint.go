package main

import (
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/tdunning/egs/internal/engine"
	"github.com/tdunning/egs/internal/hintfile"
)

func newHintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hint",
		Short: "create or verify a hint file: a checkpoint list of certified (N, t) bounds",
	}
	cmd.AddCommand(newHintCreateCmd(), newHintVerifyCmd())
	return cmd
}

func newHintCreateCmd() *cobra.Command {
	var ratio string
	cmd := &cobra.Command{
		Use:   "create minN maxN out.hint",
		Short: "scan [minN, maxN] and write a certified bound for each N the previous line's t doesn't already cover",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			minN, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			maxN, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return err
			}
			a, b, err := parseRatio(ratio)
			if err != nil {
				return err
			}

			out, err := os.Create(args[2])
			if err != nil {
				return err
			}
			defer out.Close()

			tabs := engine.Setup(maxN, variant())
			cfg := runConfig()

			t0 := time.Now()
			last, err := hintfile.Create(out, tabs.PT, tabs.ST, minN, maxN, a, b, cfg)
			logf("hint file covers up to N=%d after %.1fs", last, time.Since(t0).Seconds())
			return err
		},
	}
	cmd.Flags().StringVar(&ratio, "ratio", "1/3", "domain-envelope ratio a/b that each certified t is trusted to cover N up to floor(b*t/a)")
	return cmd
}

func newHintVerifyCmd() *cobra.Command {
	var ratio string
	cmd := &cobra.Command{
		Use:   "verify hint.file minN maxN",
		Short: "re-derive every certified bound in a hint file and check the range has no gaps",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			minN, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return err
			}
			maxN, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return err
			}
			a, b, err := parseRatio(ratio)
			if err != nil {
				return err
			}

			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			tabs := engine.Setup(maxN, variant())
			cfg := runConfig()

			coveredTo, err := hintfile.Verify(in, tabs.PT, tabs.ST, minN, maxN, a, b, cfg)
			if err != nil {
				return err
			}
			_, _ = printer.Printf("hint file independently verified: covers N up to %d\n", coveredTo)
			return nil
		},
	}
	cmd.Flags().StringVar(&ratio, "ratio", "1/3", "domain-envelope ratio a/b used when the file was created")
	return cmd
}
