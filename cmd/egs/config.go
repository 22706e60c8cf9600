package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"golang.org/x/text/message"

	"github.com/tdunning/egs/internal/engine"
)

// printer formats large integers with locale-appropriate thousands
// separators, the way cycle/cycles.go's message.Printer does for its
// tabular search output.
var printer = message.NewPrinter(message.MatchLanguage("en"))

func variant() engine.Variant {
	if fastVariant {
		return engine.Fast
	}
	return engine.Standard
}

func runConfig() engine.Config {
	cfg := engine.NewConfig()
	cfg.Variant = variant()
	if cutoff != 0 {
		cfg.Cutoff = cutoff
	}
	return cfg
}

func logf(format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}

// parseRatio parses "a/b" into (a, b), the coverage-extrapolation ratio
// a hint-file range uses to decide how far a certified t reaches forward.
func parseRatio(s string) (a, b int, err error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("ratio %q must be of the form a/b", s)
	}
	a64, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("ratio %q: bad numerator: %w", s, err)
	}
	b64, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("ratio %q: bad denominator: %w", s, err)
	}
	if a64 <= 0 || b64 <= 0 {
		return 0, 0, fmt.Errorf("ratio %q: both parts must be positive", s)
	}
	return a64, b64, nil
}
