package engine

import (
	"github.com/tdunning/egs/internal/primecount"
	"github.com/tdunning/egs/internal/primetable"
)

// pi returns the exact number of primes <= n, dispatching to the
// precomputed table when n is within its range and falling back to
// internal/primecount otherwise.
func pi(pt *primetable.Table, n int64) int64 {
	if n <= pt.PMax {
		return int64(pt.Pi(n))
	}
	return primecount.Pi(n)
}
