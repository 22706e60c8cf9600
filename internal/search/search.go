// Package search drives the engine over a range of t values for a fixed N,
// looking for the largest t the greedy engine can certify: the two
// strategies trade certainty for speed. Bound is a fast heuristic bisection
// suitable for scanning a whole N range (as internal/hintfile does).
// Exhaustive pins down the exact largest provable t for a single N, backed
// by a feasibility prefilter and a parallel worker pool.
package search

import (
	"context"
	"fmt"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/tdunning/egs/internal/engine"
	"github.com/tdunning/egs/internal/primetable"
	"github.com/tdunning/egs/internal/smooth"
	"github.com/tdunning/egs/internal/valuation"
)

// admissibleRange returns the range of t worth searching for a given N, as
// the closed integer interval [tmin, tmax]. engine.Run itself will accept
// any t with 4t > N and 2t < N, but engine.Setup only provisions tables up
// to t = 2N/5 (t(N) is known never to approach N/2 in practice), so
// search stays within that provisioned ceiling.
func admissibleRange(N int64) (tmin, tmax int64) {
	return N/4 + 1, 2*N/5 - 1
}

func count(pt *primetable.Table, st *smooth.Store, N, t int64, cfg engine.Config) (int64, error) {
	res, err := engine.Run(pt, st, N, t, cfg)
	if err != nil {
		return 0, err
	}
	return res.Count, nil
}

// feasibleCount evaluates the cheap upper bound on the count the engine
// could ever construct for (N, t), without running the small-prime phase.
func feasibleCount(pt *primetable.Table, st *smooth.Store, N, t int64, cfg engine.Config) (int64, error) {
	fc := cfg
	fc.Feasible = true
	return count(pt, st, N, t, fc)
}

// Bound returns the largest t it can find in the admissible range for which
// the engine proves at least N factors of N! each >= t, i.e. a certified
// lower bound on t(N). It seeds at t = ceil(a*N/b) and, if that seed fails,
// decreases t until one succeeds (rarely invoked -- the seed almost always
// already works); from there it refines with the heuristic estimate
// t * exp((count-N)*log(t)/N) and bisects to the exact crossover, so it
// needs only a handful of engine runs rather than a full linear scan.
func Bound(pt *primetable.Table, st *smooth.Store, N int64, a, b int, cfg engine.Config) (int64, error) {
	tmin, tmax := admissibleRange(N)
	if tmin > tmax {
		return 0, fmt.Errorf("search: no admissible t for N=%d", N)
	}
	if a <= 0 || b <= 0 {
		return 0, fmt.Errorf("search: ratio %d/%d must have both parts positive", a, b)
	}

	okAt := func(t int64) (bool, error) {
		cnt, err := count(pt, st, N, t, cfg)
		if err != nil {
			return false, err
		}
		return cnt >= N, nil
	}

	guess := clamp(valuation.CDiv(int64(a)*N, int64(b)), tmin, tmax)
	cnt, err := count(pt, st, N, guess, cfg)
	if err != nil {
		return 0, err
	}
	for cnt < N && guess > tmin {
		guess--
		cnt, err = count(pt, st, N, guess, cfg)
		if err != nil {
			return 0, err
		}
	}
	if cnt < N {
		return 0, fmt.Errorf("search: no t down to tmin=%d proves t(N)>=N for N=%d", tmin, N)
	}

	for iter := 0; iter < 8 && cnt != N; iter++ {
		next := int64(float64(guess) * math.Exp(float64(cnt-N)*math.Log(float64(guess))/float64(N)))
		next = clamp(next, tmin, tmax)
		if next == guess {
			break
		}
		guess = next
		cnt, err = count(pt, st, N, guess, cfg)
		if err != nil {
			return 0, err
		}
	}

	lo, hi := tmin, tmax+1 // hi is a sentinel: known-or-assumed not to satisfy okAt
	if cnt >= N {
		lo = guess
	} else {
		hi = guess
	}
	for lo+1 < hi {
		mid := lo + (hi-lo)/2
		ok, err := okAt(mid)
		if err != nil {
			return 0, err
		}
		if ok {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo, nil
}

func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Exhaustive determines the exact largest t in the admissible range for
// which the engine proves t(N) >= N, first shrinking the search interval
// with the cheap feasibility bound, then scanning the remaining candidates
// in parallel across workers goroutines, each walking a disjoint residue
// class of t downward from the feasibility ceiling.
func Exhaustive(ctx context.Context, pt *primetable.Table, st *smooth.Store, N int64, cfg engine.Config, workers int) (int64, error) {
	tmin, tmax := admissibleRange(N)
	if tmin > tmax {
		return 0, fmt.Errorf("search: no admissible t for N=%d", N)
	}
	if workers < 1 {
		workers = 1
	}

	lo, hi := tmin, tmax
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		fc, err := feasibleCount(pt, st, N, mid, cfg)
		if err != nil {
			return 0, err
		}
		if fc >= N {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	ceiling := lo

	var mu sync.Mutex
	best := tmin - 1
	found := false

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for t := ceiling - int64(w); t >= tmin; t -= int64(workers) {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				mu.Lock()
				skip := found && t <= best
				mu.Unlock()
				if skip {
					continue
				}
				cnt, err := count(pt, st, N, t, cfg)
				if err != nil {
					return err
				}
				if cnt >= N {
					mu.Lock()
					if !found || t > best {
						best, found = t, true
					}
					mu.Unlock()
					return nil
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	if !found {
		return 0, fmt.Errorf("search: no admissible t proves t(N)>=N for N=%d", N)
	}
	return best, nil
}
