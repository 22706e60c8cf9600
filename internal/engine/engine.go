// Package engine implements the greedy factorization engine: given
// precomputed prime and smooth-factorization tables and a target (N, t), it
// allocates factors of N! that are each >= t, tracking the residual p-adic
// valuations of N! as it goes.
package engine

import (
	"fmt"
	"math"

	"github.com/tdunning/egs/internal/primetable"
	"github.com/tdunning/egs/internal/smooth"
	"github.com/tdunning/egs/internal/valuation"
	"github.com/tdunning/egs/internal/verify"
)

// Result is the outcome of one engine invocation.
type Result struct {
	// Count is the total number of factors >= t constructed. The caller
	// compares this against N; count < N is not itself an error.
	Count int64
	// Residual is the largest divisor of the unfactored remainder the
	// engine could assemble; it is always < t.
	Residual int64
	// Log is the replayable factorization log, present only when
	// Config.RecordLog was set.
	Log *verify.Log
}

// Run constructs factors of N! that are each >= t using tables pt/st and
// the phase selected by cfg.Variant. Domain violations and resource-bound
// overruns are returned as errors; a run that completes but proves fewer
// than N factors is not an error.
func Run(pt *primetable.Table, st *smooth.Store, N, t int64, cfg Config) (res Result, err error) {
	if verr := cfg.Validate(); verr != nil {
		return Result{}, verr
	}
	if N < MinN || N >= MaxN || 4*t <= N || 2*t >= N {
		return Result{}, &ErrDomain{Msg: fmt.Sprintf("N=%d t=%d must satisfy %d<=N<%d and N/4<t<N/2", N, t, MinN, MaxN)}
	}

	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*InvariantError); ok {
				err = ie
				return
			}
			panic(r)
		}
	}()

	s := int32(valuation.FacS(t))
	if int64(s) > pt.PMax {
		return Result{}, &ErrResourceBound{Msg: fmt.Sprintf("s=%d exceeds table coverage P_max=%d", s, pt.PMax)}
	}
	maxpi := pt.Pi(int64(s) - 1)

	var maxM int64
	if cfg.Variant == Fast {
		maxM = int64(math.Pow(float64(t), 0.625))
	} else {
		if t > st.MaxM+1 {
			return Result{}, &ErrResourceBound{Msg: fmt.Sprintf("t=%d exceeds smooth-table capacity M_max=%d for the standard variant", t, st.MaxM)}
		}
		maxM = t - 1
	}
	if maxM > st.MaxM {
		return Result{}, &ErrResourceBound{Msg: fmt.Sprintf("required smooth cofactor bound %d exceeds table capacity %d", maxM, st.MaxM)}
	}

	ex := valuation.New(pt, N, maxpi)

	ms, numm := buildMsList(pt, st, t, s, maxpi, maxM, cfg.Variant)
	maxM = ms[numm]

	var lg *verify.Log
	if cfg.RecordLog {
		lg = verify.NewLog(N, t)
	}

	cnt, lastpi := largePrimePhase(pt, st, ex, N, t, s, cfg.Cutoff, lg)
	cnt += tailBlock(pt, st, N, t, lastpi, lg)

	for i := int32(1); i <= maxpi; i++ {
		if ex.E[i] < 0 {
			invariant("residual exponent negative at prime index %d after the large-prime phase", i)
		}
	}

	if cfg.Feasible {
		return Result{Count: cnt + feasibleBound(pt, ex, t, maxpi), Log: lg}, nil
	}

	switch cfg.Variant {
	case Fast:
		cnt += fastSmallPrimePhaseA(pt, st, ex, t, s, maxpi, ms, numm, maxM, lg)
		for maxpi != 0 && ex.E[maxpi] == 0 {
			maxpi--
		}
		cnt += fastSmallPrimePhaseB(pt, st, ex, t, s, maxpi, lg)
	default:
		cnt += standardSmallPrimePhase(pt, st, ex, t, s, maxpi, ms, numm, lg)
	}

	residual := int64(1)
	for i := int32(1); i <= maxpi; i++ {
		if ex.E[i] < 0 {
			invariant("residual exponent negative at prime index %d", i)
		}
		for e := int64(0); e < ex.E[i]; e++ {
			residual *= pt.P[i]
			if residual >= t {
				invariant("residual product reached t: remaining exponents could form another factor")
			}
		}
	}

	return Result{Count: cnt, Residual: residual, Log: lg}, nil
}
