package engine

import (
	"math"

	"github.com/tdunning/egs/internal/primeiter"
	"github.com/tdunning/egs/internal/primetable"
	"github.com/tdunning/egs/internal/smooth"
	"github.com/tdunning/egs/internal/valuation"
	"github.com/tdunning/egs/internal/verify"
)

// largePrimePhase allocates the minimal cofactor m = ceil(t/p) against every
// prime p in [s, t-1], taking n = v_p(N!) copies of m*p each. It mutates ex
// and lg in place and returns the running factor count together with
// pi(t-1), the prime index the tail block continues from.
func largePrimePhase(pt *primetable.Table, st *smooth.Store, ex *valuation.Exponents, N, t int64, s int32, cutoff float64, lg *verify.Log) (cnt, lastpi int64) {
	sqrtN := valuation.Isqrt(N)
	sVal := int64(s)

	m := valuation.CDiv(t, sVal)

	mid := valuation.Min(int64(math.Pow(float64(t), cutoff)), (t-1)/sqrtN)
	if sqrtN*mid >= t {
		mid = (t - 1) / sqrtN
	}

	it := primeiter.New(sVal, (t-1)/mid)

	// R1: p in [s, sqrt(N)]; few primes, recompute n from scratch each step.
	p, ok := it.Next()
	for ok && p <= sqrtN {
		for (m-1)*p >= t {
			m--
		}
		n := N/p + N/(p*p)
		f := st.Factorization(m)
		ex.Sub(f, n)
		cnt += n
		if lg != nil {
			lg.ExtendPrime(n, m, f, p)
		}
		p, ok = it.Next()
	}

	pmmax := (t - 1) / (m - 1)
	n := N / (sqrtN + 1)
	pnmax := N / n
	plmmax := (t - 1) / mid
	pmin := p - 1

	// R2: p in (sqrt(N), plmmax]; enumerate primes, batch by (m, n) interval.
	for ok && p <= plmmax {
		for p > pmmax {
			m--
			pmmax = (t - 1) / (m - 1)
		}
		for p > pnmax {
			n--
			pnmax = N / n
		}
		pmax := valuation.Min(pmmax, pnmax)
		c := int64(1)
		p, ok = it.Next()
		for ok && p <= pmax {
			c++
			p, ok = it.Next()
		}
		f := st.Factorization(m)
		ex.Sub(f, c*n)
		cnt += c * n
		if lg != nil {
			lg.Extend(n, m, f, pmin, pmax, c)
			pmin = p - 1
		}
	}

	lastpi = pi(pt, plmmax)
	pmin = plmmax

	// R3: p in (plmmax, t-1]; iterate by cofactor m, counting primes by
	// differencing pi() instead of enumerating them.
	for m := mid; m > 1; m-- {
		pLow := valuation.CDiv(t, m)
		pHigh := (t - 1) / (m - 1)
		n := N / pLow
		pnmax := valuation.Min(N/n, pHigh)
		for pmin < pHigh {
			nextpi := pi(pt, pnmax)
			c := nextpi - lastpi
			f := st.Factorization(m)
			ex.Sub(f, c*n)
			cnt += c * n
			if lg != nil {
				lg.Extend(n, m, f, pmin, pnmax, c)
			}
			pmin = pnmax
			n--
			pnmax = valuation.Min(N/n, pHigh)
			lastpi = nextpi
		}
	}

	return cnt, lastpi
}

// tailBlock handles primes p in [t, N]: three factors each for p <= N/3
// (when 3t <= N), two for p in (max(t-1,N/3), N/2], one for p in (N/2, N].
func tailBlock(pt *primetable.Table, st *smooth.Store, N, t, lastpi int64, lg *verify.Log) int64 {
	var cnt int64
	f := st.Factorization(1)
	if 3*t <= N {
		nextpi := pi(pt, N/3)
		c := nextpi - lastpi
		cnt += 3 * c
		if lg != nil {
			lg.Extend(3, 1, f, t-1, N/3, c)
		}
		lastpi = nextpi
	}
	nextpi := pi(pt, N/2)
	c := nextpi - lastpi
	cnt += 2 * c
	if lg != nil {
		lg.Extend(2, 1, f, valuation.Max(t-1, N/3), N/2, c)
	}
	lastpi = nextpi
	nextpi = pi(pt, N)
	c = nextpi - lastpi
	cnt += c
	if lg != nil {
		lg.Extend(1, 1, f, N/2, N, c)
	}
	return cnt
}
