// Package valuation implements the per-run mutable state of the greedy
// engine: the exponent vector E of spec section 3, and the two arithmetic
// primitives (fcnt, fcnti) the large- and small-prime phases share. It also
// hosts a handful of small integer helpers (cdiv, isqrt, fac_s) used
// throughout the engine.
package valuation

import (
	"math"

	"github.com/tdunning/egs/internal/primetable"
	"github.com/tdunning/egs/internal/smooth"
)

// Exponents is E: the p-adic valuations of N! for primes indexed 1..MaxPI.
// It is mutated monotonically downward as the engine allocates factors.
type Exponents struct {
	E []int64
}

// New computes E[i] = v_{p_i}(N!) for i in [1, maxPI].
func New(pt *primetable.Table, n int64, maxPI int32) *Exponents {
	e := make([]int64, maxPI+1)
	for i := int32(1); i <= maxPI; i++ {
		p := pt.P[i]
		for q := p; q <= n; {
			e[i] += n / q
			if q > n/p {
				break // next power of p would exceed n; stop before it overflows
			}
			q *= p
		}
	}
	return &Exponents{E: e}
}

// Fcnt returns min(e, min over f's primes of E[pi]/exp) — how many copies of
// the number with factorization f still fit in the residual, capped at e.
func (ex *Exponents) Fcnt(e int64, f []smooth.PP) int64 {
	for _, pp := range f {
		if v := ex.E[pp.Prime] / int64(pp.Exp); v < e {
			e = v
		}
	}
	return e
}

// Fcnti is Fcnt for the composite p_i * m, where m has factorization f and p_i
// is allowed to coincide with f's leading (largest-index) prime.
func (ex *Exponents) Fcnti(i int32, f []smooth.PP) int64 {
	var e int64
	if len(f) > 0 && f[0].Prime == i {
		e = ex.E[i] / int64(f[0].Exp+1)
	} else {
		e = ex.E[i]
	}
	return ex.Fcnt(e, f)
}

// Sub subtracts mult copies of f's factorization from E.
func (ex *Exponents) Sub(f []smooth.PP, mult int64) {
	for _, pp := range f {
		ex.E[pp.Prime] -= mult * int64(pp.Exp)
	}
}

// CDiv returns ceil(a/b) for positive a, b.
func CDiv(a, b int64) int64 {
	return (a + b - 1) / b
}

// FacS returns the smallest s with s*(s-1) >= t.
func FacS(t int64) int64 {
	s := Isqrt(t)
	for s*(s-1) < t {
		s++
	}
	return s
}

// Isqrt returns floor(sqrt(n)) for n >= 0.
func Isqrt(n int64) int64 {
	if n < 0 {
		return 0
	}
	r := int64(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

func Min(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func Max(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
