// Package verify rebuilds the exponent vector for an (N, t) pair from
// scratch and replays a factorization log against it, independently
// checking every descriptor and the residual invariant E[i] >= 0.
package verify

import (
	"fmt"

	"github.com/tdunning/egs/internal/primecount"
	"github.com/tdunning/egs/internal/primetable"
	"github.com/tdunning/egs/internal/smooth"
	"github.com/tdunning/egs/internal/valuation"
)

// Descriptor records "there are c primes in (p, q], each contributing mult
// identical factors m*p', giving c*mult factors overall; m's factorization
// is f". When p+1 == q this degenerates to a single prime with multiplicity
// mult.
type Descriptor struct {
	Mult int64
	M    int64
	F    []smooth.PP
	P    int64
	Q    int64
	C    int64
}

// Log is a growable, ordered sequence of descriptors with header (N, T).
type Log struct {
	N, T  int64
	Items []Descriptor
}

// NewLog starts an empty log for the given (N, t) run.
func NewLog(n, t int64) *Log {
	return &Log{N: n, T: t}
}

// Extend appends a descriptor, copying f so later mutation of the caller's
// scratch factorization slice cannot corrupt the log.
func (lg *Log) Extend(mult, m int64, f []smooth.PP, p, q, c int64) {
	rec := make([]smooth.PP, len(f))
	copy(rec, f)
	lg.Items = append(lg.Items, Descriptor{Mult: mult, M: m, F: rec, P: p, Q: q, C: c})
}

// ExtendPrime records a single-prime descriptor: c=1, q=p+1 in the (p,q]
// sense (stored here as p=p-1, q=p).
func (lg *Log) ExtendPrime(mult, m int64, f []smooth.PP, p int64) {
	lg.Extend(mult, m, f, p-1, p, 1)
}

// ExtendPrimeSquare records a factor of the form p_i^2 * m, expressed as the
// single-prime case for the composite cofactor p_i * m.
func (lg *Log) ExtendPrimeSquare(mult, m int64, f []smooth.PP, pt *primetable.Table, i int32) {
	h := make([]smooth.PP, 0, len(f)+1)
	h = append(h, smooth.PP{Prime: i, Exp: 1})
	h = append(h, f...)
	lg.ExtendPrime(mult, m*pt.P[i], h, pt.P[i])
}

// ExtendComposite records a factor whose top prime power was itself part of
// the assembled cofactor: f's leading term is peeled off, its exponent
// decremented by one (dropped entirely if it reaches zero), and the result
// logged as a single-prime descriptor for that leading prime.
func (lg *Log) ExtendComposite(mult, m int64, f []smooth.PP, pt *primetable.Table) {
	if len(f) == 0 {
		panic("verify: ExtendComposite requires a non-empty factorization")
	}
	p := pt.P[f[0].Prime]
	var rest []smooth.PP
	if f[0].Exp > 1 {
		rest = make([]smooth.PP, len(f))
		copy(rest, f)
		rest[0].Exp--
	} else {
		rest = f[1:]
	}
	lg.ExtendPrime(mult, m/p, rest, p)
}

func pi(pt *primetable.Table, n int64) int64 {
	if n <= pt.PMax {
		return int64(pt.Pi(n))
	}
	return primecount.Pi(n)
}

// InvariantError reports that a log failed to replay cleanly: either a
// descriptor is malformed, or the replay left a negative exponent.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string { return "verify: " + e.Msg }

// Verify rebuilds E for (N, t) and replays every descriptor in lg against
// it, returning the total factor count if the replay is internally
// consistent throughout.
func Verify(pt *primetable.Table, st *smooth.Store, n, t int64, lg *Log) (int64, error) {
	sqrtN := valuation.Isqrt(n)
	s := valuation.FacS(t)
	maxpi := pt.Pi(s - 1)
	ex := valuation.New(pt, n, maxpi)
	// localMaxP is the largest prime this call's E covers, sized to (N, t)
	// itself -- not pt.PMax, the table's overall build ceiling, which is
	// typically much larger. Every branch below tests against this bound,
	// matching egs.c's own maxp = P[maxpi].
	localMaxP := pt.P[maxpi]

	var cnt, lastp, nextpi int64
	for _, r := range lg.Items {
		if r.Mult <= 0 || r.P >= r.Q || r.Q > n {
			return 0, &InvariantError{Msg: fmt.Sprintf("malformed descriptor (mult=%d,p=%d,q=%d)", r.Mult, r.P, r.Q)}
		}
		if r.M*(r.P+1) < t {
			return 0, &InvariantError{Msg: fmt.Sprintf("m*(p+1) < t for m=%d p=%d", r.M, r.P)}
		}
		if r.Q <= localMaxP {
			var x int64
			for pidx := int64(pt.Pi(r.P)) + 1; pidx <= int64(pt.Pi(r.Q)); pidx++ {
				ex.E[pidx] -= r.Mult
				x += r.Mult
			}
			for _, f := range r.F {
				ex.E[f.Prime] -= x * int64(f.Exp)
			}
			cnt += x
		} else {
			var lpi int64
			if r.P == lastp && nextpi != 0 {
				lpi = nextpi
			} else {
				lpi = pi(pt, r.P)
			}
			nextpi = pi(pt, r.Q)
			if r.P+1 <= localMaxP {
				return 0, &InvariantError{Msg: "large-block descriptor references a table-range prime"}
			}
			if r.Q <= sqrtN {
				if n/r.Q+n/(r.Q*r.Q) != r.Mult || n/(r.P+1)+n/((r.P+1)*(r.P+1)) != r.Mult {
					return 0, &InvariantError{Msg: fmt.Sprintf("n mismatch for prime block (%d,%d]", r.P, r.Q)}
				}
			} else {
				if n/(r.P+1) != r.Mult || n/r.Q != r.Mult {
					return 0, &InvariantError{Msg: fmt.Sprintf("n mismatch for prime block (%d,%d]", r.P, r.Q)}
				}
			}
			x := r.Mult * (nextpi - lpi)
			for _, f := range st.Factorization(r.M) {
				ex.E[f.Prime] -= x * int64(f.Exp)
			}
			cnt += x
		}
		lastp = r.Q
	}
	for i := int32(1); i <= maxpi; i++ {
		if ex.E[i] < 0 {
			return 0, &InvariantError{Msg: fmt.Sprintf("residual exponent negative at prime index %d", i)}
		}
	}
	return cnt, nil
}
