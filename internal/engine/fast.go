package engine

import (
	"github.com/tdunning/egs/internal/primetable"
	"github.com/tdunning/egs/internal/smooth"
	"github.com/tdunning/egs/internal/valuation"
	"github.com/tdunning/egs/internal/verify"
)

// fastSmallPrimePhaseA handles p_i in (ceil(t/maxCandidateM), P_max]: m is
// required to be (p_i-1)-smooth, decoupling p_i's exponent updates from m's,
// and p_i^2 is tried as a fallback whenever a single m cannot fully clear
// E[i].
func fastSmallPrimePhaseA(pt *primetable.Table, st *smooth.Store, ex *valuation.Exponents, t int64, s, maxpi int32, ms []int64, numm int32, maxCandidateM int64, lg *verify.Log) int64 {
	var cnt int64
	pimin := int32(pi(pt, valuation.CDiv(t, maxCandidateM))) + 1
	j := int32(valuation.CDiv(t, int64(s)))

	for i := maxpi; i >= pimin; i-- {
		for pt.P[i]*ms[j] < t || st.TopPrime(ms[j]) >= i {
			j++
		}
		if j > numm {
			invariant("fast greedy: ran out of candidate cofactors at prime index %d", i)
		}
		f := st.Factorization(ms[j])
		m := ms[j]
		e := ex.Fcnt(ex.E[i], f)
		if e < ex.E[i] {
			m2 := valuation.CDiv(t, pt.P[i]*pt.P[i])
			g := st.Factorization(m2)
			e2 := ex.Fcnt(ex.E[i]/2, g)
			if e2 > 0 {
				if lg != nil {
					lg.ExtendPrimeSquare(e2, m2, g, pt, i)
				}
				cnt += e2
				ex.E[i] -= 2 * e2
				for _, pp := range g {
					ex.E[pp.Prime] -= e2 * int64(pp.Exp)
				}
			}
			e = ex.Fcnt(ex.E[i], f)
		}
		if e > 0 {
			if lg != nil {
				lg.ExtendPrime(e, m, f, pt.P[i])
			}
			cnt += e
			ex.E[i] -= e
			for _, pp := range f {
				ex.E[pp.Prime] -= e * int64(pp.Exp)
			}
		}
		if ex.E[i] == 0 {
			continue
		}

		best, bestF, bestM := int64(0), []smooth.PP(nil), int64(0)
		for k := j + 1; k <= numm; k++ {
			g := st.Factorization(ms[k])
			x := ex.Fcnt(ex.E[i], g)
			if x > best {
				best, bestF, bestM = x, g, ms[k]
				if best == ex.E[i] {
					break
				}
			}
		}
		if best > 0 {
			if lg != nil {
				lg.ExtendPrime(best, bestM, bestF, pt.P[i])
			}
			cnt += best
			ex.E[i] -= best
			for _, pp := range bestF {
				ex.E[pp.Prime] -= best * int64(pp.Exp)
			}
		}
		if ex.E[i] == 0 {
			continue
		}

		best, bestF, bestM = 0, nil, 0
		k0 := valuation.CDiv(t, pt.P[i]*pt.P[i]) + 1
		for k := int32(k0); k <= numm; k++ {
			g := st.Factorization(ms[k])
			x := ex.Fcnt(ex.E[i]/2, g)
			if x > best {
				best, bestF, bestM = x, g, ms[k]
				if best == ex.E[i] {
					break
				}
			}
		}
		if best > 0 {
			if lg != nil {
				lg.ExtendPrimeSquare(best, bestM, bestF, pt, i)
			}
			cnt += best
			ex.E[i] -= 2 * best
			for _, pp := range bestF {
				ex.E[pp.Prime] -= best * int64(pp.Exp)
			}
		}
		// E[i] may still be > 0 here; usually it is at most 1. Pass B mops
		// up whatever remains.
	}
	return cnt
}

// fastSmallPrimePhaseB assembles composite factors out of the residual
// small primes fastSmallPrimePhaseA could not clear, mostly primes below
// t^(3/8). It walks the top prime index downward, multiplying primes into a
// running product q until multiplying in the next prime would reach
// good = 5*ceil(t/4), or no primes remain, then looks for a cofactor to
// close the gap up to t.
func fastSmallPrimePhaseB(pt *primetable.Table, st *smooth.Store, ex *valuation.Exponents, t int64, s, maxpi int32, lg *verify.Log) int64 {
	var cnt int64
	for maxpi != 0 && ex.E[maxpi] == 0 {
		maxpi--
	}
	good := 5 * valuation.CDiv(t, 4)
	var c []smooth.PP

	for maxpi != 0 {
		for maxpi != 0 && ex.E[maxpi] == 0 {
			maxpi--
		}
		if maxpi == 0 {
			break
		}
		i := maxpi
		q := pt.P[i]
		c = append(c[:0], smooth.PP{Prime: i, Exp: 1})
		ex.E[i]--
		for i != 0 && ex.E[i] == 0 {
			i--
		}
		if i == 0 {
			break
		}
		for i != 0 && q*pt.P[i] < good {
			q *= pt.P[i]
			ex.E[i]--
			if c[len(c)-1].Prime == i {
				c[len(c)-1].Exp++
			} else {
				c = append(c, smooth.PP{Prime: i, Exp: 1})
			}
			for i != 0 && ex.E[i] == 0 {
				i--
			}
		}
		if i == 0 && q < t {
			break
		}

		e := 1 + ex.Fcnt(ex.E[c[0].Prime]/int64(c[0].Exp), c[1:])
		if q < t {
			if q <= int64(s) {
				invariant("fast greedy: assembled composite %d did not exceed s", q)
			}
			smallest := c[len(c)-1].Prime
			var g []smooth.PP
			var best, bestM int64
			for m := valuation.CDiv(t, q); m < pt.P[smallest]; m++ {
				f := st.Factorization(m)
				x := ex.Fcnt(e, f)
				if x > best {
					best, g, bestM = x, f, m
				}
				if x == e {
					break
				}
			}
			if best > 0 {
				for _, pp := range g {
					ex.E[pp.Prime] -= int64(pp.Exp)
				}
				c = append(c, g...)
				q *= bestM
			} else {
				if i == 0 {
					break
				}
				q *= pt.P[i]
				ex.E[i]--
				if c[len(c)-1].Prime == i {
					c[len(c)-1].Exp++
				} else {
					c = append(c, smooth.PP{Prime: i, Exp: 1})
				}
				best = 1 + ex.Fcnt(ex.E[c[0].Prime]/int64(c[0].Exp), c[1:])
				if best == 0 {
					invariant("fast greedy: could not complete a composite factor at prime index %d", i)
				}
			}
			e = best
		}
		if lg != nil {
			lg.ExtendComposite(e, q, c, pt)
		}
		cnt += e
		e--
		for _, pp := range c {
			ex.E[pp.Prime] -= e * int64(pp.Exp)
		}
		c = c[:0]
		maxpi = i
	}

	// A break above may have left c partially charged against E; restore it
	// so the reported residual is a true divisor of what remains.
	for _, pp := range c {
		ex.E[pp.Prime] += int64(pp.Exp)
	}
	return cnt
}
