package engine

import (
	"github.com/tdunning/egs/internal/primetable"
	"github.com/tdunning/egs/internal/smooth"
	"github.com/tdunning/egs/internal/valuation"
	"github.com/tdunning/egs/internal/verify"
)

// standardSmallPrimePhase walks prime indices i = maxpi downward, pairing
// each with the smallest usable cofactor from ms (index j advancing
// monotonically), per the standard greedy algorithm.
func standardSmallPrimePhase(pt *primetable.Table, st *smooth.Store, ex *valuation.Exponents, t int64, s, maxpi int32, ms []int64, numm int32, lg *verify.Log) int64 {
	var cnt, pcnt int64
	for i := int32(0); i <= maxpi; i++ {
		pcnt += ex.E[i]
	}

	j := int32(valuation.CDiv(t, int64(s)))
	for i := maxpi; i != 0; {
		for j <= numm && (pt.P[i]*ms[j] < t || st.TopPrime(ms[j]) > i) {
			j++
		}
		if j > numm {
			break
		}
		f := st.Factorization(ms[j])
		e := ex.Fcnti(i, f)
		if e == 0 {
			if pcnt < 40 {
				q := int64(1)
				for ii := i; ii != 0 && q < t; ii-- {
					for x := int64(0); x < ex.E[ii] && q < t; x++ {
						q *= pt.P[ii]
					}
				}
				if q < t {
					break
				}
			}
			j++
			continue
		}
		cnt += e
		ex.E[i] -= e
		pcnt -= e
		for _, pp := range f {
			ex.E[pp.Prime] -= e * int64(pp.Exp)
			pcnt -= e * int64(pp.Exp)
		}
		if lg != nil {
			lg.ExtendPrime(e, ms[j], f, pt.P[i])
		}
		for i != 0 && ex.E[i] == 0 {
			i--
		}
	}
	return cnt
}
