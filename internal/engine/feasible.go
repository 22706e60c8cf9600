package engine

import (
	"math"

	"github.com/tdunning/egs/internal/primetable"
	"github.com/tdunning/egs/internal/valuation"
)

// feasibilityEpsilon nudges the log-sum in the conservative direction: a
// tiny amount added to each prime (so its log is slightly overestimated)
// and subtracted from t-1 in the denominator (so its log is slightly
// underestimated), so the floored ratio is a true upper bound rather than
// merely a close estimate.
const feasibilityEpsilon = 1e-16

// feasibleBound upper-bounds the residual small-prime contribution as
// floor(sum_i E[i]*log(p_i) / log(t-1)).
func feasibleBound(pt *primetable.Table, ex *valuation.Exponents, t int64, maxpi int32) int64 {
	var ebits float64
	for i := int32(1); i <= maxpi; i++ {
		ebits += float64(ex.E[i]) * math.Log(float64(pt.P[i])+feasibilityEpsilon)
	}
	return int64(math.Floor(ebits / math.Log(float64(t-1)-feasibilityEpsilon)))
}
