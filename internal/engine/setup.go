package engine

import (
	"math"

	"github.com/tdunning/egs/internal/primetable"
	"github.com/tdunning/egs/internal/smooth"
	"github.com/tdunning/egs/internal/valuation"
)

// Tables holds the prime and smooth-factorization tables, built once and
// shared read-only across every Run call and every worker in a parallel
// search.
type Tables struct {
	PT *primetable.Table
	ST *smooth.Store
}

// Setup builds tables large enough to serve any (N, t) with N <= maxN and
// t <= 2*maxN/5, for the given variant; a larger t may exceed the tables
// and make Run return ErrResourceBound. The standard variant's smooth table scales with t
// itself (up to t-1), so it is only practical for modest maxN; the fast
// variant's table scales with t^0.625 and comfortably covers the full
// domain envelope.
func Setup(maxN int64, variant Variant) *Tables {
	maxT := 2 * maxN / 5
	pMax := valuation.FacS(maxT)
	var maxM int64
	if variant == Fast {
		maxM = int64(math.Pow(float64(maxT), 5.0/8))
	} else {
		maxM = maxT - 1
	}
	pt := primetable.Build(pMax)
	st := smooth.Build(pt, maxM)
	return &Tables{PT: pt, ST: st}
}
