package engine

import (
	"github.com/tdunning/egs/internal/primetable"
	"github.com/tdunning/egs/internal/smooth"
)

// buildMsList returns the ascending list of candidate cofactors usable at
// threshold t: every m < s is automatically P_max-smooth (its prime factors
// are all < s <= P_max), so those are included unconditionally; every
// smooth m in [s, maxCandidateM] is included only if its largest prime
// factor stays within the cutoff the variant requires (<= maxpi for
// standard greedy, or <= pi(t/m) for fast greedy, which additionally needs
// m to remain (p-1)-smooth relative to the prime it will pair with).
// ms[0] is an unused sentinel; numm is the index of the last valid entry.
func buildMsList(pt *primetable.Table, st *smooth.Store, t int64, s, maxpi int32, maxCandidateM int64, variant Variant) (ms []int64, numm int32) {
	ms = make([]int64, 1, maxCandidateM+2)
	for m := int64(1); m < int64(s); m++ {
		ms = append(ms, m)
	}
	for m := int64(s); m <= maxCandidateM; m++ {
		top := st.TopPrime(m)
		if top == 0 {
			continue
		}
		limit := maxpi
		if variant == Fast {
			limit = pt.Pi(t / m)
		}
		if top <= limit {
			ms = append(ms, m)
		}
	}
	numm = int32(len(ms) - 1)
	return ms, numm
}
