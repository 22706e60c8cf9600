// Package primecount is the prime-counting collaborator: it returns pi(x)
// exactly for x beyond the range the precomputed prime table covers, using
// the Lucy_Hedgehog meissel-style summation (O(x^0.75) time, O(sqrt(x))
// memory). No published Go module in the example pack wraps a primecount
// equivalent, so this is a from-scratch implementation of the well-known
// algorithm rather than a port of any example file.
package primecount

import "math"

// Pi returns the exact number of primes <= n.
func Pi(n int64) int64 {
	if n < 2 {
		return 0
	}
	v := isqrt(n)
	smaller := make([]int64, v+1) // smaller[i] = (count of integers in [2,i]) for i <= v
	larger := make([]int64, v+1)  // larger[i] = (count of integers in [2, n/i]) for i <= v
	for i := int64(1); i <= v; i++ {
		smaller[i] = i - 1
		larger[i] = n/i - 1
	}
	for p := int64(2); p <= v; p++ {
		if smaller[p] == smaller[p-1] {
			continue // p is composite
		}
		sp := smaller[p-1]
		p2 := p * p
		lim := v
		if n/p2 < lim {
			lim = n / p2
		}
		for i := int64(1); i <= lim; i++ {
			d := i * p
			if d <= v {
				larger[i] -= larger[d] - sp
			} else {
				larger[i] -= smaller[n/d] - sp
			}
		}
		for i := v; i >= p2; i-- {
			smaller[i] -= smaller[i/p] - sp
		}
	}
	return larger[1]
}

func isqrt(n int64) int64 {
	r := int64(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
