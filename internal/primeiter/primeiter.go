// Package primeiter is the prime-enumeration collaborator: a segmented
// sieve that yields primes in order over an arbitrary window, mirroring the
// bulk-iteration contract of a primesieve_iterator without depending on any
// value already present in internal/primetable (the two windows do not
// coincide: the large-prime phase enumerates primes far above the table's
// smoothness bound).
package primeiter

import "math"

const defaultSegment = 1 << 18

// Iterator yields primes p with lo <= p <= hi in ascending order.
type Iterator struct {
	hi      int64
	base    []int64
	segSize int64
	segLo   int64
	buf     []int64
	pos     int
	done    bool
}

// New starts an iterator over the closed interval [lo, hi].
func New(lo, hi int64) *Iterator {
	it := &Iterator{hi: hi, segSize: defaultSegment}
	if lo < 2 {
		lo = 2
	}
	if hi < lo {
		it.done = true
		return it
	}
	limit := isqrt(hi) + 1
	it.base = sieveUpTo(limit)
	it.segLo = lo
	return it
}

// Next returns the next prime in the window, or (0, false) once exhausted.
func (it *Iterator) Next() (int64, bool) {
	for it.pos >= len(it.buf) {
		if it.done {
			return 0, false
		}
		it.fillSegment()
	}
	p := it.buf[it.pos]
	it.pos++
	return p, true
}

func (it *Iterator) fillSegment() {
	if it.segLo > it.hi {
		it.done = true
		it.buf = nil
		it.pos = 0
		return
	}
	segHi := it.segLo + it.segSize
	if segHi > it.hi+1 {
		segHi = it.hi + 1
	}
	size := segHi - it.segLo
	composite := make([]bool, size)
	for _, p := range it.base {
		if p*p >= segHi {
			break
		}
		start := ((it.segLo + p - 1) / p) * p
		if start < p*p {
			start = p * p
		}
		for m := start; m < segHi; m += p {
			composite[m-it.segLo] = true
		}
	}
	it.buf = it.buf[:0]
	for i := int64(0); i < size; i++ {
		if !composite[i] {
			it.buf = append(it.buf, it.segLo+i)
		}
	}
	it.pos = 0
	it.segLo = segHi
}

func sieveUpTo(n int64) []int64 {
	if n < 2 {
		return nil
	}
	composite := make([]bool, n+1)
	var primes []int64
	for i := int64(2); i <= n; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, i)
		if i <= n/i {
			for j := i * i; j <= n; j += i {
				composite[j] = true
			}
		}
	}
	return primes
}

func isqrt(n int64) int64 {
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
