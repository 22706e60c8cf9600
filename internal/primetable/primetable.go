// Package primetable builds the read-only prime and prime-counting tables
// that the rest of the engine treats as immutable once setup completes.
package primetable

import (
	"fmt"
	"math"
)

// Table holds the n-th prime for n up to len(P)-1 and pi(x) for x up to PMax.
//
// P[0] is the sentinel value 1 (not a prime), so P[n] is the n-th real prime
// for n >= 1. PI[x] = pi(x) for 0 <= x <= PMax.
type Table struct {
	P    []int64
	PI   []int32
	PMax int64
	MaxPI int32
}

// Build sieves every prime up to pMax and derives pi(x) for all x <= pMax.
func Build(pMax int64) *Table {
	if pMax < 2 {
		pMax = 2
	}
	isComposite := make([]bool, pMax+1)
	primes := make([]int64, 0, estimatePiUpperBound(pMax))
	for i := int64(2); i <= pMax; i++ {
		if isComposite[i] {
			continue
		}
		primes = append(primes, i)
		if i <= pMax/i {
			for j := i * i; j <= pMax; j += i {
				isComposite[j] = true
			}
		}
	}

	P := make([]int64, len(primes)+1)
	P[0] = 1
	copy(P[1:], primes)

	PI := make([]int32, pMax+1)
	for n, p := range primes {
		PI[p] = int32(n + 1)
	}
	for x := int64(1); x <= pMax; x++ {
		if PI[x] == 0 {
			PI[x] = PI[x-1]
		}
	}

	return &Table{P: P, PI: PI, PMax: pMax, MaxPI: int32(len(primes))}
}

// estimatePiUpperBound gives a loose but safe capacity hint for the sieve's
// output slice; being wrong only costs a reallocation.
func estimatePiUpperBound(x int64) int64 {
	if x < 17 {
		return 6
	}
	f := float64(x)
	return int64(1.3*f/math.Log(f)) + 32
}

// Pi returns pi(x) for 0 <= x <= PMax. It panics for x outside that range;
// callers must dispatch to internal/primecount for larger x.
func (t *Table) Pi(x int64) int32 {
	if x < 0 || x > t.PMax {
		panic(fmt.Sprintf("primetable: Pi(%d) out of range [0,%d]", x, t.PMax))
	}
	return t.PI[x]
}
