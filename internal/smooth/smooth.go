// Package smooth builds and stores the P_max-smooth factorization table:
// for every P_max-smooth integer m up to MaxM, a compact prime-power
// record, packed into one contiguous arena and indexed by offset.
package smooth

import (
	"math/bits"

	"github.com/tdunning/egs/internal/primetable"
)

// PP is a single prime-power term (pi, e) in a factorization record. A
// record is a run of PP values in strictly descending order by Prime,
// implicitly terminated by the end of its slice (internal/smooth never
// hands out a slice that includes the zero terminator). Prime == 1 is the
// sentinel used to encode a power of two when m is even.
type PP struct {
	Prime int32
	Exp   uint8
}

// Store is the factorization arena F together with the offset index M.
type Store struct {
	F    []PP
	M    []uint32
	MaxM int64
}

// Build computes M[m] for every m in [0, maxM] and the backing arena F, per
// spec section 4.1: a least-odd-prime-factor style sieve to find each m's
// largest table-prime factor, then repeated peeling to assemble the full
// factorization, odd m first and then even m built on top of their odd part.
func Build(pt *primetable.Table, maxM int64) *Store {
	if maxM%2 == 0 {
		maxM++
	}
	top := make([]uint32, maxM+1)
	for pi := int32(1); pi <= pt.MaxPI; pi++ {
		p := pt.P[pi]
		for q := p; q <= maxM; q += p {
			top[q] = uint32(pi)
		}
	}

	arena := make([]PP, 1, 4*maxM+16)
	arena[0] = PP{} // offset 0 is a reserved, unused sentinel

	for m := maxM; m > 1; m -= 2 {
		rec, smoothM := peel(pt, top, m)
		if !smoothM {
			top[m] = 0
			continue
		}
		top[m] = uint32(len(arena))
		arena = append(arena, rec...)
		arena = append(arena, PP{}) // zero terminator
	}

	// m = 1 factors to the empty product: a record that is immediately the
	// terminator.
	top[1] = uint32(len(arena))
	arena = append(arena, PP{})

	for m := maxM - 1; m > 1; m -= 2 {
		e := bits.TrailingZeros64(uint64(m))
		q := m >> uint(e)
		if top[q] == 0 {
			top[m] = 0
			continue
		}
		base := factorizationAt(arena, top[q])
		rec := make([]PP, len(base), len(base)+1)
		copy(rec, base)
		rec = append(rec, PP{Prime: 1, Exp: uint8(e)})
		top[m] = uint32(len(arena))
		arena = append(arena, rec...)
		arena = append(arena, PP{}) // zero terminator
	}

	// Shrink the arena to its exact size now that it is complete.
	f := make([]PP, len(arena))
	copy(f, arena)
	return &Store{F: f, M: top, MaxM: maxM}
}

// peel repeatedly strips the largest table-prime factor off m, accumulating
// a descending-by-prime-index record, until it either bottoms out at 1 (m is
// smooth) or hits a prime not covered by the table (m is not smooth).
func peel(pt *primetable.Table, top []uint32, m int64) ([]PP, bool) {
	var rec []PP
	q := m
	cur := top[q]
	var e uint8
	for top[q] != 0 {
		pi := top[q]
		if pi == cur {
			e++
		} else {
			if e > 0 {
				rec = append(rec, PP{Prime: int32(cur), Exp: e})
			}
			cur, e = pi, 1
		}
		q /= pt.P[pi]
	}
	if q != 1 {
		return nil, false
	}
	if e > 0 {
		rec = append(rec, PP{Prime: int32(cur), Exp: e})
	}
	return rec, true
}

func factorizationAt(arena []PP, off uint32) []PP {
	i := off
	for arena[i].Prime != 0 {
		i++
	}
	return arena[off:i]
}

// Factorization returns m's factorization record (excluding the zero
// terminator), or nil if m is not P_max-smooth (or m == 0).
func (s *Store) Factorization(m int64) []PP {
	if m < 0 || m > s.MaxM {
		return nil
	}
	off := s.M[m]
	if off == 0 && m != 1 {
		return nil
	}
	return factorizationAt(s.F, off)
}

// TopPrime returns the largest prime index dividing m's factorization, or 0
// if m is not smooth or m == 1.
func (s *Store) TopPrime(m int64) int32 {
	rec := s.Factorization(m)
	if len(rec) == 0 {
		return 0
	}
	return rec[0].Prime
}
