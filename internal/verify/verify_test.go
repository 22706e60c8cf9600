package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tdunning/egs/internal/primetable"
	"github.com/tdunning/egs/internal/smooth"
)

func TestVerifyEmptyLogLeavesLegendreValues(t *testing.T) {
	pt := primetable.Build(30)
	lg := NewLog(20, 8)
	cnt, err := Verify(pt, nil, 20, 8, lg)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), cnt)
}

func TestVerifyRejectsMalformedDescriptor(t *testing.T) {
	pt := primetable.Build(30)
	lg := NewLog(20, 8)
	lg.Extend(1, 1, nil, 10, 10, 1) // p == q is malformed
	_, err := Verify(pt, nil, 20, 8, lg)
	assert.Error(t, err)
}

func TestVerifyTailBlockMatchesDirectPrimeCount(t *testing.T) {
	// N=20, t=8: s=4 (3*2=6<8, 4*3=12>=8), maxpi=pi(3)=2 (primes 2,3).
	// Build the table small (PMax=3) so the (10,20] block is forced through
	// the large-block branch, exercising internal/primecount.
	pt := primetable.Build(3)
	st := smooth.Build(pt, 10)
	lg := NewLog(20, 8)
	lg.Extend(1, 1, nil, 10, 20, 4) // primes in (10,20]: 11,13,17,19 -> 4 primes
	cnt, err := Verify(pt, st, 20, 8, lg)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), cnt)
}
