package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tdunning/egs/internal/primetable"
	"github.com/tdunning/egs/internal/smooth"
)

func TestNewExponentsLegendre(t *testing.T) {
	pt := primetable.Build(20)
	ex := New(pt, 10, pt.MaxPI) // v_p(10!) for each table prime
	// v_2(10!) = 5+2+1 = 8, v_3(10!) = 3+1 = 4, v_5(10!) = 2, v_7(10!) = 1
	assert.Equal(t, int64(8), ex.E[pt.PI[2]])
	assert.Equal(t, int64(4), ex.E[pt.PI[3]])
	assert.Equal(t, int64(2), ex.E[pt.PI[5]])
	assert.Equal(t, int64(1), ex.E[pt.PI[7]])
}

func TestFcntCapsAtRequestedExponent(t *testing.T) {
	pt := primetable.Build(20)
	st := smooth.Build(pt, 50)
	ex := New(pt, 10, pt.MaxPI)
	f := st.Factorization(9) // 3^2
	// v_9(10!) = floor(v_3(10!)/2) = 2, but request only 1.
	assert.Equal(t, int64(1), ex.Fcnt(1, f))
	assert.Equal(t, int64(2), ex.Fcnt(100, f))
}

func TestFcntiMergesSharedPrime(t *testing.T) {
	pt := primetable.Build(20)
	st := smooth.Build(pt, 50)
	ex := New(pt, 10, pt.MaxPI)
	f := st.Factorization(9) // 3^2, top prime is 3
	pi3 := pt.PI[3]
	// fcnti(pi3, f) budgets 2+1=3 copies of 3 per factor 3*9=27 (E[3]=4), so floor(4/3)=1.
	assert.Equal(t, int64(1), ex.Fcnti(pi3, f))
}

func TestCDivFacSIsqrt(t *testing.T) {
	assert.Equal(t, int64(4), CDiv(10, 3))
	assert.Equal(t, int64(3), CDiv(9, 3))
	assert.Equal(t, int64(7), Isqrt(50))
	s := FacS(100)
	assert.True(t, s*(s-1) >= 100)
	assert.True(t, (s-1)*(s-2) < 100)
}
