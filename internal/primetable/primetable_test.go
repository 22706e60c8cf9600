package primetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSmallPrimes(t *testing.T) {
	tab := Build(30)
	want := []int64{1, 2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	assert.Equal(t, want, tab.P)
	assert.EqualValues(t, len(want)-1, tab.MaxPI)
}

func TestPiMatchesKnownValues(t *testing.T) {
	tab := Build(100)
	cases := map[int64]int32{0: 0, 1: 0, 2: 1, 3: 2, 10: 4, 97: 25, 100: 25}
	for x, want := range cases {
		assert.Equal(t, want, tab.Pi(x), "pi(%d)", x)
	}
}

func TestPiOutOfRangePanics(t *testing.T) {
	tab := Build(10)
	assert.Panics(t, func() { tab.Pi(11) })
}
