package primecount

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPiKnownValues(t *testing.T) {
	cases := map[int64]int64{
		0: 0, 1: 0, 2: 1, 10: 4, 100: 25, 1000: 168, 10000: 1229, 100000: 9592,
	}
	for x, want := range cases {
		assert.Equal(t, want, Pi(x), "pi(%d)", x)
	}
}

func TestPiMatchesBruteForceSieve(t *testing.T) {
	n := int64(50000)
	composite := make([]bool, n+1)
	count := int64(0)
	for i := int64(2); i <= n; i++ {
		if composite[i] {
			continue
		}
		count++
		for j := i * i; j <= n; j += i {
			composite[j] = true
		}
	}
	assert.Equal(t, count, Pi(n))
}
