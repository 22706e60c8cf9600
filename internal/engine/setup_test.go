package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupTablesCoverTheRequestedRange(t *testing.T) {
	tabs := Setup(10000, Fast)
	maxT := int64(2 * 10000 / 5)
	assert.GreaterOrEqual(t, tabs.PT.PMax, valuationFacSForTest(maxT))
}

// valuationFacSForTest mirrors valuation.FacS locally so this test doesn't
// need to reach past the engine package boundary for a one-line check.
func valuationFacSForTest(t int64) int64 {
	s := int64(1)
	for s*(s-1) < t {
		s++
	}
	return s
}

func TestSetupStandardVsFastTableSizing(t *testing.T) {
	std := Setup(2000, Standard)
	fast := Setup(2000, Fast)
	assert.Less(t, fast.ST.MaxM, std.ST.MaxM, "fast variant's smooth table should be much smaller than standard's")
}
