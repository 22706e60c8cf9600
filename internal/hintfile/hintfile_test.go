package hintfile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdunning/egs/internal/engine"
)

func TestWriteReadRoundTrip(t *testing.T) {
	recs := []Record{{N: 100, T: 40}, {N: 200, T: 81}}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, recs))
	assert.Equal(t, "100:40\n200:81\n", buf.String())

	got, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, recs, got)
}

func TestReadSkipsBlankLinesAndRejectsMalformed(t *testing.T) {
	recs, err := Read(strings.NewReader("100:40\n\n200:81\n"))
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	_, err = Read(strings.NewReader("not-a-record"))
	assert.Error(t, err)
}

func TestCreateThenVerifyRoundTrip(t *testing.T) {
	tabs := engine.Setup(4000, engine.Fast)
	cfg := engine.Config{Variant: engine.Fast, Cutoff: engine.DefaultCutoff}

	var buf bytes.Buffer
	last, err := Create(&buf, tabs.PT, tabs.ST, 2000, 3200, 1, 3, cfg)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, last, int64(2000))

	coveredTo, err := Verify(bytes.NewReader(buf.Bytes()), tabs.PT, tabs.ST, 2000, 3200, 1, 3, cfg)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, coveredTo, int64(3200))
}

func TestVerifyDetectsRegression(t *testing.T) {
	tabs := engine.Setup(4000, engine.Fast)
	cfg := engine.Config{Variant: engine.Fast, Cutoff: engine.DefaultCutoff}
	in := strings.NewReader("2000:600\n1900:610\n")
	_, err := Verify(in, tabs.PT, tabs.ST, 2000, 3000, 1, 3, cfg)
	assert.Error(t, err)
	var regr *RegressionError
	assert.ErrorAs(t, err, &regr)
}

func TestVerifyDetectsGap(t *testing.T) {
	tabs := engine.Setup(4000, engine.Fast)
	cfg := engine.Config{Variant: engine.Fast, Cutoff: engine.DefaultCutoff}
	// Second record's N is far beyond what the first record's t can cover.
	in := strings.NewReader("2000:600\n3900:1300\n")
	_, err := Verify(in, tabs.PT, tabs.ST, 2000, 4000, 1, 3, cfg)
	assert.Error(t, err)
	var gap *GapError
	assert.ErrorAs(t, err, &gap)
}

func TestVerifyDetectsFabricatedBound(t *testing.T) {
	tabs := engine.Setup(4000, engine.Fast)
	cfg := engine.Config{Variant: engine.Fast, Cutoff: engine.DefaultCutoff}
	in := strings.NewReader("2000:999\n") // implausibly high t for N=2000
	_, err := Verify(in, tabs.PT, tabs.ST, 2000, 2000, 1, 3, cfg)
	assert.Error(t, err)
}

func TestVerifyDetectsUnderCoverage(t *testing.T) {
	tabs := engine.Setup(4000, engine.Fast)
	cfg := engine.Config{Variant: engine.Fast, Cutoff: engine.DefaultCutoff}
	in := strings.NewReader("2000:600\n")
	_, err := Verify(in, tabs.PT, tabs.ST, 2000, 100000, 1, 3, cfg)
	assert.Error(t, err)
	var under *UnderCoverageError
	assert.ErrorAs(t, err, &under)
}

// TestBatchScenarioAcrossOrdersOfMagnitude exercises the batch/hint-file
// scenario across three orders of magnitude, ratio 1/3, fast variant: every
// N the created file names must be independently re-derivable, and the file
// must be strictly monotone and gap-free end to end. A literal N up to
// 10^12 run needs tables sized for that N (pMax and the smooth-number table
// both scale with N) that are impractical to build inside a unit test; this
// covers the same monotonicity/contiguity/re-derivation properties at a
// scale that stays minutes-bounded.
func TestBatchScenarioAcrossOrdersOfMagnitude(t *testing.T) {
	if testing.Short() {
		t.Skip("builds a table sized for N up to 10^9; skipped under -short")
	}
	tabs := engine.Setup(1000000000, engine.Fast)
	cfg := engine.Config{Variant: engine.Fast, Cutoff: engine.DefaultCutoff}

	var buf bytes.Buffer
	last, err := Create(&buf, tabs.PT, tabs.ST, 100000, 1000000000, 1, 3, cfg)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, last, int64(1000000000))

	coveredTo, err := Verify(bytes.NewReader(buf.Bytes()), tabs.PT, tabs.ST, 100000, 1000000000, 1, 3, cfg)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, coveredTo, int64(1000000000))
}
