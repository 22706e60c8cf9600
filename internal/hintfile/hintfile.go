// Package hintfile reads and writes the "N:t" hint format: a checkpoint
// list of certified lower bounds that lets a later run resume a range scan
// without re-deriving bounds it already proved, and lets an independent
// party re-verify a claimed range cheaply.
package hintfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tdunning/egs/internal/engine"
	"github.com/tdunning/egs/internal/primetable"
	"github.com/tdunning/egs/internal/search"
	"github.com/tdunning/egs/internal/smooth"
)

// Record is one certified line: N and a t the engine proved gives at least
// N factors of N! each >= t.
type Record struct {
	N, T int64
}

// GapError reports two consecutive hints whose N values leave a gap that
// b/a extrapolation cannot bridge: the next hint's N exceeds
// floor(b*prevT/a)+1, one past the largest N the previous line's t still
// certifies.
type GapError struct {
	PrevN, PrevT, NextN int64
	A, B                int
}

func (e *GapError) Error() string {
	return fmt.Sprintf("hintfile: gap between N=%d (t=%d) and N=%d: covers only up to N=%d at ratio %d/%d",
		e.PrevN, e.PrevT, e.NextN, e.PrevT*int64(e.B)/int64(e.A), e.A, e.B)
}

// RegressionError reports a hint whose N did not strictly increase.
type RegressionError struct {
	PrevN, N int64
}

func (e *RegressionError) Error() string {
	return fmt.Sprintf("hintfile: N did not strictly increase: %d then %d", e.PrevN, e.N)
}

// UnderCoverageError reports that the file's certified range does not reach
// the requested maxN.
type UnderCoverageError struct {
	CoveredTo, WantN int64
}

func (e *UnderCoverageError) Error() string {
	return fmt.Sprintf("hintfile: covers up to N=%d, short of the requested N=%d", e.CoveredTo, e.WantN)
}

// Read parses "N:t" lines, one per record, skipping blank lines.
func Read(r io.Reader) ([]Record, error) {
	var recs []Record
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("hintfile: malformed line %q", line)
		}
		n, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("hintfile: bad N in %q: %w", line, err)
		}
		t, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("hintfile: bad t in %q: %w", line, err)
		}
		recs = append(recs, Record{N: n, T: t})
	}
	return recs, sc.Err()
}

// Write emits recs as "N:t" lines.
func Write(w io.Writer, recs []Record) error {
	for _, r := range recs {
		if _, err := fmt.Fprintf(w, "%d:%d\n", r.N, r.T); err != nil {
			return err
		}
	}
	return nil
}

// Create scans [minN, maxN] calling search.Bound at each step it advances
// to, writing one "N:t" line per certified bound. Once a bound t is found
// for N, every N' <= floor(b*t/a) is covered by that same line, so the
// scan jumps ahead to floor(b*t/a)+1 instead of calling search.Bound at
// every N; a/b is the domain envelope ratio the caller is bounding t within
// (e.g. 1/3, the command line's default).
func Create(w io.Writer, pt *primetable.Table, st *smooth.Store, minN, maxN int64, a, b int, cfg engine.Config) (int64, error) {
	n := minN
	var last int64
	for n <= maxN {
		t, err := search.Bound(pt, st, n, a, b, cfg)
		if err != nil {
			return last, err
		}
		if _, err := fmt.Fprintf(w, "%d:%d\n", n, t); err != nil {
			return last, err
		}
		last = n
		covered := t*int64(b)/int64(a) + 1
		if covered <= n {
			return last, fmt.Errorf("hintfile: t=%d at N=%d does not even cover N itself at ratio %d/%d", t, n, a, b)
		}
		n = covered
	}
	return last, nil
}

// Verify re-checks a hint stream: every record's t must be independently
// re-provable by the engine, N must strictly increase, and consecutive
// records must not leave a gap the b/a ratio can't bridge. It returns the
// largest N the file certifies coverage up to, and an error if that falls
// short of maxN or any record fails its own re-check.
func Verify(r io.Reader, pt *primetable.Table, st *smooth.Store, minN, maxN int64, a, b int, cfg engine.Config) (int64, error) {
	recs, err := Read(r)
	if err != nil {
		return 0, err
	}
	if len(recs) == 0 {
		return 0, &UnderCoverageError{CoveredTo: 0, WantN: maxN}
	}

	var coveredTo int64
	prevN := int64(-1)
	for i, rec := range recs {
		if rec.N <= prevN {
			return coveredTo, &RegressionError{PrevN: prevN, N: rec.N}
		}
		if i > 0 && rec.N > coveredTo+1 {
			return coveredTo, &GapError{PrevN: recs[i-1].N, PrevT: recs[i-1].T, NextN: rec.N, A: a, B: b}
		}
		if rec.N < minN {
			prevN = rec.N
			continue
		}
		res, err := engine.Run(pt, st, rec.N, rec.T, cfg)
		if err != nil {
			return coveredTo, fmt.Errorf("hintfile: record N=%d t=%d failed re-verification: %w", rec.N, rec.T, err)
		}
		if res.Count < rec.N {
			return coveredTo, fmt.Errorf("hintfile: record N=%d t=%d only proves %d factors", rec.N, rec.T, res.Count)
		}
		coveredTo = rec.T * int64(b) / int64(a)
		prevN = rec.N
	}

	if coveredTo < maxN {
		return coveredTo, &UnderCoverageError{CoveredTo: coveredTo, WantN: maxN}
	}
	return coveredTo, nil
}
