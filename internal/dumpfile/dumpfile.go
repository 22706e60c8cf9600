// Package dumpfile reads and writes the diagnostic "n,m,p,q" factorization
// dump: one line per descriptor, purely for offline inspection and
// round-trip verification.
package dumpfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tdunning/egs/internal/smooth"
	"github.com/tdunning/egs/internal/verify"
)

// Record is one dumped line: mult identical factors of the form m*p for
// each prime p in the interval (p, q].
type Record struct {
	Mult int64
	M    int64
	P    int64
	Q    int64
}

// Write emits one line per descriptor in lg.
func Write(w io.Writer, lg *verify.Log) error {
	bw := bufio.NewWriter(w)
	for _, d := range lg.Items {
		if _, err := fmt.Fprintf(bw, "%d,%d,%d,%d\n", d.Mult, d.M, d.P, d.Q); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read parses the dump grammar back into Records, in file order. This is
// new relative to the write-only dump format: it lets a factorization
// certificate be persisted and later replayed without rerunning the engine.
func Read(r io.Reader) ([]Record, error) {
	var out []Record
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != 4 {
			return nil, fmt.Errorf("dumpfile: malformed line %q", line)
		}
		var vals [4]int64
		for i, p := range parts {
			v, err := strconv.ParseInt(p, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("dumpfile: malformed line %q: %w", line, err)
			}
			vals[i] = v
		}
		out = append(out, Record{Mult: vals[0], M: vals[1], P: vals[2], Q: vals[3]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ToLog reconstructs a replayable verify.Log from dumped records, looking up
// each record's cofactor factorization in st. The dump grammar has no field
// for the descriptor's prime count c; verify.Verify recomputes prime counts
// from (p, q] itself, so that field is not needed to replay the log.
func ToLog(st *smooth.Store, n, t int64, records []Record) (*verify.Log, error) {
	lg := verify.NewLog(n, t)
	for _, r := range records {
		f := st.Factorization(r.M)
		if f == nil && r.M != 1 {
			return nil, fmt.Errorf("dumpfile: cofactor %d has no stored factorization", r.M)
		}
		lg.Extend(r.Mult, r.M, f, r.P, r.Q, 1)
	}
	return lg, nil
}
