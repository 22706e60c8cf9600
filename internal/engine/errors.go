package engine

import "fmt"

// ErrDomain reports an (N, t) pair outside the domain envelope: rejected
// before any table lookup or allocation.
type ErrDomain struct {
	Msg string
}

func (e *ErrDomain) Error() string { return "engine: domain violation: " + e.Msg }

// ErrResourceBound reports that a run needs a larger P_max or M_max than
// the tables passed to Run were built for. The standard variant runs out of
// headroom well before the fast variant does; the caller should retry with
// Fast.
type ErrResourceBound struct {
	Msg string
}

func (e *ErrResourceBound) Error() string { return "engine: resource bound exceeded: " + e.Msg }

// InvariantError marks a fatal programming error: a residual exponent went
// negative, or a constructed factor fell below t. Run recovers these at its
// own boundary and returns them as an error so library callers can decide
// what to do, but the underlying condition always indicates a bug rather
// than bad input.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string { return "engine: invariant violated: " + e.Msg }

func invariant(format string, args ...any) {
	panic(&InvariantError{Msg: fmt.Sprintf(format, args...)})
}
