package domain

import "fmt"

// The error types below are the full failure taxonomy for loading and
// deriving display tables. They are never downgraded to NaN or zero-fill;
// the serving layer decides how to surface them per view.

// MissingFileError halts startup: a required input file is absent.
type MissingFileError struct {
	Path string
	Err  error
}

func (e MissingFileError) Error() string {
	return fmt.Sprintf("required input file missing: %s", e.Path)
}

func (e MissingFileError) Unwrap() error {
	return e.Err
}

// JoinMismatchError means a join key on one side had no match on the other.
// The affected view cannot render; the underlying tables stay untouched.
type JoinMismatchError struct {
	Key   string
	Left  string
	Right string
}

func (e JoinMismatchError) Error() string {
	return fmt.Sprintf("join mismatch: %s key %q has no match in %s", e.Left, e.Key, e.Right)
}

// InvariantError reports a declared data invariant violated beyond tolerance.
type InvariantError struct {
	Invariant string
	Detail    string
}

func (e InvariantError) Error() string {
	return fmt.Sprintf("invariant violated (%s): %s", e.Invariant, e.Detail)
}

// InsufficientDataError means a statistic is undefined on the given input,
// e.g. a correlation over fewer than two points or a zero-variance series.
type InsufficientDataError struct {
	Computation string
	Reason      string
}

func (e InsufficientDataError) Error() string {
	return fmt.Sprintf("%s undefined: %s", e.Computation, e.Reason)
}

// DuplicateCellError means two source rows mapped to the same pivot cell.
type DuplicateCellError struct {
	Row float64
	Col float64
}

func (e DuplicateCellError) Error() string {
	return fmt.Sprintf("pivot is ambiguous: multiple rows map to cell (%v, %v)", e.Row, e.Col)
}
