// Package matcherr defines the sentinel error kinds shared across the
// matching engine, so callers can branch with errors.Is regardless of which
// package produced the error.
package matcherr

import "errors"

var (
	// ErrInvalidArgument marks a caller error: unknown mode, empty word on
	// add, threshold outside [0,1], negative max_results or max_distance.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIOFailure marks a confusion-matrix file that is present but
	// unreadable or malformed, fatal at matcher construction.
	ErrIOFailure = errors.New("io failure")
)
