package servertab

import "errors"

var (
	// ErrInvariantViolation is returned when a drag interaction is fed state
	// from which no drop target can be derived, e.g. a malformed drag payload.
	ErrInvariantViolation = errors.New("invariant violation")
	// ErrIllegalState is returned when a lifecycle operation is invoked on a
	// destroyed tab.
	ErrIllegalState = errors.New("illegal state")
)
