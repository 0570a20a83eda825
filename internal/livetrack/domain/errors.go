package livetrack

import "errors"

// Configuration errors raised when building an OperatingWindow. Evaluation
// itself never fails; a malformed window must not survive construction.
var (
	ErrWindowBoundsOutOfRange = errors.New("livetrack: window bounds outside 00:00-23:59")
	ErrWindowNotAscending     = errors.New("livetrack: window start must precede end")
	ErrIntervalNotPositive    = errors.New("livetrack: refresh interval must be positive")
)
