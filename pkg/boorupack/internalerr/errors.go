package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrUnknownRating      = errors.New("unknown rating code")
	ErrAmbiguousDuplicate = errors.New("hash appears in multiple duplicate groups")
	ErrNoFixedPoint       = errors.New("implication closure did not converge")
)
