package astarpa

import "errors"

// Sentinel errors returned by the public entry points. Internal invariant
// violations (stale-hint regressions, CIGAR verification failure, contour
// sort-order breakage) panic instead of returning an error, since they
// indicate a bug rather than a data problem (spec.md §7).
var (
	// ErrBadParams indicates an invalid Params value; see Params.Validate.
	ErrBadParams = errors.New("astarpa: invalid params")
)
