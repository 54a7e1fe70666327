package cigar

import "errors"

// ErrVerificationFailed indicates a CIGAR does not transform a into b under
// the unit cost model, or its accumulated op cost does not match the
// claimed cost. Per spec.md §7, this is an internal invariant violation —
// a programmer error, not a data error — because it means the search or
// the trace it was built from silently computed a wrong answer.
var ErrVerificationFailed = errors.New("cigar: verification failed")
