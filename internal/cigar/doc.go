// Package cigar builds and verifies run-length edit scripts over
// {=, X, I, D} (spec.md §4.8): from an astarsearch parent-pointer trace, or
// from a column-major nwdriver block sweep by re-deriving neighboring DP
// values. Verify replays a CIGAR against the two input strings under the
// unit cost model and is the last line of defense spec.md §7 calls for: a
// verification failure is a fatal programming bug, never a data error.
package cigar
