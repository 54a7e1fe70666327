// Package astarpa computes globally-optimal pairwise sequence alignments.
//
// It implements A*PA (seed-and-match admissible heuristics driving an A*
// search over the edit matrix) and A*PA2 (the same heuristics driving a
// bitpacked Myers-style Needleman-Wunsch engine under exponential band
// doubling). Both report the exact edit cost and a run-length CIGAR string
// over {=, X, I, D}.
//
// The four free functions below cover the common cases; Aligner is for
// callers aligning many pairs under the same Params, since it validates
// its configuration once rather than on every call.
package astarpa
