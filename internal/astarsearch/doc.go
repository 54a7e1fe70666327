// Package astarsearch implements the best-first core of spec.md §4.6: a
// bucket priority queue keyed by f = g + h, LIFO within a bucket, greedy
// diagonal extension on every pop, and termination when (n, m) is popped.
// This is the plain-DP-node A* path; the diagonal-transition variant
// (spec.md §4.6/§4.7) lives in internal/dtsearch and is tried first by
// the root package's Align when Params.UseDT is set, falling back here
// when DT does not converge within budget.
//
// Grounded on the bucket-queue-plus-greedy-extension shape described in
// spec.md §4.6 and on the furthest-reach bookkeeping of
// _examples/other_examples/e4283a4a_shenwei356-wfa__wfa.go.go, adapted
// from a diagonal-transition table to an explicit parent-pointer trace.
package astarsearch
