// Package stats collects the counters and timers threaded through a single
// alignment run: heuristic queries, prune events, A* expansions, and block
// computations. A Stats value is owned by one Aligner.Align call; it is
// never shared across goroutines.
//
// Mean/standard-deviation summaries of per-query hint-probe distances use
// gonum.org/v1/gonum/stat, following this module's domain-stack wiring
// (SPEC_FULL.md §11) rather than hand-rolling a running-mean accumulator.
package stats
