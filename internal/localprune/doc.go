// Package localprune implements the local-pruning pre-pass (spec.md §4.3):
// for each candidate Match, run a small diagonal-transition search from the
// match's end and ask whether a best path through it can still reach the
// end of the p-th following seed within the potential budget available at
// the match's start. Matches that cannot are dropped before Contours is
// ever built, so the heuristic never has to discover their uselessness the
// hard way during search.
//
// Grounded on the diagonal-transition furthest-reach technique used by
// _examples/other_examples/e4283a4a_shenwei356-wfa__wfa.go.go (the WFA
// aligner's per-diagonal furthest-reach table) and spec.md §4.3's
// next_match_per_diag / potential-budget pruning rule.
package localprune
