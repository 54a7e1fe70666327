// Package reference is an independent, deliberately simple O(nm) edit
// distance oracle used only by tests (spec.md §8's "independent reference"
// correctness property): a plain Wagner-Fischer DP with no seeds, no
// heuristic, no bitpacking. Nothing in the production alignment path
// imports this package.
package reference
