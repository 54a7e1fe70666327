// Package seeds partitions sequence A into non-overlapping fixed-length
// seeds and derives the potential function used by every downstream
// heuristic (SH, CSH, GCSH).
//
// A seed covers [start, end) of A and carries a seed_potential — one more
// than the number of errors it is allowed to match with. potential(i) is
// the sum of seed_potential over all seeds starting at or after i; it is
// the admissible upper bound on unmatched seed errors from i to the end
// of A, and is the backbone of every h(u) query in this module.
//
// Grounded on _examples/original_source/pa-heuristic/src/seeds.rs, in the
// idiom of _examples/katalvlaran-lvlath/dtw (Options/DefaultOptions/Validate)
// and _examples/katalvlaran-lvlath/core (dense right-to-left sweeps over
// position-indexed slices).
package seeds
