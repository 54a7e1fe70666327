// Package contours implements the layered Pareto frontier that backs every
// h(u) query: given a set of live Arrows (match endpoints with scores),
// Score(pos) returns the largest v such that some live arrow chain
// reachable from pos accumulates total score v.
//
// score(·) is monotone non-increasing under the componentwise order (a
// smaller, "earlier" pos can reach at least as much as a larger one), so
// the region {u : score(u) >= v} is downward-closed for every v. Each
// layer therefore stores only its Pareto-MAXIMAL boundary points — an
// antichain sorted by ascending I with strictly descending J — and a query
// succeeds against a layer by checking just the boundary point with the
// smallest I that is still >= pos.I, following
// _examples/original_source/pa-heuristic/src/contour/sh_contours.rs and
// pa-heuristic/src/contour/rotate_to_front.rs.
//
// Two implementations share the Contours contract:
//   - BruteForce: a recursive oracle, memoized until the next Prune, used
//     only in tests, grounded on spec.md §4.4's "brute force" reference.
//   - Sorted: the production implementation (binary search per layer,
//     hint-accelerated).
//
// In the idiom of _examples/katalvlaran-lvlath/matrix (several
// interchangeable Dense/sparse representations behind one contract, picked
// by the caller rather than by a runtime type switch).
package contours
