// Package heuristic assembles Seeds, Matches and Contours into the small
// shared contract every A* search drives: H, HWithHint, Explore, Prune,
// IsSeedStartOrEnd, RootPotential and Stats (spec.md §4.5).
//
// Three variants share one implementation (heuristic.go) and differ only
// in which coordinate space their Contours is built over:
//
//   - SH projects every match onto its start row alone (J forced to 0) —
//     the cheapest, linear-memory variant.
//   - CSH keeps raw (i, j) match coordinates, respecting the chaining
//     order i1<=i2 && j1<=j2.
//   - GCSH runs every coordinate through seeds.Seeds.Transform first, so
//     the chaining order already bakes in the gap cost.
//
// Following spec.md §9's Design Notes ("Encode as a tagged variant... the
// common state is composed, not inherited"), Variant is a plain enum
// selecting which transform a single Heuristic struct applies, rather than
// three separate types or an interface hierarchy.
package heuristic
