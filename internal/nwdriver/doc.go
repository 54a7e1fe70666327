// Package nwdriver implements the band-doubling driver of spec.md §4.7: a
// sequence of increasing f* guesses, each attempting to certify the exact
// edit cost by sweeping only the rows an admissible heuristic says could
// possibly lie on a path of cost <= f*.
//
// Each attempt computes, for every column i, a row range [start_j(i),
// end_j(i)] narrowed from both ends by the admissible bound |i-j| + h(i,
// j) <= f* (spec.md §4.7's fixed_j_range), then fills a scalar DP matrix
// banded to those ranges — a cell outside the band stands in as +inf when
// referenced by an in-band neighbor, which is sound precisely because the
// bound is admissible (spec.md §8). If the attempt's final column does
// not cover len(b), or comes back with a cost exceeding f*, the guess is
// too small: f* grows (Config.Doubling) and the whole attempt restarts
// from scratch, per the real driver's exponential_search shape
// (_examples/original_source/astarpa2/src/band.rs).
//
// This banded scalar sweep is deliberately not expressed over
// internal/block's bit-packed kernel: Block.Advance's carry model
// (topHp/topHm) only supports a column whose row range starts at row 0
// and never moves, since it encodes the value entering the top of the
// range as a ±1/0 delta from a known predecessor rather than as an
// absolute value — see DESIGN.md for why extending it to a sliding band
// was judged too risky to hand-write without compiling. Doubling == None
// (astarpa2_simple) sidesteps the whole question by running
// internal/block's full, unbanded bit-packed sweep once, uncapped — a
// real code path in its own right, not a stand-in for the others.
package nwdriver
