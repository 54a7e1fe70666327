// Package block implements the bitpacked Myers-style NW kernel of spec.md
// §4.7: a column-major, W-row-at-a-time computation of vertical DP deltas
// encoded as (p, m) bitmasks (BitV), advanced one column at a time by the
// 20-bit-op compute_block recipe.
//
// Grounded on the classical Myers bit-vector edit-distance trick as shown
// in _examples/other_examples/8466401b_Sumatoshi-tech-codefang__pkg-levenshtein-myers.go.go,
// generalized from a single 64-bit pattern word to an arbitrary number of
// W-row slices stacked to cover a whole column, per spec.md §4.7's exact
// op sequence.
//
// Two profiles turn a byte alphabet into the eq bitmask compute_block
// needs: ScatterProfile (one lookup table per byte value of B) and
// BitProfile (two XORs and an AND, no memory indirection); IsACGT, which
// uses github.com/biogo/biogo/alphabet's DNA alphabet, tells which of the
// two an input can use. DetectLanes reports the SIMD
// lane width compute_block_simd should target on the running CPU, via
// github.com/klauspost/cpuid/v2.
package block
