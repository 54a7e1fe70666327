package block

import "errors"

// W is the number of matrix rows packed into a single BitV word.
const W = 64

// ErrEmptyRange indicates a Block was asked to cover a zero-width range.
var ErrEmptyRange = errors.New("block: empty range")

// BitV is one W-row slice of vertical DP differences, encoded as two
// bitmasks: bit i of P means row i's delta is +1, bit i of M means -1, and
// a row with neither bit set has delta 0.
//
// Invariant: P & M == 0 (spec.md §3).
type BitV struct {
	P, M uint64
}

// Delta returns the net vertical difference encoded by v: popcount(P) -
// popcount(M).
func (v BitV) Delta() int {
	return popcount(v.P) - popcount(v.M)
}
