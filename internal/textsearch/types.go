package textsearch

import "errors"

// ErrBadUnmatchedCost indicates a negative unmatchedCost was supplied.
var ErrBadUnmatchedCost = errors.New("textsearch: unmatchedCost must be >= 0")

// Pos is a point in the edit matrix of pattern (rows) against text
// (columns).
type Pos struct {
	I, J int
}

// BorderCost is the DP value at one point along the bottom row or right
// column of the matrix: a candidate end position for an approximate
// occurrence of pattern in text, and its cost.
type BorderCost struct {
	Pos  Pos
	Cost int
}

// Result is the outcome of a completed search.
type Result struct {
	// Border holds one BorderCost per point along the bottom row
	// (i == len(pattern), j == 0..len(text)) followed by the right
	// column (j == len(text), i == 0..len(pattern)-1, the corner already
	// counted by the bottom row).
	Border []BorderCost

	dp [][]int
}
