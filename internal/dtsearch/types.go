package dtsearch

import "github.com/katalvlaran/astarpa/internal/astarsearch"

// entry is one (diagonal, g) table cell: the furthest row reached, which
// of the three edges produced it (from the predecessor generation's
// fromDiag), and how many free diagonal matches were appended after that
// edge by greedy extension.
type entry struct {
	i         int
	fromDiag  int
	op        astarsearch.Op
	extendLen int
}
