// Package dtsearch implements the diagonal-transition (DT) variant of
// spec.md §4.6/§4.7: a furthest-reaching table keyed by (diagonal, g)
// with a per-g back-pointer, the classic Myers/Ukkonen O(ND) shape,
// gated by the same admissible heuristic used elsewhere (exploration of
// a diagonal at generation g is skipped once g + h(pos) exceeds the
// current f* guess), and iterated the same way internal/nwdriver iterates
// f*: attempt, and on failure to converge within budget, double and
// restart from scratch.
//
// Grounded on internal/localprune's existing per-diagonal furthest-reach
// front (extend/expand, itself grounded on
// _examples/other_examples/e4283a4a_shenwei356-wfa__wfa.go.go's furthest-
// reach table), generalized here from a lookahead survival check into a
// full search that reconstructs a trace: every (diagonal, g) table entry
// records which of the three edges produced it plus how many free
// diagonal matches followed, so a successful run can walk the table back
// to (0, 0) and emit real edit operations, not just a yes/no answer.
//
// DT is used when sequences are very similar (a small true edit cost):
// its per-generation work is proportional to the number of live diagonals
// at that generation, not to n*m, so it converges fast when g* is small
// and is abandoned (via maxG) when it is not, falling back to
// internal/astarsearch's plain A* core.
package dtsearch
