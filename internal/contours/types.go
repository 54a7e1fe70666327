package contours

import "errors"

// Sentinel errors for contour operations.
var (
	// ErrUnknownArrow indicates Prune was called with an arrow ID that was
	// never inserted (or already fully pruned) — an internal invariant
	// violation, since MatchPruner must only prune live arrows.
	ErrUnknownArrow = errors.New("contours: unknown or already-pruned arrow id")
)

// Pos is a point in whatever coordinate space the caller builds Contours
// over: raw (i, j) for CSH, or seeds.Seeds.Transform(i, j) for GCSH, or
// (i, 0) for SH's degenerate 1-D case.
type Pos struct {
	I, J int
}

// leq reports whether p is componentwise <= q — the chaining/dominance
// order every query and insertion is defined in terms of.
func (p Pos) leq(q Pos) bool { return p.I <= q.I && p.J <= q.J }

// geq reports whether p is componentwise >= q.
func (p Pos) geq(q Pos) bool { return p.I >= q.I && p.J >= q.J }

// Arrow is a match endpoint pair with an admissible score, carrying a
// caller-assigned ID so Prune can later be told "this specific arrow is
// gone" without the Contours structure needing to know about Match or
// seed identity.
type Arrow struct {
	ID         int
	Start, End Pos
	Score      int
}

// Hint is an opaque cursor returned by ScoreWithHint and fed back into the
// next query along the same monotone search frontier. The zero Hint means
// "no hint"; every Contours implementation must treat it as always valid
// (just slower), per spec.md §3's Hint invariant.
type Hint int

// Contours is the shared contract every layered-frontier implementation
// satisfies (spec.md §4.4).
type Contours interface {
	// Score returns the largest v such that some live arrow chain
	// reachable from pos accumulates total score v (0 if none).
	Score(pos Pos) int

	// ScoreWithHint behaves like Score but is accelerated by hint and
	// returns a fresh hint for the next query along the same frontier.
	// Must equal Score(pos) for any hint value.
	ScoreWithHint(pos Pos, hint Hint) (int, Hint)

	// Parent returns one arrow ID realizing Score(pos), and the layer
	// point that witnesses it. ok is false only when Score(pos) == 0 and
	// no arrow witnesses it (the implicit target layer).
	Parent(pos Pos) (score int, witness Pos, arrowID int, ok bool)

	// Prune marks the arrow with the given ID as no longer live and
	// removes its contribution to its layer. Returns whether the point it
	// justified was dominant (i.e. actually present as a boundary point)
	// and how many top layers collapsed as a result (0 if none).
	Prune(arrowID int) (wasDominant bool, layersCollapsed int, err error)

	// NumLayers reports the current number of non-implicit layers (layer
	// 0, the target, is never counted).
	NumLayers() int
}
