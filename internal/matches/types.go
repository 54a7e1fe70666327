package matches

import "errors"

// Sentinel errors for match finding.
var (
	// ErrBadConfig indicates an invalid MatchConfig (k<1, r outside {1,2}).
	ErrBadConfig = errors.New("matches: invalid config")

	// ErrEmptySequence indicates a or b is empty.
	ErrEmptySequence = errors.New("matches: sequence is empty")
)

// Status is the lifecycle state of a Match. Transitions are monotone:
// Active -> PrunedStart or Active -> PrunedEnd, never back.
type Status uint8

const (
	// Active matches are still live and contribute to the heuristic.
	Active Status = iota
	// PrunedStart means the match was pruned because the search passed
	// its start.
	PrunedStart
	// PrunedEnd means the match was pruned because the search passed its
	// end (only used under Prune::End / Prune::Both).
	PrunedEnd
)

// String implements fmt.Stringer for readable test failures.
func (s Status) String() string {
	switch s {
	case Active:
		return "Active"
	case PrunedStart:
		return "PrunedStart"
	case PrunedEnd:
		return "PrunedEnd"
	default:
		return "Unknown"
	}
}

// Match is an occurrence of a seed, possibly with up to r-1 errors, at some
// position in B.
//
// Invariant: End.I-Start.I and End.J-Start.J are both exactly k (Find
// returns exact and substitution-only occurrences, never indel ones); the
// substrings A[Start.I:End.I] and B[Start.J:End.J] are within Cost edits.
type Match struct {
	Start, End Pos
	Cost       int // match_cost, < r
	Potential  int // seed_potential (r) of the seed this match starts in
	SeedIdx    int
	Status     Status
}

// Pos is a point in the (A, B) edit matrix. Duplicated from seeds.Pos to
// keep this package import-light; matches.Pos and seeds.Pos are
// structurally identical and freely convertible.
type Pos struct {
	I, J int
}

// Arrow is the contour-facing view of a Match: the admissible potential
// drop (score = r - cost) granted by taking it.
type Arrow struct {
	Start, End Pos
	Score      int
}

// ToArrow derives the Arrow view of m.
func (m Match) ToArrow() Arrow {
	return Arrow{Start: m.Start, End: m.End, Score: m.Potential - m.Cost}
}

// Config configures match finding.
type Config struct {
	// K is the seed length (must agree with the Seeds the matches are
	// found for).
	K int

	// R is max seed cost + 1.
	R int

	// WindowFilter, when true, drops every match within a seed group that
	// another match of the group strictly dominates on (Cost, Start.J,
	// End.J), compared in raw coordinates; the gap-cost transform is not
	// applied.
	WindowFilter bool
}

// DefaultConfig returns the A*PA default: k=15, r=2, no window filter.
func DefaultConfig() Config {
	return Config{K: 15, R: 2, WindowFilter: false}
}

// Validate reports whether c is usable.
func (c Config) Validate() error {
	if c.K < 1 || (c.R != 1 && c.R != 2) {
		return ErrBadConfig
	}
	return nil
}
