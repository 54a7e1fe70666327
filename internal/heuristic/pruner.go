package heuristic

import "github.com/katalvlaran/astarpa/internal/matches"

// matchPruner enforces PruneMode: which boundary (start, end, both, or
// neither) of a match triggers its removal once the search passes it.
//
// Grounded on spec.md §4.5's "Each façade owns a MatchPruner... enforces
// skip-prune ratios and start-vs-end status" — this implementation keeps
// the status bookkeeping and drops the skip-ratio heuristic (an
// optimization that trades a few redundant prune calls for fewer contour
// mutations; correctness does not depend on it; see DESIGN.md).
type matchPruner struct {
	mode PruneMode
}

func newMatchPruner(mode PruneMode) *matchPruner {
	return &matchPruner{mode: mode}
}

// trigger reports whether position i, reached as the search frontier
// advances, should prune match m, and under which status.
func (p *matchPruner) trigger(m matches.Match, i int) (bool, matches.Status) {
	if m.Status != matches.Active {
		return false, m.Status
	}
	switch p.mode {
	case PruneStart:
		if i == m.Start.I {
			return true, matches.PrunedStart
		}
	case PruneEnd:
		if i == m.End.I {
			return true, matches.PrunedEnd
		}
	case PruneBoth:
		if i == m.Start.I {
			return true, matches.PrunedStart
		}
		if i == m.End.I {
			return true, matches.PrunedEnd
		}
	case PruneNone:
	}
	return false, matches.Active
}
