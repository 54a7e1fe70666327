package heuristic

import (
	"github.com/katalvlaran/astarpa/internal/contours"
	"github.com/katalvlaran/astarpa/internal/localprune"
	"github.com/katalvlaran/astarpa/internal/matches"
	"github.com/katalvlaran/astarpa/internal/seeds"
	"github.com/katalvlaran/astarpa/internal/stats"
)

// Heuristic is the assembled h(u) oracle for one (a, b) pair. It owns its
// Seeds, Matches, and Contours, and composes a MatchPruner rather than
// inheriting from any of them (spec.md §9).
type Heuristic struct {
	seeds   *seeds.Seeds
	matches []matches.Match
	frontier contours.Contours
	pruner  *matchPruner
	variant Variant

	maxExploredI int
	stats        stats.Stats
}

// Build constructs a Heuristic over (a, b): partitions a into seeds, finds
// their matches in b, runs the local-pruning pre-pass, and assembles the
// Contours frontier in the coordinate space cfg.Variant calls for.
func Build(a, b []byte, cfg Config) (*Heuristic, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sds, ms, err := matches.Find(a, b, cfg.Match)
	if err != nil {
		return nil, err
	}
	found := len(ms)
	ms = localprune.Filter(a, b, sds, ms, cfg.Local)

	h := &Heuristic{
		seeds:   sds,
		matches: ms,
		variant: cfg.Variant,
		pruner:  newMatchPruner(cfg.Prune),

		maxExploredI: -1,
	}
	h.stats.SeedCount = len(sds.List)
	h.stats.MatchCount = len(ms)
	h.stats.LocalPrunedMatches = found - len(ms)

	arrows := make([]contours.Arrow, 0, len(ms))
	for id, m := range ms {
		if m.Status != matches.Active {
			continue
		}
		start := h.toContourPos(seeds.Pos{I: m.Start.I, J: m.Start.J})
		end := h.toContourPos(seeds.Pos{I: m.End.I, J: m.End.J})
		arrows = append(arrows, contours.Arrow{
			ID:    id,
			Start: start,
			End:   end,
			Score: m.Potential - m.Cost,
		})
	}
	h.frontier = contours.New(arrows)

	return h, nil
}

// toContourPos applies the variant's coordinate transform: SH projects onto
// the row alone, CSH keeps raw (i, j), GCSH runs seeds.Transform first.
func (h *Heuristic) toContourPos(p seeds.Pos) contours.Pos {
	switch h.variant {
	case SH:
		return contours.Pos{I: p.I, J: 0}
	case GCSH:
		t := h.seeds.Transform(p)
		return contours.Pos{I: t.I, J: t.J}
	default: // CSH
		return contours.Pos{I: p.I, J: p.J}
	}
}

// H returns the admissible lower bound on the remaining edit cost from pos.
func (h *Heuristic) H(pos seeds.Pos) int {
	h.stats.HQueries++
	return h.seeds.Potential(pos.I) - h.frontier.Score(h.toContourPos(pos))
}

// HWithHint behaves like H but is accelerated by hint, returning a fresh
// hint for the next query along the same search frontier.
func (h *Heuristic) HWithHint(pos seeds.Pos, hint contours.Hint) (int, contours.Hint) {
	h.stats.HQueries++
	score, newHint := h.frontier.ScoreWithHint(h.toContourPos(pos), hint)
	h.stats.RecordHintProbe(int(newHint) - int(hint))
	return h.seeds.Potential(pos.I) - score, newHint
}

// IsSeedStartOrEnd reports whether i is a seed boundary in A — the A* core
// gates prune calls on this (spec.md §4.6 step 5).
func (h *Heuristic) IsSeedStartOrEnd(i int) bool {
	return h.seeds.IsSeedStartOrEnd(i)
}

// RootPotential is potential(0): the admissible h value at the root when no
// matches have been found yet, and the f* that internal/dtsearch starts
// from.
func (h *Heuristic) RootPotential() int {
	return h.seeds.Potential(0)
}

// Stats returns the accumulated counters for this heuristic instance.
func (h *Heuristic) Stats() *stats.Stats {
	return &h.stats
}

// Explore records that the search has expanded pos, advancing the
// high-water mark that gates Prune — h may only decrease at positions the
// search has already left behind (spec.md §4.5).
func (h *Heuristic) Explore(pos seeds.Pos) {
	if pos.I > h.maxExploredI {
		h.maxExploredI = pos.I
	}
}

// Prune is called when the search passes a seed boundary at i. It asks the
// MatchPruner which matches starting or ending at i (per the configured
// PruneMode) are eligible, and removes their contribution from the
// Contours frontier.
func (h *Heuristic) Prune(i int) {
	if i > h.maxExploredI {
		// Admissibility requires h to only decrease behind the search
		// frontier; refuse to prune ahead of it.
		return
	}
	for id := range h.matches {
		m := &h.matches[id]
		trigger, status := h.pruner.trigger(*m, i)
		if !trigger {
			continue
		}
		if _, _, err := h.frontier.Prune(id); err == nil {
			h.stats.PrunedMatches++
		}
		m.Status = status
	}
}
