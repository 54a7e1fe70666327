package matches

import (
	"sort"

	"github.com/katalvlaran/astarpa/internal/seeds"
)

// Find partitions a into seeds via seeds.Build(len(a), seeds.Config{K, R})
// and locates each seed's occurrences in b, choosing the exact q-gram index
// for r=1 and the error-tolerant trie for r=2, per spec.md §4.2.
//
// Returned matches are grouped by seed (SeedIdx ascending), and within each
// seed sorted by Cost ascending, then Start, then End. A seed with no
// matches is not an error: its Seeds.List[i].Cost stays at full Potential
// (seeds.Build's default).
func Find(a, b []byte, cfg Config) (*seeds.Seeds, []Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if len(a) == 0 || len(b) == 0 {
		return nil, nil, ErrEmptySequence
	}

	sds, err := seeds.Build(len(a), seeds.Config{K: cfg.K, R: cfg.R})
	if err != nil {
		return nil, nil, err
	}

	var all []Match
	maxErrors := cfg.R - 1

	var qidx *qgramIndex
	var t *trie
	if maxErrors == 0 {
		qidx = buildQGramIndex(b, cfg.K)
	} else {
		t = buildTrie(b, cfg.K)
	}

	for seedIdx := range sds.List {
		seed := &sds.List[seedIdx]
		pattern := a[seed.Start:seed.End]

		var group []Match
		if maxErrors == 0 {
			for _, j := range qidx.lookup(pattern) {
				group = append(group, Match{
					Start:     Pos{I: seed.Start, J: j},
					End:       Pos{I: seed.End, J: j + cfg.K},
					Cost:      0,
					Potential: seed.Potential,
					SeedIdx:   seedIdx,
				})
			}
		} else {
			for _, res := range t.searchWithErrors(pattern, maxErrors) {
				group = append(group, Match{
					Start:     Pos{I: seed.Start, J: res.start},
					End:       Pos{I: seed.End, J: res.end},
					Cost:      res.cost,
					Potential: seed.Potential,
					SeedIdx:   seedIdx,
				})
			}
		}

		if len(group) == 0 {
			continue // no match found; seed.Cost remains at full potential
		}

		sort.Slice(group, func(i, j int) bool {
			if group[i].Cost != group[j].Cost {
				return group[i].Cost < group[j].Cost
			}
			if group[i].Start != group[j].Start {
				return less(group[i].Start, group[j].Start)
			}
			return less(group[i].End, group[j].End)
		})

		if cfg.WindowFilter {
			group = filterDominant(group)
		}

		// The cheapest match found narrows this seed's cost bound.
		if group[0].Cost < seed.Cost {
			seed.Cost = group[0].Cost
		}

		all = append(all, group...)
	}

	return sds, all, nil
}

func less(p, q Pos) bool {
	if p.I != q.I {
		return p.I < q.I
	}
	return p.J < q.J
}

// filterDominant keeps only matches in group that are not strictly
// dominated by another match in the same group under the componentwise
// (Cost, Start.J, End.J) partial order in raw coordinates: a match
// dominates another sharing the same seed when its Cost, Start.J and End.J
// are all <=, with at least one strict.
//
// group is assumed sorted by (Cost asc, Start, End); this is the window
// filter referenced in spec.md §4.2.
func filterDominant(group []Match) []Match {
	kept := make([]Match, 0, len(group))
	for _, m := range group {
		dominated := false
		for _, k := range kept {
			if k.Cost <= m.Cost && k.Start.J <= m.Start.J && k.End.J <= m.End.J &&
				(k.Cost < m.Cost || k.Start.J < m.Start.J || k.End.J < m.End.J) {
				dominated = true
				break
			}
		}
		if !dominated {
			kept = append(kept, m)
		}
	}
	return kept
}
