package localprune

import (
	"sort"

	"github.com/katalvlaran/astarpa/internal/matches"
	"github.com/katalvlaran/astarpa/internal/seeds"
)

// Filter returns the subset of ms that survive the local-pruning pre-pass.
// Order is preserved. If cfg.P == 0, ms is returned unchanged.
func Filter(a, b []byte, sds *seeds.Seeds, ms []matches.Match, cfg Config) []matches.Match {
	if cfg.P == 0 || len(ms) == 0 {
		return ms
	}

	nextMatchPerDiag := buildNextMatchPerDiag(ms)

	kept := make([]matches.Match, 0, len(ms))
	for _, m := range ms {
		if survives(a, b, sds, m, cfg.P, nextMatchPerDiag) {
			kept = append(kept, m)
		}
	}
	return kept
}

// diagOf returns the diagonal (i-j) of a position.
func diagOf(i, j int) int { return i - j }

// buildNextMatchPerDiag indexes, for each diagonal, the sorted row
// coordinates at which some match starts on it — used to terminate a
// diagonal's search early when it runs into another live match.
func buildNextMatchPerDiag(ms []matches.Match) map[int][]int {
	byDiag := make(map[int][]int)
	for _, m := range ms {
		d := diagOf(m.Start.I, m.Start.J)
		byDiag[d] = append(byDiag[d], m.Start.I)
	}
	for d := range byDiag {
		sort.Ints(byDiag[d])
	}
	return byDiag
}

// hitsLiveMatch reports whether extending diagonal d from row from to row
// to landed on or passed another match's start on the same diagonal.
func hitsLiveMatch(nextMatchPerDiag map[int][]int, d, from, to int) bool {
	starts := nextMatchPerDiag[d]
	idx := sort.SearchInts(starts, from)
	return idx < len(starts) && starts[idx] <= to
}

// targetRow returns the row in A that the p-th seed following m's own
// seed ends at, clamped to the end of A.
func targetRow(sds *seeds.Seeds, seedIdx, p int) int {
	target := seedIdx + p
	if target >= len(sds.List) {
		return sds.N()
	}
	return sds.List[target].End
}

// survives runs a bounded diagonal-transition search from m.End and reports
// whether it can reach targetRow (or another live match) before the
// potential budget available at m.Start is exhausted.
func survives(a, b []byte, sds *seeds.Seeds, m matches.Match, p int, nextMatchPerDiag map[int][]int) bool {
	target := targetRow(sds, m.SeedIdx, p)
	if m.End.I >= target {
		return true
	}
	budget := sds.Potential(m.Start.I)

	front := map[int]int{diagOf(m.End.I, m.End.J): m.End.I}
	g := m.Cost

	const maxRounds = 1 << 20 // generous safety cap; real fronts close far sooner
	for round := 0; round < maxRounds; round++ {
		for d, i := range front {
			j := i - d
			fi, fj := extend(a, b, i, j)
			front[d] = fi
			if fi >= target || hitsLiveMatch(nextMatchPerDiag, d, i, fi) {
				return true
			}
			_ = fj
		}

		// Prune diagonals that can no longer afford the remaining
		// potential budget from their current reach.
		for d, i := range front {
			if g+sds.Potential(i) > budget {
				delete(front, d)
			}
		}
		if len(front) == 0 {
			return false
		}

		g++
		front = expand(front)
	}
	return false
}

// extend greedily advances (i, j) along a single diagonal while the
// characters match, comparing one character pair at a time (the real
// bit-parallel kernel lives in internal/block; this pre-pass only needs the
// same semantics, not its throughput).
func extend(a, b []byte, i, j int) (int, int) {
	for i < len(a) && j < len(b) && a[i] == b[j] {
		i++
		j++
	}
	return i, j
}

// expand grows the diagonal front by one edit step: substitution keeps the
// diagonal and advances by one row, deletion from A advances the row and
// raises the diagonal i-j by one, insertion into A advances the column and
// lowers it by one.
func expand(front map[int]int) map[int]int {
	next := make(map[int]int, len(front)*3)
	grow := func(d, i int) {
		if cur, ok := next[d]; !ok || i > cur {
			next[d] = i
		}
	}
	for d, i := range front {
		grow(d, i+1)   // substitution
		grow(d+1, i+1) // deletion from A (row advances, diagonal rises)
		grow(d-1, i)   // insertion into A (column advances, diagonal drops)
	}
	return next
}
