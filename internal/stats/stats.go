package stats

import "gonum.org/v1/gonum/stat"

// Stats accumulates counters for one alignment run. All fields are plain
// ints/slices; there is no synchronization because an Aligner (and
// therefore its Stats) is never shared across goroutines (spec.md §5).
type Stats struct {
	// SeedCount is the number of seeds built from a.
	SeedCount int
	// MatchCount is the number of matches found across all seeds.
	MatchCount int
	// PrunedMatches is the number of matches that transitioned out of
	// Active during the search.
	PrunedMatches int
	// LocalPrunedMatches is the number of matches dropped by the local
	// pruning pre-pass before search even began.
	LocalPrunedMatches int

	// Expanded is the number of A* nodes popped and expanded (not
	// counting greedy-extension cells).
	Expanded int
	// Extended is the number of cells advanced for free by greedy
	// diagonal extension.
	Extended int
	// Reordered counts nodes popped, found to have a stale f, and
	// re-pushed (A* core step 2).
	Reordered int

	// HQueries is the number of heuristic h()/h_with_hint() calls.
	HQueries int
	// probeDistances records, for each ScoreWithHint call, the absolute
	// distance between the supplied hint and the resulting fresh hint —
	// the raw material for HintLocality's mean/standard-deviation summary.
	probeDistances []float64

	// Guesses is a slot for band-doubling f* guesses. Nothing in this
	// module fills it; internal/nwdriver reports its guesses in its own
	// Result.Guesses.
	Guesses []int

	// BlocksComputed is a slot for a count of compute_block /
	// compute_block_simd invocations. The NW driver does not update it, so
	// it stays 0.
	BlocksComputed int
}

// RecordHintProbe records the distance between a supplied hint and the
// fresh hint returned alongside it, for later locality summaries.
func (s *Stats) RecordHintProbe(distance int) {
	if distance < 0 {
		distance = -distance
	}
	s.probeDistances = append(s.probeDistances, float64(distance))
}

// HintLocality reports the mean and standard deviation of recorded hint
// probe distances. Returns (0, 0) if no probes were recorded.
func (s *Stats) HintLocality() (mean, stddev float64) {
	if len(s.probeDistances) == 0 {
		return 0, 0
	}
	mean, stddev = stat.MeanStdDev(s.probeDistances, nil)
	return mean, stddev
}
