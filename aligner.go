package astarpa

import (
	"fmt"

	"github.com/katalvlaran/astarpa/internal/astarsearch"
	"github.com/katalvlaran/astarpa/internal/cigar"
	"github.com/katalvlaran/astarpa/internal/heuristic"
	"github.com/katalvlaran/astarpa/internal/stats"
	"github.com/katalvlaran/astarpa/internal/textsearch"
)

// Aligner is a reusable aligner that owns a validated Params and exposes
// the last run's Stats, mirroring the original astarpa.AstarPa object
// (SPEC_FULL.md §12): callers aligning many pairs under the same Params
// validate once at NewAligner instead of on every call.
type Aligner struct {
	params Params
	stats  stats.Stats
}

// NewAligner validates p and returns an Aligner bound to it.
func NewAligner(p Params) (*Aligner, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Aligner{params: p}, nil
}

// Align runs the A* core over (a, b) under the Aligner's Params, recording
// the run's Stats for a subsequent call to (*Aligner).Stats.
func (al *Aligner) Align(a, b []byte) (cost int, cigarStr string, err error) {
	if cost, cigarStr, ok := trivialEmptyAlignment(a, b); ok {
		al.stats = stats.Stats{}
		return cost, cigarStr, nil
	}

	h, err := heuristic.Build(a, b, al.params.toHeuristicConfig())
	if err != nil {
		return 0, "", fmt.Errorf("astarpa: %w", err)
	}

	result, ok := runSearch(a, b, h, al.params)
	if !ok {
		result = astarsearch.Run(a, b, h)
	}
	cigarStr = cigar.FromAstarTrace(len(a), len(b), result.Trace)
	if verr := cigar.Verify(a, b, cigarStr, result.Cost); verr != nil {
		panic(fmt.Sprintf("astarpa: %v", verr))
	}
	al.stats = *h.Stats()
	return result.Cost, cigarStr, nil
}

// Stats returns the counters recorded by the most recent Align call.
func (al *Aligner) Stats() stats.Stats {
	return al.stats
}

// Params returns the Aligner's bound configuration.
func (al *Aligner) Params() Params {
	return al.params
}

// SearchResult is the outcome of Search: every border cost a candidate
// occurrence of pattern in text could end at, plus enough state to
// reconstruct any one of them into a CIGAR via Trace.
type SearchResult struct {
	// CostsAlongBottomAndRight holds the DP value at each point along the
	// bottom row (pattern fully consumed) and the right column (text
	// fully consumed), per spec.md §6.
	CostsAlongBottomAndRight []textsearch.BorderCost

	pattern, text []byte
	inner         textsearch.Result
}

// Trace reconstructs the CIGAR for the occurrence ending at idx (one of
// the positions named in CostsAlongBottomAndRight).
func (r SearchResult) Trace(idx textsearch.Pos) string {
	ops := r.inner.Trace(idx, r.pattern, r.text)
	return cigar.RunLengthEncode(ops)
}

// Search aligns pattern against a free prefix/suffix of text: the
// alignment may start anywhere along text's top or left border at a cost
// of unmatchedCost per skipped character, rather than being pinned to
// (0, 0) (spec.md §6's single search-mode extension).
func Search(pattern, text []byte, unmatchedCost int) (SearchResult, error) {
	res, err := textsearch.Run(pattern, text, unmatchedCost)
	if err != nil {
		return SearchResult{}, err
	}
	return SearchResult{
		CostsAlongBottomAndRight: res.Border,
		pattern:                  pattern,
		text:                     text,
		inner:                    res,
	}, nil
}
