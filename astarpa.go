package astarpa

import (
	"fmt"

	"github.com/katalvlaran/astarpa/internal/astarsearch"
	"github.com/katalvlaran/astarpa/internal/cigar"
	"github.com/katalvlaran/astarpa/internal/dtsearch"
	"github.com/katalvlaran/astarpa/internal/heuristic"
	"github.com/katalvlaran/astarpa/internal/nwdriver"
)

// AstarPa aligns a against b with astarpa's defaults: GCSH, k=15, r=2,
// prune-start (spec.md §6).
func AstarPa(a, b []byte) (cost int, cigarStr string, err error) {
	return Align(a, b, DefaultParams())
}

// AstarPaGCSH aligns a against b under GCSH with an explicit seed length,
// max seed cost, and prune mode (spec.md §6).
func AstarPaGCSH(a, b []byte, k, r int, prune PruneMode) (cost int, cigarStr string, err error) {
	p := DefaultParams()
	p.K, p.R, p.Prune, p.GapCost = k, r, prune, true
	return Align(a, b, p)
}

// AstarPa2Simple aligns a against b with the bitpacked A*PA2 driver using
// its simple preset: gap-cost start bound, no re-guessing (spec.md §6).
func AstarPa2Simple(a, b []byte) (cost int, cigarStr string, err error) {
	p := DefaultParams()
	p.Doubling, p.DoublingStart = DoublingNone, DoublingStartGap
	return alignBitpacked(a, b, p)
}

// AstarPa2Full aligns a against b with the bitpacked A*PA2 driver using its
// full preset: h(0,0) start bound, band doubling by a factor of 2
// (spec.md §6).
func AstarPa2Full(a, b []byte) (cost int, cigarStr string, err error) {
	return alignBitpacked(a, b, DefaultParams())
}

// Align runs the A* core over (a, b) under p, returning the exact edit
// cost and its CIGAR encoding. Empty inputs are accepted per spec.md §7:
// the result is |other| insertions or deletions, and the heuristic is
// never built.
//
// astarpa defaults to "DT on" (spec.md §6): when p.UseDT is set, Align
// first tries internal/dtsearch's diagonal-transition furthest-reach
// search, capped at p.MaxG generations, falling back to
// internal/astarsearch's plain bucket-queue A* if DT gives up without
// converging.
func Align(a, b []byte, p Params) (cost int, cigarStr string, err error) {
	if err := p.Validate(); err != nil {
		return 0, "", err
	}
	if cost, cigarStr, ok := trivialEmptyAlignment(a, b); ok {
		return cost, cigarStr, nil
	}

	h, err := heuristic.Build(a, b, p.toHeuristicConfig())
	if err != nil {
		return 0, "", fmt.Errorf("astarpa: %w", err)
	}

	result, ok := runSearch(a, b, h, p)
	if !ok {
		result = astarsearch.Run(a, b, h)
	}
	cigarStr = cigar.FromAstarTrace(len(a), len(b), result.Trace)
	if verr := cigar.Verify(a, b, cigarStr, result.Cost); verr != nil {
		panic(fmt.Sprintf("astarpa: %v", verr))
	}
	return result.Cost, cigarStr, nil
}

// runSearch attempts the DT variant when p.UseDT is set, reporting ok =
// false (and a zero Result) when DT is disabled or gave up — either way
// the caller falls back to astarsearch.Run against the same h.
func runSearch(a, b []byte, h *heuristic.Heuristic, p Params) (astarsearch.Result, bool) {
	if !p.UseDT {
		return astarsearch.Result{}, false
	}
	return dtsearch.Run(a, b, h, p.MaxG)
}

// alignBitpacked runs the bitpacked A*PA2 driver (internal/nwdriver) over
// (a, b) under p.
func alignBitpacked(a, b []byte, p Params) (cost int, cigarStr string, err error) {
	if err := p.Validate(); err != nil {
		return 0, "", err
	}
	if cost, cigarStr, ok := trivialEmptyAlignment(a, b); ok {
		return cost, cigarStr, nil
	}

	h, err := heuristic.Build(a, b, p.toHeuristicConfig())
	if err != nil {
		return 0, "", fmt.Errorf("astarpa: %w", err)
	}

	result, err := nwdriver.Run(a, b, h, p.toNWDriverConfig())
	if err != nil {
		return 0, "", fmt.Errorf("astarpa: %w", err)
	}
	cigarStr = result.Cigar
	if verr := cigar.Verify(a, b, cigarStr, result.Cost); verr != nil {
		panic(fmt.Sprintf("astarpa: %v", verr))
	}
	return result.Cost, cigarStr, nil
}

// VerifyCigar replays cigarStr against a and b under the unit cost model,
// checking it transforms a into b exactly at a total cost of cost. It is
// exposed so callers building their own CIGAR strings (e.g. from a custom
// Params-driven pipeline) can run the same check the core runs internally
// before trusting a result (spec.md §7).
func VerifyCigar(a, b []byte, cigarStr string, cost int) error {
	return cigar.Verify(a, b, cigarStr, cost)
}

// trivialEmptyAlignment handles the len(a)==0 or len(b)==0 edge case
// directly: the only optimal alignment is all insertions or all
// deletions, and building seeds/matches/contours over an empty sequence
// is undefined (internal/matches rejects it outright).
func trivialEmptyAlignment(a, b []byte) (cost int, cigarStr string, ok bool) {
	switch {
	case len(a) == 0 && len(b) == 0:
		return 0, "", true
	case len(a) == 0:
		return len(b), fmt.Sprintf("%dI", len(b)), true
	case len(b) == 0:
		return len(a), fmt.Sprintf("%dD", len(a)), true
	default:
		return 0, "", false
	}
}
