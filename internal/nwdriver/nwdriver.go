package nwdriver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/astarpa/internal/block"
	"github.com/katalvlaran/astarpa/internal/cigar"
	"github.com/katalvlaran/astarpa/internal/heuristic"
	"github.com/katalvlaran/astarpa/internal/seeds"
)

// ErrMaxGExceeded indicates the f* guess grew past cfg.MaxG without the
// band reaching (len(a), len(b)) at a cost the guess could certify — the
// caller's safety valve against a pathological pair, per spec.md §6's
// max_g parameter.
var ErrMaxGExceeded = errors.New("nwdriver: f* exceeded max_g without converging")

const bandInf = 1 << 30

// Result is the outcome of a completed driver run.
type Result struct {
	Cost int
	// Cigar is the run-length-encoded alignment, built internally from
	// whichever trace representation this run produced (block columns for
	// Doubling == None, a banded scalar matrix otherwise).
	Cigar string
	// Guesses records every f* guess attempted, in increasing order.
	Guesses []int
}

// Run computes the exact edit cost and CIGAR of a against b, framed as a
// band-doubling search over f* (spec.md §4.7): each attempt narrows every
// column's row range [lo(i), hi(i)] from both ends using h as an admissible
// lower bound, gated by f(target) <= f*, and doubles f* on failure.
//
// Doubling == None skips banding entirely and sweeps the full matrix once
// via internal/block's bit-packed kernel (astarpa2_simple's preset) —
// the one case where "uncapped" is the real, documented behavior rather
// than a shortcut.
func Run(a, b []byte, h *heuristic.Heuristic, cfg Config) (Result, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return trivialResult(n, m), nil
	}

	if cfg.Doubling == None {
		blocks, err := computeFull(a, b)
		if err != nil {
			return Result{}, err
		}
		cost := blocks[n].Index(m)
		return Result{Cost: cost, Cigar: cigar.FromBlocks(a, b, blocks), Guesses: []int{cost}}, nil
	}

	fStar := firstGuess(cfg, h, n, m)
	if fStar < 0 {
		fStar = 0
	}

	guesses := make([]int, 0, 8)
	for {
		if cfg.MaxG > 0 && fStar > cfg.MaxG {
			return Result{}, fmt.Errorf("%w: f*=%d max_g=%d", ErrMaxGExceeded, fStar, cfg.MaxG)
		}
		guesses = append(guesses, fStar)

		dp, los, his, ok := attemptBand(a, b, h, fStar, cfg.SparseH)
		if ok {
			cost := dp[n][m-los[n]]
			if cost <= fStar {
				ops := tracebackBand(a, b, dp, los, his)
				return Result{Cost: cost, Cigar: cigar.RunLengthEncode(ops), Guesses: guesses}, nil
			}
		}
		fStar = nextGuess(fStar, cfg)
	}
}

// trivialResult handles the len(a) == 0 or len(b) == 0 edge case directly:
// the only optimal alignment is all insertions or all deletions, and no
// Block or band computation is needed (or, for Block's NewColumnZero,
// possible — it rejects an empty j-range).
func trivialResult(n, m int) Result {
	switch {
	case n == 0 && m == 0:
		return Result{Cost: 0, Cigar: "", Guesses: []int{0}}
	case n == 0:
		return Result{Cost: m, Cigar: fmt.Sprintf("%dI", m), Guesses: []int{m}}
	default: // m == 0
		return Result{Cost: n, Cigar: fmt.Sprintf("%dD", n), Guesses: []int{n}}
	}
}

// computeFull sweeps column i=0..len(a), returning every column's Block.
func computeFull(a, b []byte) ([]*block.Block, error) {
	m := len(b)
	profile := chooseProfile(a, b)

	col0, err := block.NewColumnZero(0, m)
	if err != nil {
		return nil, err
	}
	blocks := make([]*block.Block, len(a)+1)
	blocks[0] = col0

	for i := 0; i < len(a); i++ {
		eq := profile.EqWords(a[i])
		blocks[i+1] = blocks[i].Advance(i+1, eq, 1, 0)
	}
	return blocks, nil
}

func chooseProfile(a, b []byte) block.Profile {
	for _, c := range a {
		if !block.IsACGT(c) {
			return block.NewScatterProfile(b)
		}
	}
	for _, c := range b {
		if !block.IsACGT(c) {
			return block.NewScatterProfile(b)
		}
	}
	return block.NewBitProfile(b)
}

// rowBound is the admissible lower bound on the cost of any path from
// (0, 0) through (i, j) to (n, m): the gap cost |i-j| to reach (i, j) at
// all, plus h's admissible estimate of what remains from there.
func rowBound(h *heuristic.Heuristic, i, j int) int {
	d := i - j
	if d < 0 {
		d = -d
	}
	return d + h.H(seeds.Pos{I: i, J: j})
}

// computeRange finds [lo, hi] (inclusive), the widest row window at column
// i admissible under fStar: narrowed from both ends by rowBound, per
// spec.md §4.7's start_j(i)/end_j(i). ok is false if no j at this column
// satisfies the bound, meaning this attempt cannot certify a path through
// column i at all.
func computeRange(h *heuristic.Heuristic, i, fStar, n, m int) (lo, hi int, ok bool) {
	loCand := i - fStar
	if loCand < 0 {
		loCand = 0
	}
	hiCand := i + fStar
	if hiCand > m {
		hiCand = m
	}
	if loCand > hiCand {
		return 0, 0, false
	}

	lo, hi = -1, -1
	for j := loCand; j <= hiCand; j++ {
		if rowBound(h, i, j) <= fStar {
			if lo == -1 {
				lo = j
			}
			hi = j
		}
	}
	if lo == -1 {
		return 0, 0, false
	}
	return lo, hi, true
}

// gapRange is the gap-cost-only envelope at column i: the widest window
// rowBound could ever allow, since h is non-negative and so |i-j| <=
// fStar is implied by, and always at least as wide as, |i-j| + h(i,j) <=
// fStar. Used between sparse_h's periodic exact refreshes so that
// skipping h entirely can only widen the band, never narrow it past what
// the exact computation would have allowed (spec.md §4.7's sparse_h).
func gapRange(i, fStar, m int) (lo, hi int, ok bool) {
	lo = i - fStar
	if lo < 0 {
		lo = 0
	}
	hi = i + fStar
	if hi > m {
		hi = m
	}
	if lo > hi {
		return 0, 0, false
	}
	return lo, hi, true
}

// sparseHInterval is how many columns a sparse_h attempt goes between exact
// heuristic recomputations.
const sparseHInterval = 8

// attemptBand sweeps columns 0..len(a), narrowing each column's row range
// via computeRange (or the cheaper, always-safe gapRange between periodic
// refreshes, when sparseH is set), and filling a scalar DP matrix banded
// to those ranges.
// Cells outside the band stand in as bandInf when a neighbor references
// them — sound because rowBound is an admissible lower bound, so excluding
// a cell cannot exclude one on any path of true cost <= fStar (spec.md §8).
//
// ok is false if any column's range came back empty, or if the final
// column's range does not cover len(b) — either way this fStar cannot be
// certified and the caller must grow it and retry from scratch.
func attemptBand(a, b []byte, h *heuristic.Heuristic, fStar int, sparseH bool) (dp [][]int, los, his []int, ok bool) {
	n, m := len(a), len(b)
	los = make([]int, n+1)
	his = make([]int, n+1)
	dp = make([][]int, n+1)

	lo0, hi0, ok0 := computeRange(h, 0, fStar, n, m)
	if !ok0 {
		return nil, nil, nil, false
	}
	los[0], his[0] = lo0, hi0
	row0 := make([]int, hi0-lo0+1)
	for j := lo0; j <= hi0; j++ {
		row0[j-lo0] = j
	}
	dp[0] = row0

	for i := 1; i <= n; i++ {
		refresh := !sparseH || i%sparseHInterval == 0 || i == n
		var lo, hi int
		var rangeOK bool
		if refresh {
			lo, hi, rangeOK = computeRange(h, i, fStar, n, m)
		} else {
			lo, hi, rangeOK = gapRange(i, fStar, m)
		}
		if !rangeOK {
			return nil, nil, nil, false
		}
		los[i], his[i] = lo, hi

		row := make([]int, hi-lo+1)
		prevLo, prevHi := los[i-1], his[i-1]
		prevRow := dp[i-1]
		prevAt := func(j int) int {
			if j < prevLo || j > prevHi {
				return bandInf
			}
			return prevRow[j-prevLo]
		}

		for j := lo; j <= hi; j++ {
			if j == 0 {
				row[0] = i // column 0 of any row is always i deletions
				continue
			}
			left := bandInf
			if j-1 >= lo {
				left = row[j-1-lo] + 1
			}
			up := prevAt(j)
			if up < bandInf {
				up++
			}
			diag := prevAt(j - 1)
			if diag < bandInf && a[i-1] != b[j-1] {
				diag++
			}
			best := left
			if up < best {
				best = up
			}
			if diag < best {
				best = diag
			}
			row[j-lo] = best
		}
		dp[i] = row
	}

	if m < los[n] || m > his[n] {
		return nil, nil, nil, false
	}
	return dp, los, his, true
}

// tracebackBand walks a successful attempt's banded matrix backward from
// (len(a), len(b)) to (0, 0), classifying each step by which neighboring
// cell relation holds, mirroring cigar.FromBlocks's unbanded traceback.
func tracebackBand(a, b []byte, dp [][]int, los, his []int) []byte {
	i, j := len(a), len(b)
	ops := make([]byte, 0, len(a)+len(b))

	at := func(ii, jj int) (int, bool) {
		if ii < 0 || ii >= len(dp) {
			return 0, false
		}
		lo, hi := los[ii], his[ii]
		if jj < lo || jj > hi {
			return 0, false
		}
		return dp[ii][jj-lo], true
	}

	for i > 0 || j > 0 {
		cur, _ := at(i, j)
		diagV, diagOK := at(i-1, j-1)
		upV, upOK := at(i-1, j)
		leftV, leftOK := at(i, j-1)

		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1] && diagOK && diagV == cur:
			ops = append(ops, '=')
			i--
			j--
		case i > 0 && j > 0 && diagOK && diagV+1 == cur:
			ops = append(ops, 'X')
			i--
			j--
		case i > 0 && upOK && upV+1 == cur:
			ops = append(ops, 'D')
			i--
		case j > 0 && leftOK && leftV+1 == cur:
			ops = append(ops, 'I')
			j--
		default:
			panic(fmt.Sprintf("nwdriver: banded trace inconsistent at (%d,%d)", i, j))
		}
	}

	reverse(ops)
	return ops
}

func reverse(bs []byte) {
	for i, j := 0, len(bs)-1; i < j; i, j = i+1, j-1 {
		bs[i], bs[j] = bs[j], bs[i]
	}
}

func firstGuess(cfg Config, h *heuristic.Heuristic, n, m int) int {
	switch cfg.Start {
	case Zero:
		return 0
	case Gap:
		return abs(n - m)
	default: // H0
		return h.H(seeds.Pos{I: 0, J: 0})
	}
}

func nextGuess(g int, cfg Config) int {
	switch cfg.Doubling {
	case LinearSearch:
		if cfg.Delta <= 0 {
			return g + 1
		}
		return g + cfg.Delta
	default: // BandDoubling, LocalDoubling
		factor := cfg.Factor
		if factor <= 1.0 {
			factor = 2.0
		}
		next := int(float64(g) * factor)
		if next <= g {
			next = g + 1
		}
		return next
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
