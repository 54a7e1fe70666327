package astarpa

import (
	"fmt"

	"github.com/katalvlaran/astarpa/internal/block"
	"github.com/katalvlaran/astarpa/internal/heuristic"
	"github.com/katalvlaran/astarpa/internal/localprune"
	"github.com/katalvlaran/astarpa/internal/matches"
	"github.com/katalvlaran/astarpa/internal/nwdriver"
	"github.com/katalvlaran/astarpa/internal/seeds"
)

// PruneMode controls which end(s) of a match trigger a prune once the
// search passes over it. Re-exported from internal/heuristic so callers
// never need to import an internal package.
type PruneMode = heuristic.PruneMode

const (
	PruneNone  = heuristic.PruneNone
	PruneStart = heuristic.PruneStart
	PruneEnd   = heuristic.PruneEnd
	PruneBoth  = heuristic.PruneBoth
)

// DoublingType selects how the f* guess grows between A*PA2 attempts.
// Re-exported from internal/nwdriver.
type DoublingType = nwdriver.DoublingType

const (
	DoublingNone         = nwdriver.None
	DoublingBand         = nwdriver.BandDoubling
	DoublingLinearSearch = nwdriver.LinearSearch
	DoublingLocal        = nwdriver.LocalDoubling
)

// DoublingStart selects where the first f* guess comes from.
type DoublingStart = nwdriver.DoublingStart

const (
	DoublingStartZero = nwdriver.Zero
	DoublingStartGap  = nwdriver.Gap
	DoublingStartH0   = nwdriver.H0
)

// Params collects every tunable spec.md §6 names, following lvlath's
// pattern of a flat option struct with a DefaultX constructor and a
// Validate method gating construction rather than panicking on bad input.
type Params struct {
	// K is the seed length (>= 1).
	K int
	// R is max seed cost + 1 (1 or 2).
	R int
	// Prune selects which match ends trigger a frontier prune.
	Prune PruneMode
	// LocalPruning is the diagonal-transition lookahead budget p (>= 0);
	// 0 disables the local-pruning pre-pass.
	LocalPruning int
	// GapCost selects GCSH's gap-cost coordinate transform (true) over
	// CSH's raw (i, j) contour space (false).
	GapCost bool
	// UseDT selects the diagonal-transition variant (internal/dtsearch)
	// as Align's first attempt, falling back to internal/astarsearch's
	// plain A* core if DT does not converge within MaxG generations.
	// astarpa's default has this on (spec.md §6); AstarPa2Simple/Full
	// bypass it entirely since they run the bitpacked driver instead.
	UseDT bool
	// BlockWidth is the bit-parallel word width the A*PA2 driver packs
	// its columns into. The kernel is fixed at internal/block.W (64, the
	// machine word size Myers' algorithm bit-packs into); any other value
	// is rejected by Validate rather than silently resized.
	BlockWidth int
	// Doubling selects the A*PA2 band-doubling policy.
	Doubling DoublingType
	// DoublingStart selects the first f* guess's source.
	DoublingStart DoublingStart
	// DoublingFactor multiplies the guess each round under BandDoubling.
	DoublingFactor float64
	// DoublingDelta is added to the guess each round under LinearSearch.
	DoublingDelta int
	// SparseH enables internal/nwdriver's sparse_h amortization: most
	// columns take their row range from the gap-cost envelope |i-j| <= f*
	// alone instead of recomputing h's tighter bound every column.
	SparseH bool
	// MaxG caps the diagonal-transition furthest-reach search
	// (internal/dtsearch) at this many generations before giving up and
	// falling back to plain A*; 0 means uncapped.
	MaxG int
}

// DefaultParams returns astarpa's defaults: GCSH, k=15, r=2, prune-start,
// no local pruning, bit-packed driver disabled by default (the free
// functions pick their own driver presets; toNWDriverConfig is only
// consulted by AstarPa2-backed entry points).
func DefaultParams() Params {
	return Params{
		K:              15,
		R:              2,
		Prune:          PruneStart,
		LocalPruning:   0,
		GapCost:        true,
		UseDT:          true,
		BlockWidth:     block.W,
		Doubling:       DoublingBand,
		DoublingStart:  DoublingStartH0,
		DoublingFactor: 2.0,
		SparseH:        false,
		MaxG:           0,
	}
}

// Validate reports whether p describes a usable configuration. K and R go
// through seeds.Config's own Validate; BlockWidth, LocalPruning and MaxG
// are checked here directly.
func (p Params) Validate() error {
	if err := p.toSeedsConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrBadParams, err)
	}
	if p.BlockWidth != block.W {
		return fmt.Errorf("%w: block_width must be %d", ErrBadParams, block.W)
	}
	if p.LocalPruning < 0 {
		return fmt.Errorf("%w: local_pruning must be >= 0", ErrBadParams)
	}
	if p.MaxG < 0 {
		return fmt.Errorf("%w: max_g must be >= 0", ErrBadParams)
	}
	return nil
}

func (p Params) toSeedsConfig() seeds.Config {
	return seeds.Config{K: p.K, R: p.R}
}

func (p Params) toMatchConfig() matches.Config {
	return matches.Config{K: p.K, R: p.R, WindowFilter: false}
}

func (p Params) toLocalConfig() localprune.Config {
	return localprune.Config{P: p.LocalPruning}
}

func (p Params) variant() heuristic.Variant {
	if !p.GapCost {
		return heuristic.CSH
	}
	return heuristic.GCSH
}

func (p Params) toHeuristicConfig() heuristic.Config {
	return heuristic.Config{
		Seeds:   p.toSeedsConfig(),
		Match:   p.toMatchConfig(),
		Local:   p.toLocalConfig(),
		Variant: p.variant(),
		Prune:   p.Prune,
	}
}

func (p Params) toNWDriverConfig() nwdriver.Config {
	return nwdriver.Config{
		Start:    p.DoublingStart,
		Doubling: p.Doubling,
		Factor:   p.DoublingFactor,
		Delta:    p.DoublingDelta,
		SparseH:  p.SparseH,
		MaxG:     p.MaxG,
	}
}
