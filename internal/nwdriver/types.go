package nwdriver

// DoublingStart selects where the first f* guess comes from.
type DoublingStart int

const (
	// Zero starts guessing from f* = 0.
	Zero DoublingStart = iota
	// Gap starts from the trivial gap-cost lower bound |len(a)-len(b)|.
	Gap
	// H0 starts from the heuristic's root value h(0,0) — astarpa2's
	// default, since h(0,0) is already an admissible lower bound on cost.
	H0
)

// DoublingType selects how the f* guess grows between attempts.
type DoublingType int

const (
	// None runs the DP once, uncapped, and reports its exact cost as the
	// only "guess".
	None DoublingType = iota
	// BandDoubling multiplies the guess by Factor each round (phi ≈ 2 for
	// O(ng) kernels, phi ≈ sqrt(2) for O(g^2) kernels, spec.md §4.7).
	BandDoubling
	// LinearSearch adds Delta to the guess each round.
	LinearSearch
	// LocalDoubling is run identically to BandDoubling (both already
	// narrow each column's row range from h); no separate per-column local
	// bound is tracked.
	LocalDoubling
)

// Config configures the band-doubling driver.
type Config struct {
	Start    DoublingStart
	Doubling DoublingType
	Factor   float64 // used by BandDoubling
	Delta    int     // used by LinearSearch
	SparseH  bool
	MaxG     int
}

// DefaultConfig returns astarpa2_full's defaults: start from h(0,0),
// double the guess by a factor of 2 each round.
func DefaultConfig() Config {
	return Config{Start: H0, Doubling: BandDoubling, Factor: 2.0}
}

// SimpleConfig returns astarpa2_simple's defaults: start from the gap cost,
// run the DP once uncapped (no re-guessing).
func SimpleConfig() Config {
	return Config{Start: Gap, Doubling: None}
}
