package astarpa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astarpa"
	"github.com/katalvlaran/astarpa/internal/reference"
)

// pairs long enough to seed with the default k=15 (each repeated a few
// times and lightly perturbed so a single r=2 seed spans real matches).
var pairs = []struct{ a, b string }{
	{"ACGTACGTACGTACGTACGTACGTACGTACGT", "ACGTACGTACGTACGTACGTACGTACGTACGT"},
	{"ACGTACGTACGTACGTACGTACGTACGTACGT", "ACGTACGTACGTTCGTACGTACGTACGTACGT"},
	{"ACGTACGTACGTACGTACGTACGTACGTACGT", "ACGTACGTACGTACGTACGTACGTACGTACG"},
}

func TestAstarPa_MatchesReferenceCost(t *testing.T) {
	for _, p := range pairs {
		want := reference.Cost([]byte(p.a), []byte(p.b))
		cost, cigarStr, err := astarpa.AstarPa([]byte(p.a), []byte(p.b))
		require.NoError(t, err)
		assert.Equal(t, want, cost, "a=%q b=%q", p.a, p.b)
		assert.NoError(t, verifyCigar(p.a, p.b, cigarStr, cost))
	}
}

func TestAstarPa2Full_MatchesReferenceCost(t *testing.T) {
	for _, p := range pairs {
		want := reference.Cost([]byte(p.a), []byte(p.b))
		cost, cigarStr, err := astarpa.AstarPa2Full([]byte(p.a), []byte(p.b))
		require.NoError(t, err)
		assert.Equal(t, want, cost)
		assert.NoError(t, verifyCigar(p.a, p.b, cigarStr, cost))
	}
}

func TestAstarPa2Simple_MatchesReferenceCost(t *testing.T) {
	for _, p := range pairs {
		want := reference.Cost([]byte(p.a), []byte(p.b))
		cost, cigarStr, err := astarpa.AstarPa2Simple([]byte(p.a), []byte(p.b))
		require.NoError(t, err)
		assert.Equal(t, want, cost)
		assert.NoError(t, verifyCigar(p.a, p.b, cigarStr, cost))
	}
}

func TestAstarPaGCSH_RejectsBadR(t *testing.T) {
	_, _, err := astarpa.AstarPaGCSH([]byte("ACGT"), []byte("ACGT"), 15, 3, astarpa.PruneStart)
	assert.Error(t, err)
}

func TestAlign_EmptySequences(t *testing.T) {
	cost, cigarStr, err := astarpa.Align(nil, []byte("ACGT"), astarpa.DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, 4, cost)
	assert.Equal(t, "4I", cigarStr)

	cost, cigarStr, err = astarpa.Align([]byte("ACGT"), nil, astarpa.DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, 4, cost)
	assert.Equal(t, "4D", cigarStr)

	cost, cigarStr, err = astarpa.Align(nil, nil, astarpa.DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, 0, cost)
	assert.Equal(t, "", cigarStr)
}

func TestAligner_ReusesParamsAcrossCalls(t *testing.T) {
	al, err := astarpa.NewAligner(astarpa.DefaultParams())
	require.NoError(t, err)

	for _, p := range pairs {
		want := reference.Cost([]byte(p.a), []byte(p.b))
		cost, _, err := al.Align([]byte(p.a), []byte(p.b))
		require.NoError(t, err)
		assert.Equal(t, want, cost)
		assert.NotZero(t, al.Stats().SeedCount)
	}
}

func TestNewAligner_RejectsBadParams(t *testing.T) {
	p := astarpa.DefaultParams()
	p.K = 0
	_, err := astarpa.NewAligner(p)
	assert.ErrorIs(t, err, astarpa.ErrBadParams)
}

func TestSearch_FindsPatternInsideText(t *testing.T) {
	pattern := []byte("CGTACG")
	text := []byte("TTTTTTCGTACGTTTTTT")

	res, err := astarpa.Search(pattern, text, 0)
	require.NoError(t, err)

	// (len(pattern), 0) also costs 0 (every pattern character skipped for
	// free), so the search is over bottom-row ends inside the text.
	best := res.CostsAlongBottomAndRight[len(text)]
	for _, bc := range res.CostsAlongBottomAndRight {
		if bc.Pos.I == len(pattern) && bc.Pos.J > 0 && bc.Cost < best.Cost {
			best = bc
		}
	}
	assert.Equal(t, 0, best.Cost)

	cigarStr := res.Trace(best.Pos)
	assert.Contains(t, cigarStr, "=")
}

func verifyCigar(a, b, cigarStr string, cost int) error {
	return astarpa.VerifyCigar([]byte(a), []byte(b), cigarStr, cost)
}
