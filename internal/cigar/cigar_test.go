package cigar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astarpa/internal/astarsearch"
	"github.com/katalvlaran/astarpa/internal/cigar"
	"github.com/katalvlaran/astarpa/internal/heuristic"
	"github.com/katalvlaran/astarpa/internal/nwdriver"
)

func TestFromAstarTrace_IdenticalSequences(t *testing.T) {
	a, b := "ACTG", "ACTG"
	cfg := heuristic.DefaultConfig()
	cfg.Seeds.K = 2
	cfg.Match.K = 2
	h, err := heuristic.Build([]byte(a), []byte(b), cfg)
	require.NoError(t, err)
	res := astarsearch.Run([]byte(a), []byte(b), h)

	got := cigar.FromAstarTrace(len(a), len(b), res.Trace)
	assert.Equal(t, "4=", got)
	assert.NoError(t, cigar.Verify([]byte(a), []byte(b), got, res.Cost))
}

func TestFromAstarTrace_SingleDeletion(t *testing.T) {
	a, b := "AGTT", "AGT"
	cfg := heuristic.DefaultConfig()
	cfg.Seeds.K = 2
	cfg.Match.K = 2
	h, err := heuristic.Build([]byte(a), []byte(b), cfg)
	require.NoError(t, err)
	res := astarsearch.Run([]byte(a), []byte(b), h)

	got := cigar.FromAstarTrace(len(a), len(b), res.Trace)
	assert.NoError(t, cigar.Verify([]byte(a), []byte(b), got, res.Cost))
	assert.Equal(t, 1, res.Cost)
}

func TestFromBlocks_IdenticalSequences(t *testing.T) {
	a, b := []byte("ACTGACTG"), []byte("ACTGACTG")
	cfg := heuristic.DefaultConfig()
	cfg.Seeds.K = 2
	cfg.Match.K = 2
	h, err := heuristic.Build(a, b, cfg)
	require.NoError(t, err)

	nwCfg := nwdriver.DefaultConfig()
	nwCfg.Doubling = nwdriver.None
	res, err := nwdriver.Run(a, b, h, nwCfg)
	require.NoError(t, err)

	assert.NoError(t, cigar.Verify(a, b, res.Cigar, res.Cost))
}

func TestVerify_RejectsWrongCost(t *testing.T) {
	err := cigar.Verify([]byte("ACTG"), []byte("ACTG"), "4=", 1)
	assert.ErrorIs(t, err, cigar.ErrVerificationFailed)
}

func TestVerify_RejectsMismatchedMatchOp(t *testing.T) {
	err := cigar.Verify([]byte("ACTG"), []byte("ACTT"), "4=", 0)
	assert.ErrorIs(t, err, cigar.ErrVerificationFailed)
}

func TestVerify_AcceptsMatchesAndInsertion(t *testing.T) {
	// a="AGACGTCC" b="AGACGTCCA": 8 matches + 1 insertion
	err := cigar.Verify([]byte("AGACGTCC"), []byte("AGACGTCCA"), "8=1I", 1)
	assert.NoError(t, err)
}
