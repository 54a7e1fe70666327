package matches_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astarpa/internal/matches"
)

func TestFind_ExactSeedsFindThemselves(t *testing.T) {
	a := []byte("ACTGACTGACTG")
	b := []byte("ACTGACTGACTG")

	sds, ms, err := matches.Find(a, b, matches.Config{K: 4, R: 1})
	require.NoError(t, err)
	require.Len(t, sds.List, 3)
	require.NotEmpty(t, ms)

	// Every seed should find its exact diagonal match (cost 0) at j == i.
	for _, m := range ms {
		if m.Start.I == m.Start.J {
			assert.Equal(t, 0, m.Cost)
		}
	}
}

func TestFind_InexactAllowsOneSubstitution(t *testing.T) {
	a := []byte("ACTGACTG")
	b := []byte("ACTTACTG") // 4th base substituted in the first 4-mer window

	sds, ms, err := matches.Find(a, b, matches.Config{K: 4, R: 2})
	require.NoError(t, err)
	require.Len(t, sds.List, 2)

	var found bool
	for _, m := range ms {
		if m.SeedIdx == 0 && m.Start.J == 0 && m.Cost == 1 {
			found = true
		}
	}
	assert.True(t, found, "expected a cost-1 match for the first seed at j=0, got %+v", ms)
}

func TestFind_NoMatchIsNotAnError(t *testing.T) {
	a := []byte("AAAAAAAA")
	b := []byte("TTTTTTTT")

	sds, _, err := matches.Find(a, b, matches.Config{K: 4, R: 1})
	require.NoError(t, err)
	for _, s := range sds.List {
		assert.Equal(t, s.Potential, s.Cost, "seed with no match should keep full potential as its cost")
	}
}

func TestFind_GroupedAndSortedBySeedThenCost(t *testing.T) {
	a := []byte("ACTGACTGACTG")
	b := []byte("ACTGACTGACTGACTGACTG")

	_, ms, err := matches.Find(a, b, matches.Config{K: 4, R: 1})
	require.NoError(t, err)

	for i := 1; i < len(ms); i++ {
		if ms[i].SeedIdx == ms[i-1].SeedIdx {
			assert.GreaterOrEqual(t, ms[i].Cost, ms[i-1].Cost)
		} else {
			assert.GreaterOrEqual(t, ms[i].SeedIdx, ms[i-1].SeedIdx)
		}
	}
}

func TestFind_RejectsBadConfig(t *testing.T) {
	_, _, err := matches.Find([]byte("ACGT"), []byte("ACGT"), matches.Config{K: 0, R: 1})
	assert.ErrorIs(t, err, matches.ErrBadConfig)
}

func TestMatch_ToArrowScore(t *testing.T) {
	m := matches.Match{Potential: 2, Cost: 1}
	assert.Equal(t, 1, m.ToArrow().Score)
}
