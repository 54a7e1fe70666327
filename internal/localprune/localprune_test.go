package localprune_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astarpa/internal/localprune"
	"github.com/katalvlaran/astarpa/internal/matches"
	"github.com/katalvlaran/astarpa/internal/seeds"
)

func TestFilter_DisabledIsNoOp(t *testing.T) {
	ms := []matches.Match{{Start: matches.Pos{I: 0, J: 0}, End: matches.Pos{I: 4, J: 4}}}
	out := localprune.Filter([]byte("ACTG"), []byte("ACTG"), nil, ms, localprune.DefaultConfig())
	assert.Equal(t, ms, out)
}

func TestFilter_KeepsMatchesThatReachLookaheadSeed(t *testing.T) {
	a := []byte("ACTGACTGACTG")
	b := []byte("ACTGACTGACTG")
	sds, ms, err := matches.Find(a, b, matches.Config{K: 4, R: 1})
	require.NoError(t, err)
	require.NotEmpty(t, ms)

	out := localprune.Filter(a, b, sds, ms, localprune.Config{P: 1})
	assert.NotEmpty(t, out, "identical sequences should keep exact matches under local pruning")
}

func TestFilter_DropsMatchesLeadingIntoNoise(t *testing.T) {
	// b diverges heavily right after the first seed's match; a match into
	// that region should not survive a p=2 lookahead.
	a := []byte("ACTGACTGACTGACTG")
	b := []byte("ACTGTTTTTTTTTTTT")
	sds, ms, err := matches.Find(a, b, matches.Config{K: 4, R: 1})
	require.NoError(t, err)

	out := localprune.Filter(a, b, sds, ms, localprune.Config{P: 2})
	assert.Less(t, len(out), len(ms))
}

func TestConfig_Validate(t *testing.T) {
	assert.ErrorIs(t, localprune.Config{P: -1}.Validate(), localprune.ErrBadP)
	assert.NoError(t, localprune.DefaultConfig().Validate())
}

func TestSeedsBuild_SplitsTwelveIntoThreeSeeds(t *testing.T) {
	sds, err := seeds.Build(12, seeds.Config{K: 4, R: 1})
	require.NoError(t, err)
	require.Len(t, sds.List, 3)
}
