package astarsearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astarpa/internal/astarsearch"
	"github.com/katalvlaran/astarpa/internal/heuristic"
)

func run(t *testing.T, a, b string) astarsearch.Result {
	t.Helper()
	cfg := heuristic.DefaultConfig()
	cfg.Seeds.K = 4
	cfg.Match.K = 4
	h, err := heuristic.Build([]byte(a), []byte(b), cfg)
	require.NoError(t, err)
	return astarsearch.Run([]byte(a), []byte(b), h)
}

func TestRun_IdenticalSequencesCostZero(t *testing.T) {
	res := run(t, "ACTGACTGACTG", "ACTGACTGACTG")
	assert.Equal(t, 0, res.Cost)
}

func TestRun_SingleSubstitution(t *testing.T) {
	res := run(t, "ACTGACTGACTG", "ACTGTCTGACTG")
	assert.Equal(t, 1, res.Cost)
}

func TestRun_SingleInsertion(t *testing.T) {
	res := run(t, "ACTGACTGACTG", "ACTGACTGACTGA")
	assert.Equal(t, 1, res.Cost)
}

func TestRun_SingleDeletion(t *testing.T) {
	res := run(t, "ACTGACTGACTGA", "ACTGACTGACTG")
	assert.Equal(t, 1, res.Cost)
}

func TestRun_TraceReachesOrigin(t *testing.T) {
	res := run(t, "ACTGACTGACTG", "ACTGTCTGACTG")
	target := astarsearch.Pos{I: 12, J: 12}
	pos := target
	steps := 0
	for pos != (astarsearch.Pos{0, 0}) {
		step, ok := res.Trace[pos]
		require.True(t, ok, "missing trace entry for %+v", pos)
		pos = step.From
		steps++
		require.Less(t, steps, 100, "trace did not converge to origin")
	}
}
