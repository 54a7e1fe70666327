package contours_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astarpa/internal/contours"
)

func sampleArrows() []contours.Arrow {
	// A small chain: arrow 0 goes (0,0)->(5,5) worth 2, arrow 1 continues
	// (5,5)->(10,10) worth 3, arrow 2 is an unrelated branch off (2,0).
	return []contours.Arrow{
		{ID: 0, Start: contours.Pos{I: 0, J: 0}, End: contours.Pos{I: 5, J: 5}, Score: 2},
		{ID: 1, Start: contours.Pos{I: 5, J: 5}, End: contours.Pos{I: 10, J: 10}, Score: 3},
		{ID: 2, Start: contours.Pos{I: 2, J: 0}, End: contours.Pos{I: 8, J: 3}, Score: 1},
	}
}

func TestSorted_AgreesWithBruteForce(t *testing.T) {
	arrows := sampleArrows()
	sorted := contours.NewSorted(arrows)
	brute := contours.NewBruteForce(arrows)

	probes := []contours.Pos{
		{I: 0, J: 0}, {I: 1, J: 0}, {I: 2, J: 0}, {I: 5, J: 5},
		{I: 6, J: 6}, {I: 10, J: 10}, {I: 11, J: 11}, {I: 3, J: 1},
	}
	for _, p := range probes {
		assert.Equal(t, brute.Score(p), sorted.Score(p), "mismatch at %+v", p)
	}
}

func TestSorted_ChainAccumulatesAcrossArrows(t *testing.T) {
	sorted := contours.NewSorted(sampleArrows())
	// Reaching (0,0) must see the full chain: 2 (arrow 0) + 3 (arrow 1) = 5.
	assert.Equal(t, 5, sorted.Score(contours.Pos{I: 0, J: 0}))
	// Past the end of all arrows, score is 0.
	assert.Equal(t, 0, sorted.Score(contours.Pos{I: 100, J: 100}))
}

func TestSorted_ScoreIsMonotoneNonIncreasing(t *testing.T) {
	sorted := contours.NewSorted(sampleArrows())
	lesser := contours.Pos{I: 0, J: 0}
	greater := contours.Pos{I: 3, J: 3}
	assert.GreaterOrEqual(t, sorted.Score(lesser), sorted.Score(greater))
}

func TestSorted_ScoreWithHintMatchesScore(t *testing.T) {
	sorted := contours.NewSorted(sampleArrows())
	for _, p := range []contours.Pos{{I: 0, J: 0}, {I: 5, J: 5}, {I: 7, J: 7}} {
		want := sorted.Score(p)
		for _, h := range []contours.Hint{0, 1, 2, 5, 100} {
			got, _ := sorted.ScoreWithHint(p, h)
			assert.Equal(t, want, got, "pos=%+v hint=%d", p, h)
		}
	}
}

func TestSorted_PruneRemovesContribution(t *testing.T) {
	arrows := sampleArrows()
	sorted := contours.NewSorted(arrows)
	require.Equal(t, 5, sorted.Score(contours.Pos{I: 0, J: 0}))

	wasDominant, _, err := sorted.Prune(1) // remove the second leg of the chain
	require.NoError(t, err)
	assert.True(t, wasDominant)

	// Without arrow 1, the best arrow 0 alone can offer from (0,0) is its
	// own score (2) plus whatever arrow 1's end now scores (0).
	assert.Equal(t, 2, sorted.Score(contours.Pos{I: 0, J: 0}))
}

func TestSorted_PruneUnknownArrowErrors(t *testing.T) {
	sorted := contours.NewSorted(sampleArrows())
	_, _, err := sorted.Prune(999)
	assert.ErrorIs(t, err, contours.ErrUnknownArrow)
}

func TestSorted_ParentReturnsWitness(t *testing.T) {
	sorted := contours.NewSorted(sampleArrows())
	score, witness, arrowID, ok := sorted.Parent(contours.Pos{I: 0, J: 0})
	require.True(t, ok)
	assert.Equal(t, 5, score)
	assert.Equal(t, contours.Pos{I: 0, J: 0}, witness)
	assert.Equal(t, 0, arrowID)
}

func TestSorted_ParentOnUnreachedPositionIsNotOK(t *testing.T) {
	sorted := contours.NewSorted(sampleArrows())
	_, _, _, ok := sorted.Parent(contours.Pos{I: 100, J: 100})
	assert.False(t, ok)
}

func TestBruteForce_PruneThenRescoreDropsArrow(t *testing.T) {
	brute := contours.NewBruteForce(sampleArrows())
	require.Equal(t, 5, brute.Score(contours.Pos{I: 0, J: 0}))

	ok, _, err := brute.Prune(0)
	require.NoError(t, err)
	assert.True(t, ok)
	// Arrow 1 starts at (5,5) >= (0,0) and is still live, so its score of 3
	// remains reachable; arrow 0's own 2 is gone.
	assert.Equal(t, 3, brute.Score(contours.Pos{I: 0, J: 0}))
}

func TestNew_ReturnsWorkingContours(t *testing.T) {
	c := contours.New(sampleArrows())
	assert.Equal(t, 5, c.Score(contours.Pos{I: 0, J: 0}))
}
