package reference_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/astarpa/internal/cigar"
	"github.com/katalvlaran/astarpa/internal/reference"
)

func TestCost_KnownScenarios(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"ACTG", "ACTG", 0},
		{"ACTG", "", 4},
		{"AGTT", "AGT", 1},
		{"AGACGTCC", "AGACGTCCA", 1},
		{"TCTCTCTCTCTG", "GTCTCTCTTCTG", 2},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, reference.Cost([]byte(c.a), []byte(c.b)), "a=%q b=%q", c.a, c.b)
	}
}

func TestCigar_VerifiesAgainstCost(t *testing.T) {
	cases := []struct{ a, b string }{
		{"ACTG", "ACTG"},
		{"AGTT", "AGT"},
		{"AGACGTCC", "AGACGTCCA"},
		{"TCTCTCTCTCTG", "GTCTCTCTTCTG"},
	}
	for _, c := range cases {
		cost := reference.Cost([]byte(c.a), []byte(c.b))
		got := reference.Cigar([]byte(c.a), []byte(c.b))
		assert.NoError(t, cigar.Verify([]byte(c.a), []byte(c.b), got, cost), "a=%q b=%q cigar=%q", c.a, c.b, got)
	}
}
