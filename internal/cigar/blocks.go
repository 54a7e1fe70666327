package cigar

import (
	"fmt"

	"github.com/katalvlaran/astarpa/internal/block"
)

// FromBlocks traces (n, m) back to (0, 0) by comparing neighboring DP
// values read from blocks (one per column), per spec.md §4.8's "from
// blocks" path: each step is classified by which of the three
// neighbor-minus-one relations holds.
func FromBlocks(a, b []byte, blocks []*block.Block) string {
	i, j := len(a), len(b)
	ops := make([]byte, 0, len(a)+len(b))

	for i > 0 || j > 0 {
		cur := blocks[i].Index(j)
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1] && blocks[i-1].Index(j-1) == cur:
			ops = append(ops, '=')
			i--
			j--
		case i > 0 && j > 0 && blocks[i-1].Index(j-1)+1 == cur:
			ops = append(ops, 'X')
			i--
			j--
		case i > 0 && blocks[i-1].Index(j)+1 == cur:
			ops = append(ops, 'D')
			i--
		case j > 0 && blocks[i].Index(j-1)+1 == cur:
			ops = append(ops, 'I')
			j--
		default:
			panic(fmt.Sprintf("cigar: block trace inconsistent at (%d,%d)", i, j))
		}
	}

	reverse(ops)
	return RunLengthEncode(ops)
}
