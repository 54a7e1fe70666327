package cigar

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/astarpa/internal/astarsearch"
)

// opRune maps an astarsearch.Op to its CIGAR letter (they are already
// identical bytes, but this keeps the two packages decoupled).
func opRune(op astarsearch.Op) byte { return byte(op) }

// FromAstarTrace walks trace backward from (n, m) to (0, 0) and emits the
// run-length-encoded CIGAR string, per spec.md §4.8's "from A*" path.
func FromAstarTrace(n, m int, trace map[astarsearch.Pos]astarsearch.Step) string {
	target := astarsearch.Pos{I: n, J: m}
	ops := make([]byte, 0, n+m)

	pos := target
	for pos != (astarsearch.Pos{I: 0, J: 0}) {
		step, ok := trace[pos]
		if !ok {
			panic(fmt.Sprintf("cigar: trace has no entry for %+v", pos))
		}
		ops = append(ops, opRune(step.Op))
		pos = step.From
	}
	reverse(ops)
	return RunLengthEncode(ops)
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// RunLengthEncode collapses consecutive identical op bytes into
// "<count><op>" segments.
func RunLengthEncode(ops []byte) string {
	if len(ops) == 0 {
		return ""
	}
	var sb strings.Builder
	run := 1
	for i := 1; i <= len(ops); i++ {
		if i < len(ops) && ops[i] == ops[i-1] {
			run++
			continue
		}
		fmt.Fprintf(&sb, "%d%c", run, ops[i-1])
		run = 1
	}
	return sb.String()
}
