package dtsearch

import (
	"github.com/katalvlaran/astarpa/internal/astarsearch"
	"github.com/katalvlaran/astarpa/internal/heuristic"
	"github.com/katalvlaran/astarpa/internal/seeds"
)

// Run searches for an exact alignment of a against b using the
// diagonal-transition furthest-reach table, gated by h and capped at
// maxG (0 meaning uncapped). ok is false if DT gave up without
// converging — the caller should fall back to internal/astarsearch.
func Run(a, b []byte, h *heuristic.Heuristic, maxG int) (result astarsearch.Result, ok bool) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return astarsearch.Result{}, false
	}

	fStar := h.RootPotential()
	if fStar < 0 {
		fStar = 0
	}

	for {
		if maxG > 0 && fStar > maxG {
			return astarsearch.Result{}, false
		}
		if cost, trace, attemptOK := attempt(a, b, h, fStar); attemptOK {
			return astarsearch.Result{Cost: cost, Trace: trace}, true
		}
		if fStar == 0 {
			fStar = 1
		} else {
			fStar *= 2
		}
	}
}

// attempt runs one generation-by-generation sweep of the furthest-reach
// table bounded by fStar, stopping as soon as the target diagonal's
// furthest row reaches len(a). ok is false if the target was not reached
// within fStar generations.
func attempt(a, b []byte, h *heuristic.Heuristic, fStar int) (cost int, trace map[astarsearch.Pos]astarsearch.Step, ok bool) {
	n, m := len(a), len(b)
	targetDiag := n - m

	history := make([]map[int]entry, 0, fStar+2)

	i0 := extendMatch(a, b, 0, 0)
	history = append(history, map[int]entry{0: {i: i0, extendLen: i0}})

	if targetDiag == 0 && i0 == n {
		return 0, traceback(0, 0, history), true
	}

	for g := 1; g <= fStar; g++ {
		prev := history[g-1]
		cur := make(map[int]entry)

		lo, hi := -g, g
		if lo < -m {
			lo = -m
		}
		if hi > n {
			hi = n
		}

		for d := lo; d <= hi; d++ {
			best, bestFrom := -1, 0
			var bestOp astarsearch.Op

			if e, found := prev[d]; found { // substitution: same diagonal
				if cand := e.i + 1; cand > best {
					best, bestFrom, bestOp = cand, d, astarsearch.OpSub
				}
			}
			if e, found := prev[d-1]; found { // deletion from a: diagonal rises by 1
				if cand := e.i + 1; cand > best {
					best, bestFrom, bestOp = cand, d-1, astarsearch.OpDel
				}
			}
			if e, found := prev[d+1]; found { // insertion into a: diagonal drops by 1
				if cand := e.i; cand > best {
					best, bestFrom, bestOp = cand, d+1, astarsearch.OpIns
				}
			}
			if best < 0 || best > n {
				continue
			}
			j := best - d
			if j < 0 || j > m {
				continue
			}
			if g+h.H(seeds.Pos{I: best, J: j}) > fStar {
				continue // h is admissible: this cell cannot lie on any path of cost <= fStar
			}

			ei := extendMatch(a, b, best, j)
			cur[d] = entry{i: ei, fromDiag: bestFrom, op: bestOp, extendLen: ei - best}
		}

		history = append(history, cur)

		if e, found := cur[targetDiag]; found && e.i == n {
			return g, traceback(g, targetDiag, history), true
		}
	}

	return 0, nil, false
}

// extendMatch greedily advances (i, j) along one diagonal while a and b
// agree, returning the furthest row reached.
func extendMatch(a, b []byte, i, j int) int {
	n, m := len(a), len(b)
	for i < n && j < m && a[i] == b[j] {
		i++
		j++
	}
	return i
}

// traceback walks the furthest-reach table backward from (g, targetDiag)
// to (0, diagonal 0), materializing the same Pos -> Step representation
// internal/astarsearch produces so cigar.FromAstarTrace needs no
// DT-specific counterpart.
func traceback(g, d int, history []map[int]entry) map[astarsearch.Pos]astarsearch.Step {
	trace := make(map[astarsearch.Pos]astarsearch.Step)

	for g > 0 {
		e := history[g][d]
		i, j := e.i, e.i-d

		for k := 0; k < e.extendLen; k++ {
			trace[astarsearch.Pos{I: i, J: j}] = astarsearch.Step{From: astarsearch.Pos{I: i - 1, J: j - 1}, Op: astarsearch.OpMatch}
			i--
			j--
		}

		var pi, pj int
		switch e.op {
		case astarsearch.OpSub:
			pi, pj = i-1, j-1
		case astarsearch.OpDel:
			pi, pj = i-1, j
		default: // OpIns
			pi, pj = i, j-1
		}
		trace[astarsearch.Pos{I: i, J: j}] = astarsearch.Step{From: astarsearch.Pos{I: pi, J: pj}, Op: e.op}

		g--
		d = e.fromDiag
	}

	e0 := history[0][0]
	for i := e0.i; i > 0; i-- {
		trace[astarsearch.Pos{I: i, J: i}] = astarsearch.Step{From: astarsearch.Pos{I: i - 1, J: i - 1}, Op: astarsearch.OpMatch}
	}
	return trace
}
