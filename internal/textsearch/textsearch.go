package textsearch

import "fmt"

// Run aligns pattern against text with the top row and left column
// initialised to j*unmatchedCost / i*unmatchedCost instead of the usual
// j / i (a free, per-character-priced prefix), per spec.md §6's search-mode
// extension. The returned Result carries every border cost plus enough of
// the DP matrix for Trace to reconstruct a CIGAR from any of them.
func Run(pattern, text []byte, unmatchedCost int) (Result, error) {
	if unmatchedCost < 0 {
		return Result{}, ErrBadUnmatchedCost
	}
	n, m := len(pattern), len(text)

	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for j := 0; j <= m; j++ {
		dp[0][j] = j * unmatchedCost
	}
	for i := 0; i <= n; i++ {
		dp[i][0] = i * unmatchedCost
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if pattern[i-1] == text[j-1] {
				dp[i][j] = dp[i-1][j-1]
				continue
			}
			dp[i][j] = 1 + min3(dp[i-1][j-1], dp[i-1][j], dp[i][j-1])
		}
	}

	border := make([]BorderCost, 0, m+n+1)
	for j := 0; j <= m; j++ {
		border = append(border, BorderCost{Pos: Pos{I: n, J: j}, Cost: dp[n][j]})
	}
	for i := 0; i < n; i++ {
		border = append(border, BorderCost{Pos: Pos{I: i, J: m}, Cost: dp[i][m]})
	}

	return Result{Border: border, dp: dp}, nil
}

// Trace walks backward from idx to the free top/left border, returning the
// edit ops in forward order ('=', 'X', 'D', 'I', the same alphabet
// internal/cigar uses). idx must be a position Run actually computed
// (0 <= idx.I <= len(pattern), 0 <= idx.J <= len(text)); any other value
// panics, since it can only result from caller error, not data.
func (r Result) Trace(idx Pos, pattern, text []byte) []byte {
	if idx.I < 0 || idx.I >= len(r.dp) || idx.J < 0 || idx.J >= len(r.dp[0]) {
		panic(fmt.Sprintf("textsearch: index out of range: %+v", idx))
	}

	ops := make([]byte, 0, idx.I+idx.J)
	i, j := idx.I, idx.J
	for i > 0 && j > 0 {
		cur := r.dp[i][j]
		switch {
		case pattern[i-1] == text[j-1] && r.dp[i-1][j-1] == cur:
			ops = append(ops, '=')
			i--
			j--
		case r.dp[i-1][j-1]+1 == cur:
			ops = append(ops, 'X')
			i--
			j--
		case r.dp[i-1][j]+1 == cur:
			ops = append(ops, 'D')
			i--
		default:
			ops = append(ops, 'I')
			j--
		}
	}
	// The remaining prefix (free row or free column) is consumed as
	// insertions/deletions with no further cost attribution; i or j is
	// already 0 here.
	for i > 0 {
		ops = append(ops, 'D')
		i--
	}
	for j > 0 {
		ops = append(ops, 'I')
		j--
	}

	reverse(ops)
	return ops
}

func reverse(b []byte) {
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
