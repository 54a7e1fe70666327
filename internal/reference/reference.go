package reference

import "github.com/katalvlaran/astarpa/internal/cigar"

// Cost computes the Levenshtein distance between a and b with the classic
// two-row Wagner-Fischer DP, O(n*m) time, O(min(n,m)) space.
func Cost(a, b []byte) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	n, m := len(a), len(b)

	prev := make([]int, n+1)
	cur := make([]int, n+1)
	for i := 0; i <= n; i++ {
		prev[i] = i
	}

	for j := 1; j <= m; j++ {
		cur[0] = j
		for i := 1; i <= n; i++ {
			if a[i-1] == b[j-1] {
				cur[i] = prev[i-1]
			} else {
				cur[i] = 1 + min3(prev[i-1], prev[i], cur[i-1])
			}
		}
		prev, cur = cur, prev
	}
	return prev[n]
}

// Cigar computes the full DP matrix and traces back a CIGAR string,
// O(n*m) time and space. Intended for small test fixtures only.
func Cigar(a, b []byte) string {
	n, m := len(a), len(b)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
		dp[i][0] = i
	}
	for j := 0; j <= m; j++ {
		dp[0][j] = j
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1]
			} else {
				dp[i][j] = 1 + min3(dp[i-1][j-1], dp[i-1][j], dp[i][j-1])
			}
		}
	}

	ops := make([]byte, 0, n+m)
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1] && dp[i-1][j-1] == dp[i][j]:
			ops = append(ops, '=')
			i--
			j--
		case i > 0 && j > 0 && dp[i-1][j-1]+1 == dp[i][j]:
			ops = append(ops, 'X')
			i--
			j--
		case i > 0 && dp[i-1][j]+1 == dp[i][j]:
			ops = append(ops, 'D')
			i--
		default:
			ops = append(ops, 'I')
			j--
		}
	}
	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}
	return cigar.RunLengthEncode(ops)
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
