package matches

// qgramIndex is an exact-match postings index over all length-k windows of
// B: postings[window] is the sorted list of start positions in B where
// that exact k-mer occurs.
//
// Grounded on the postings-list construction in
// _examples/other_examples's qgram package (compressed_postings.go,
// scorer.go): a map from k-gram to sorted occurrence list, queried by
// exact key lookup rather than by scored ranking (this index only needs
// presence/position, not relevance scoring).
type qgramIndex struct {
	k        int
	postings map[string][]int
}

// buildQGramIndex enumerates every length-k window of b and returns the
// exact-match postings index.
//
// Complexity: O(|b|*k) time/space worst case (hashing each window),
// O(|b|) expected with Go's string-keyed map amortizing the window copies.
func buildQGramIndex(b []byte, k int) *qgramIndex {
	cap := len(b) - k + 1
	if cap < 0 {
		cap = 0
	}
	idx := &qgramIndex{k: k, postings: make(map[string][]int, cap)}
	for j := 0; j+k <= len(b); j++ {
		key := string(b[j : j+k])
		idx.postings[key] = append(idx.postings[key], j)
	}
	return idx
}

// lookup returns every start position in B where the exact k-mer window
// occurs.
func (idx *qgramIndex) lookup(window []byte) []int {
	return idx.postings[string(window)]
}
