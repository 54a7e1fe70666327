// Package matches locates approximate occurrences of A's seeds in B and
// assembles them into the Match table the contour/heuristic layers chain
// through.
//
// Two lookup strategies share one contract (Find): an exact q-gram index
// for r=1 seeds, grounded on the q-gram postings-list style of
// _examples/other_examples (the qgram package's compressed postings and
// WAND candidate generation), and a small trie over B's k-length windows
// for r=2 seeds allowing one substitution (indel occurrences are not
// returned, since only length-k windows are indexed), grounded on
// _examples/other_examples's muscato seed-and-extend search tools and on
// _examples/original_source/pa-heuristic/src/matches/suffix_array.rs.
//
// Matches absent for a seed are not an error: Find simply leaves that
// seed's Cost at its full Potential, per spec.md §4.2.
package matches
