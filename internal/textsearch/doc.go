// Package textsearch implements spec.md §6's single search-mode
// extension: aligning a short pattern against a free prefix/suffix of a
// longer text, so the alignment may start anywhere along the text's top
// or left border at a configurable per-character cost, rather than being
// pinned to (0, 0).
//
// This is a plain O(nm) scalar DP rather than a bitpacked one: the
// unmatched-prefix cost is an arbitrary int (not necessarily 1), which
// does not fit the +1/-1 delta alphabet internal/block's BitV encodes;
// see DESIGN.md for why this extension is not layered onto internal/block
// the way spec.md's prose suggests.
package textsearch
