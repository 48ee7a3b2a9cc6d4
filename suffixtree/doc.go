// Package suffixtree implements an online suffix tree built with Ukkonen's
// algorithm, plus the substring queries it makes cheap.
//
// 🚀 What is a suffix tree?
//
//	A compressed trie of every suffix of a text. Each root path spells a
//	substring; each leaf (once a unique sentinel closes the text) is one
//	suffix. Edge labels are stored as (start, span) windows into the text,
//	so the whole tree takes O(n) memory.
//
// ✨ Key features:
//   - online construction: Append one symbol at a time, amortized O(1) each
//   - open leaf edges: leaf labels grow with the text for free
//   - HasSubstring / CountSubstring in O(|pattern|) (after one O(n) leaf pass)
//   - CountDistinctSubstrings, Repeatness, LongestRepeat
//   - SuffixArray + LCP derived from a lexicographic walk
//   - LongestCommonSubstring of two texts over a two-sentinel tree
//   - judge-format dump via WriteTo, edge listing via Edges
//   - Walk with pre-/post-order hooks (OnVisit, OnExit) and MaxDepth
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/stree/suffixtree"
//
//	t := suffixtree.Build("xabcdexabcd", suffixtree.WithLeafCounts())
//	t.HasSubstring("dexa")    // true
//	t.CountSubstring("abc")   // 2
//	_, _ = t.WriteTo(os.Stdout)
//
// Phases:
//
//	Growing:   only the insertion engine is active; leaf counts are stale.
//	Finalized: a fresh sentinel was appended and leaf counts are valid.
//
// Any Append/AddText returns the tree to Growing. Count queries finalize
// lazily, each time with a new sentinel distinct from all earlier ones.
//
// Complexity:
//
//   - Append:                  amortized O(1) (O(log σ) edge lookup)
//   - HasSubstring, Count:     O(|p|·log σ)
//   - Finalize (leaf counts):  O(n)
//   - CountDistinctSubstrings: O(n·log s) (s = number of sentinels)
//   - SuffixArray:             O(n)
//
// Concurrency:
//
//	A Tree has a single writer and no internal locking. Count queries may
//	append a sentinel, so callers must serialise every call.
//
// Errors:
//
//   - ErrNodeNotFound:     LeafCount on an id outside the arena.
//   - ErrLeafCountsStale:  LeafCount while the tree is Growing.
//   - hook errors from Walk, wrapped with the node id.
//
// Contract violations (a corrupted active point) panic with a "suffixtree:"
// message; they are programming errors, not recoverable conditions.
package suffixtree
