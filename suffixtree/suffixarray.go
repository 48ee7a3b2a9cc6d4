package suffixtree

// SuffixArray returns the start positions of all text suffixes in
// lexicographic order, and lcp[i] = longest common prefix of the suffixes at
// sa[i] and sa[i+1] (so len(lcp) == len(sa)-1 for a non-empty text).
//
// Suffixes that begin with a sentinel are left out; the remaining ones are
// ordered as if every sentinel sorts before all runes. A Growing tree is
// finalized first.
//
// Implementation:
//   - Stage 1: Walk visits leaves in lexicographic order; a leaf at string
//     depth d is the suffix starting at len(text) - d.
//   - Stage 2: the LCP of two consecutive kept leaves is the string depth of
//     their lowest common ancestor, which is the shallowest parent seen by
//     any node visited in between.
//
// Complexity: O(n).
func (t *Tree) SuffixArray() (sa []int, lcp []int) {
	t.Finalize()
	n := len(t.text)
	sa = make([]int, 0, n-len(t.sentinels))
	lcp = make([]int, 0, max(n-len(t.sentinels)-1, 0))

	lowest := -1 // shallowest parent depth since the last kept leaf
	_ = t.Walk(WithOnVisit(func(v Visit) error {
		if v.Node == Root {
			return nil
		}
		parent := v.StringDepth - v.Edge.Span.Resolve(v.Edge.Start, n)
		if lowest < 0 || parent < lowest {
			lowest = parent
		}
		if !v.Leaf {
			return nil
		}
		start := n - v.StringDepth
		if t.text[start].IsSentinel() {
			return nil
		}
		if len(sa) > 0 {
			lcp = append(lcp, lowest)
		}
		sa = append(sa, start)
		lowest = -1

		return nil
	}))

	return sa, lcp
}
