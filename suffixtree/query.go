package suffixtree

import (
	"sort"
)

// pattern converts p to symbols with the tree's case folding.
func (t *Tree) pattern(p string) []Symbol {
	out := make([]Symbol, 0, len(p))
	for _, r := range p {
		out = append(out, t.symbol(r))
	}

	return out
}

// locate walks p from the root. It returns the node at or directly below
// the end of the match (a mid-edge match lands on the edge's target) and
// whether all of p matched.
//
// Steps per edge:
//  1. Look up the edge keyed by the next unmatched symbol; absent → miss.
//  2. Compare min(resolved span, remaining) symbols against the text.
//  3. Mismatch → miss; otherwise consume them and continue at the target.
//
// Complexity: O(|p|·log σ).
func (t *Tree) locate(p []Symbol) (NodeID, bool) {
	n := len(t.text)
	cur := Root
	for i := 0; i < len(p); {
		e, ok := t.arena.edge(cur, p[i])
		if !ok {
			return Root, false
		}
		span := min(e.Span.Resolve(e.Start, n), len(p)-i)
		for j := 0; j < span; j++ {
			if t.text[e.Start+j] != p[i+j] {
				return Root, false
			}
		}
		i += span
		cur = e.Target
	}

	return cur, true
}

// HasSubstring reports whether p occurs in the text. The empty pattern
// always occurs.
//
// Every Finalize, including the lazy one inside CountSubstring, closes the
// text with a sentinel. Text appended afterwards starts a new segment and
// no match spans two segments: after AddText("ab"), CountSubstring("a"),
// AddText("c"), HasSubstring("bc") is false.
// Complexity: O(|p|·log σ).
func (t *Tree) HasSubstring(p string) bool {
	_, ok := t.locate(t.pattern(p))

	return ok
}

// CountSubstring returns the number of (possibly overlapping) occurrences of
// p in the text. A miss returns 0 without touching the tree; a hit finalizes
// a Growing tree first. The empty pattern counts every suffix.
//
// The finalizing sentinel is a segment boundary for all later queries; see
// HasSubstring.
// Complexity: O(|p|·log σ) after an O(n) Finalize when Growing.
func (t *Tree) CountSubstring(p string) int {
	sym := t.pattern(p)
	if _, ok := t.locate(sym); !ok {
		return 0
	}
	t.Finalize()
	// Finalize may split the edge we landed on; locate again.
	id, _ := t.locate(sym)

	return t.arena.nodes[id].leaves
}

// CountDistinctSubstrings returns the number of distinct non-empty
// substrings of the text, ignoring any substring that contains a sentinel.
//
// Each edge contributes min(resolved span, nextSentinel(start) - start):
// one new substring per label symbol up to (not including) the first
// sentinel. Without sentinels this is Σ min(span, n - start).
//
// Complexity: O(V·log s), s = number of sentinels.
func (t *Tree) CountDistinctSubstrings() uint64 {
	n := len(t.text)
	var total uint64
	for id := range t.arena.nodes {
		for _, l := range t.arena.edges(NodeID(id)) {
			e := l.edge
			span := e.Span.Resolve(e.Start, n)
			total += uint64(min(span, t.nextSentinel(e.Start)-e.Start))
		}
	}

	return total
}

// nextSentinel returns the position of the first sentinel at or after pos,
// or the text length when there is none.
func (t *Tree) nextSentinel(pos int) int {
	i := sort.SearchInts(t.sentinels, pos)
	if i == len(t.sentinels) {
		return len(t.text)
	}

	return t.sentinels[i]
}

// Repeatness returns distinct / (m·(m+1)/2), where m is the number of
// non-sentinel symbols. 1 means every substring is unique; values near 0
// mean a highly repetitive text. An empty text yields 0.
// Complexity: O(V·log s).
func (t *Tree) Repeatness() float64 {
	m := float64(len(t.text) - len(t.sentinels))
	if m == 0 {
		return 0
	}

	return float64(t.CountDistinctSubstrings()) / (m * (m + 1) / 2)
}

// LongestRepeat returns the longest substring that occurs at least twice.
// Ties go to the lexicographically smallest. It reports false when no
// symbol repeats. A Growing tree is finalized first.
//
// The deepest internal node spells the answer; its incoming edge ends one
// occurrence, so Start = edge.Start + span - stringDepth.
//
// Complexity: O(n).
func (t *Tree) LongestRepeat() (Repeat, bool) {
	t.Finalize()

	var best Visit
	_ = t.Walk(WithOnVisit(func(v Visit) error {
		if !v.Leaf && v.Node != Root && v.StringDepth > best.StringDepth {
			best = v
		}

		return nil
	}))
	if best.Node == Root {
		return Repeat{}, false
	}

	span := best.Edge.Span.Resolve(best.Edge.Start, len(t.text))
	start := best.Edge.Start + span - best.StringDepth

	return Repeat{
		Start:  start,
		Length: best.StringDepth,
		Count:  t.arena.nodes[best.Node].leaves,
		Text:   t.render(start, start+best.StringDepth),
	}, true
}
