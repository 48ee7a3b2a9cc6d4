package suffixtree

// side flags which input strings have a suffix below a node.
type side uint8

const (
	sideA side = 1 << iota
	sideB
	sideBoth = sideA | sideB
)

// LongestCommonSubstring returns the longest string that occurs in both a
// and b. Ties go to the lexicographically smallest; no common symbol yields
// "". Options such as WithFoldCase apply to both inputs.
//
// Algorithm Outline:
//  1. Build one tree over a·$1·b·$2 (two Finalize calls).
//  2. Post-order: a leaf starting before $1 belongs to a, after it to b;
//     an internal node carries the union of its children's sides.
//  3. The deepest internal node seen from both sides spells the answer.
//
// Complexity: O(|a| + |b|).
func LongestCommonSubstring(a, b string, opts ...Option) string {
	t := New(opts...)
	t.AddText(a)
	t.Finalize()
	t.AddText(b)
	t.Finalize()

	n := len(t.text)
	split := t.sentinels[0]
	sides := make([]side, t.NodeCount())

	var best Visit
	_ = t.Walk(WithOnExit(func(v Visit) error {
		if v.Leaf {
			switch start := n - v.StringDepth; {
			case start < split:
				sides[v.Node] = sideA
			case start > split:
				sides[v.Node] = sideB
			}

			return nil
		}
		for _, l := range t.arena.edges(v.Node) {
			sides[v.Node] |= sides[l.edge.Target]
		}
		if v.Node != Root && sides[v.Node] == sideBoth && v.StringDepth > best.StringDepth {
			best = v
		}

		return nil
	}))
	if best.Node == Root {
		return ""
	}

	span := best.Edge.Span.Resolve(best.Edge.Start, n)
	start := best.Edge.Start + span - best.StringDepth

	return t.render(start, start+best.StringDepth)
}
