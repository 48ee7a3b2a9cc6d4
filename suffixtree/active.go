package suffixtree

import "fmt"

// activePoint is the insertion cursor: the locus `length` symbols below
// `node` along the path spelled by the last `length` symbols of the text.
// It marks the longest suffix that is still only implicitly present.
type activePoint struct {
	node   NodeID
	length int
}

// canonicalize walks the active point down while it can skip a whole
// explicit edge, leaving it on the nearest node above the locus.
//
// Steps:
//  1. first := text[end-length], the symbol that leads the edge to follow.
//  2. No such edge: legal only for length == 1 (Rule 1 follows); otherwise
//     the cursor is corrupt and we panic.
//  3. Open edge, or Fixed(n) with n ≥ length: the locus lies on this edge; stop.
//  4. Otherwise move to the edge's target and subtract n; repeat.
//
// The total number of descents over a whole build is bounded by the number
// of internal nodes, which keeps Append amortized O(1).
func (t *Tree) canonicalize() {
	end := len(t.text)
	for t.active.length > 0 {
		first := t.text[end-t.active.length]
		e, ok := t.arena.edge(t.active.node, first)
		if !ok {
			if t.active.length > 1 {
				panic(fmt.Sprintf("suffixtree: no edge %v below node %d with %d symbols pending",
					first, t.active.node, t.active.length))
			}

			return
		}
		n, fixed := e.Span.Fixed()
		if !fixed || n >= t.active.length {
			return
		}
		t.active.node = e.Target
		t.active.length -= n
	}
}
