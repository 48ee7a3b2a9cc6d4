package suffixtree

// Finalize closes the text with a fresh sentinel and recomputes every leaf
// count. Once every suffix ends at a leaf, the leaf count of a node is the
// number of occurrences of the substring it spells.
//
// A Finalized tree is left untouched. After further Append/AddText calls the
// next Finalize appends a new sentinel, distinct from all earlier ones.
//
// Complexity: O(n).
func (t *Tree) Finalize() {
	if t.phase == Finalized {
		return
	}

	// 1) Unique terminator: every implicit suffix becomes a leaf
	sentinel := Symbol(-(len(t.sentinels) + 1))
	t.sentinels = append(t.sentinels, len(t.text))
	t.extend(sentinel)

	// 2) Post-order leaf count
	t.countLeaves()
	t.phase = Finalized
}

// countLeaves assigns leaf = 1 and internal = Σ children in one post-order
// walk; every node is overwritten, so counts of an earlier pass never leak.
func (t *Tree) countLeaves() {
	_ = t.Walk(WithOnExit(func(v Visit) error {
		if v.Leaf {
			t.arena.nodes[v.Node].leaves = 1

			return nil
		}
		sum := 0
		for _, l := range t.arena.edges(v.Node) {
			sum += t.arena.nodes[l.edge.Target].leaves
		}
		t.arena.nodes[v.Node].leaves = sum

		return nil
	}))
}

// LeafCount returns the number of leaves below id.
//
// Errors:
//   - ErrNodeNotFound if id is outside the arena.
//   - ErrLeafCountsStale if the tree is Growing.
func (t *Tree) LeafCount(id NodeID) (int, error) {
	if !t.arena.contains(id) {
		return 0, ErrNodeNotFound
	}
	if t.phase != Finalized {
		return 0, ErrLeafCountsStale
	}

	return t.arena.nodes[id].leaves, nil
}
