package suffixtree

import "slices"

// labeled is an outgoing edge keyed by the first symbol of its label.
type labeled struct {
	first Symbol
	edge  Edge
}

// node is one arena slot. edges is kept sorted by first symbol, so lookups
// are a binary search and iteration is lexicographic.
type node struct {
	link   NodeID    // suffix link; Root when undefined
	edges  []labeled // outgoing edges, ascending by first
	leaves int       // leaf count, valid only while Finalized
}

// arena owns every node of a tree. It is append-only: nodes are never
// removed and ids are never reused.
type arena struct {
	nodes []node
}

// newArena returns an arena holding only the root, with room for capacity
// further nodes.
func newArena(capacity int) arena {
	return arena{nodes: make([]node, 1, max(capacity, 0)+1)}
}

// allocate appends a fresh node with no edges and an undefined suffix link.
// Complexity: amortized O(1).
func (a *arena) allocate() NodeID {
	a.nodes = append(a.nodes, node{})

	return NodeID(len(a.nodes) - 1)
}

// size returns the number of nodes, root included.
func (a *arena) size() int {
	return len(a.nodes)
}

// contains reports whether id names an allocated node.
func (a *arena) contains(id NodeID) bool {
	return id >= 0 && int(id) < len(a.nodes)
}

// search locates first among n's edges; it returns the insertion index and
// whether the key is present.
func (a *arena) search(n NodeID, first Symbol) (int, bool) {
	return slices.BinarySearchFunc(a.nodes[n].edges, first, func(l labeled, s Symbol) int {
		switch {
		case l.first < s:
			return -1
		case l.first > s:
			return 1
		}

		return 0
	})
}

// edge returns n's outgoing edge whose label starts with first.
// Complexity: O(log σ).
func (a *arena) edge(n NodeID, first Symbol) (Edge, bool) {
	i, ok := a.search(n, first)
	if !ok {
		return Edge{}, false
	}

	return a.nodes[n].edges[i].edge, true
}

// setEdge installs e as n's edge for first, overwriting an existing one.
// Complexity: O(σ) worst case for the ordered insert, O(log σ) to overwrite.
func (a *arena) setEdge(n NodeID, first Symbol, e Edge) {
	i, ok := a.search(n, first)
	if ok {
		a.nodes[n].edges[i].edge = e

		return
	}
	a.nodes[n].edges = slices.Insert(a.nodes[n].edges, i, labeled{first: first, edge: e})
}

// edges returns n's outgoing edges in ascending symbol order. The slice is
// owned by the arena and must not be modified.
func (a *arena) edges(n NodeID) []labeled {
	return a.nodes[n].edges
}

// setLink points n's suffix link at to. Linking from the root is a no-op:
// the insertion loop uses Root as "no pending internal node".
func (a *arena) setLink(n, to NodeID) {
	if n == Root {
		return
	}
	a.nodes[n].link = to
}

// suffixLink returns n's suffix link.
func (a *arena) suffixLink(n NodeID) NodeID {
	return a.nodes[n].link
}

// isLeaf reports whether n has no outgoing edges.
func (a *arena) isLeaf(n NodeID) bool {
	return len(a.nodes[n].edges) == 0
}
