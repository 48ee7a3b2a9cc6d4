package suffixtree

import "fmt"

// extend appends symbol c and restores the suffix tree invariant with
// Ukkonen's three extension rules.
//
// Algorithm Outline:
//  1. Append c to the text; the active point grows by one symbol.
//  2. last := Root ("no internal node awaiting a suffix link").
//  3. While active.length > 0:
//     a. canonicalize the active point;
//     b. first := text[end-length]; look up edge(active.node, first);
//     c. Rule 1 (no edge): hang a new open leaf off active.node;
//     link last → active.node; last = Root;
//     d. Rule 2 (the symbol after the locus equals c): the suffix, and so
//     every shorter one, is already present; link last → active.node; stop;
//     e. Rule 3 (mismatch): split the edge after length-1 symbols, insert an
//     internal node carrying the old tail and a new open leaf for c;
//     link last → mid; last = mid;
//     f. at the root drop one symbol (length--), elsewhere follow the
//     suffix link of active.node.
//
// Complexity: amortized O(1) per call (times O(log σ) per edge lookup).
func (t *Tree) extend(c Symbol) {
	// 1) Grow the text and the pending suffix
	t.text = append(t.text, c)
	t.active.length++
	t.phase = Growing
	end := len(t.text)

	// 2) No internal node is waiting for its suffix link yet
	last := Root

	// 3) Insert every suffix that is not yet implicitly present
	for t.active.length > 0 {
		// 3a) Jump over whole edges
		t.canonicalize()

		// 3b) Edge that must carry the current suffix
		first := t.text[end-t.active.length]
		e, ok := t.arena.edge(t.active.node, first)

		if !ok {
			// 3c) Rule 1: new leaf directly below active.node
			leaf := t.arena.allocate()
			t.arena.setEdge(t.active.node, first, Edge{Target: leaf, Start: end - t.active.length, Span: OpenSpan})
			t.arena.setLink(last, t.active.node)
			last = Root
			t.tracef("rule 1 leaf=%d parent=%d start=%d", leaf, t.active.node, end-t.active.length)
		} else {
			k := t.active.length - 1
			next := t.text[e.Start+k]
			if next == c {
				// 3d) Rule 2: already present; all shorter suffixes are too
				t.arena.setLink(last, t.active.node)
				t.tracef("rule 2 node=%d length=%d", t.active.node, t.active.length)

				return
			}

			// 3e) Rule 3: split e after k symbols (k ≥ 1 here, since k == 0
			// would mean next == first == c)
			mid := t.arena.allocate()
			leaf := t.arena.allocate()
			t.arena.setEdge(mid, c, Edge{Target: leaf, Start: end - 1, Span: OpenSpan})
			t.arena.setEdge(mid, next, Edge{Target: e.Target, Start: e.Start + k, Span: e.Span.shrink(k)})
			t.arena.setEdge(t.active.node, first, Edge{Target: mid, Start: e.Start, Span: FixedSpan(k)})
			t.arena.setLink(last, mid)
			last = mid
			t.tracef("rule 3 split=%d parent=%d leaf=%d at=%d", mid, t.active.node, leaf, e.Start+k)
		}

		// 3f) Move on to the next shorter suffix
		if t.active.node == Root {
			t.active.length--
		} else {
			t.active.node = t.arena.suffixLink(t.active.node)
		}
	}
}

// tracef writes one trace line when Options.Trace is set.
func (t *Tree) tracef(format string, args ...any) {
	if t.opts.Trace == nil {
		return
	}
	fmt.Fprintf(t.opts.Trace, "suffixtree: "+format+"\n", args...)
}
