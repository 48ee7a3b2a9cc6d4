package suffixtree

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tree is an online suffix tree over a growing text.
//
// The zero value is not usable; construct with New or Build.
// A Tree has a single writer: see the package documentation on concurrency.
type Tree struct {
	text      []Symbol    // indexed text, sentinels included
	arena     arena       // node/edge storage
	active    activePoint // insertion cursor
	sentinels []int       // text positions of sentinels, ascending
	phase     Phase       // Growing or Finalized
	opts      Options     // construction options
}

// New returns an empty Tree (root only) configured by opts.
//
// Example:
//
//	t := suffixtree.New(suffixtree.WithFoldCase())
//	t.AddText("Banana")
//
// Complexity: O(Capacity) for pre-sizing, O(1) otherwise.
func New(opts ...Option) *Tree {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	capacity := max(o.Capacity, 0)

	return &Tree{
		text:  make([]Symbol, 0, capacity),
		arena: newArena(2 * capacity),
		phase: Growing,
		opts:  o,
	}
}

// Build returns a Tree holding text. With WithLeafCounts the tree is
// finalized before it is returned.
// Complexity: O(n) amortized.
func Build(text string, opts ...Option) *Tree {
	t := New(opts...)
	t.AddText(text)
	if t.opts.LeafCounts {
		t.Finalize()
	}

	return t
}

// Append extends the text by one rune and updates the tree online.
// Invalidates leaf counts (Phase becomes Growing). An invalid rune is
// stored as utf8.RuneError, the same as AddText does for invalid UTF-8.
// Complexity: amortized O(1).
func (t *Tree) Append(r rune) {
	t.extend(t.symbol(r))
}

// AddText appends every rune of s in order.
// Complexity: amortized O(len(s)).
func (t *Tree) AddText(s string) {
	for _, r := range s {
		t.Append(r)
	}
}

// symbol maps a text or pattern rune to its Symbol, folding case if asked.
// Invalid runes (negative, surrogate halves, above unicode.MaxRune) become
// utf8.RuneError, so negative symbols stay reserved for sentinels.
func (t *Tree) symbol(r rune) Symbol {
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	if t.opts.FoldCase {
		r = unicode.ToLower(r)
	}

	return Symbol(r)
}

// Len returns the number of symbols in the text, sentinels included.
func (t *Tree) Len() int {
	return len(t.text)
}

// NodeCount returns the number of nodes, root included.
func (t *Tree) NodeCount() int {
	return t.arena.size()
}

// EdgeCount returns the number of edges. Every non-root node has exactly
// one incoming edge, so this is NodeCount()-1.
func (t *Tree) EdgeCount() int {
	return t.arena.size() - 1
}

// Phase reports whether leaf counts are valid.
func (t *Tree) Phase() Phase {
	return t.phase
}

// Sentinels returns how many sentinels Finalize has appended so far.
func (t *Tree) Sentinels() int {
	return len(t.sentinels)
}

// Text renders the indexed text; sentinels appear as "$1", "$2", ...
func (t *Tree) Text() string {
	return t.render(0, len(t.text))
}

// Label renders the label of e, resolved against the current text.
func (t *Tree) Label(e Edge) string {
	return t.render(e.Start, e.Start+e.Span.Resolve(e.Start, len(t.text)))
}

// render returns text[from:to] as a string.
func (t *Tree) render(from, to int) string {
	var b strings.Builder
	b.Grow(to - from)
	for _, s := range t.text[from:to] {
		b.WriteString(s.String())
	}

	return b.String()
}
