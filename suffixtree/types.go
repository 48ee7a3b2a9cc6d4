package suffixtree

import (
	"strconv"
)

// Symbol is one position of the indexed text.
//
// Runes map to non-negative symbols. Sentinels are negative (-1, -2, ...),
// so they never collide with text and always sort before it, the same way
// '$' sorts before lowercase letters.
type Symbol int32

// IsSentinel reports whether s is a terminator appended by Finalize.
func (s Symbol) IsSentinel() bool {
	return s < 0
}

// String renders a rune symbol as itself and sentinel -k as "$k".
func (s Symbol) String() string {
	if s.IsSentinel() {
		return "$" + strconv.Itoa(int(-s))
	}

	return string(rune(s))
}

// NodeID indexes a node in the tree's arena. IDs are stable for the
// lifetime of the tree and never reused.
type NodeID int

// Root is the id of the root node; it has no incoming edge.
const Root NodeID = 0

// Span is the label length of an edge: either Fixed(n), n ≥ 1, or Open,
// meaning "up to the current end of text". Leaf edges stay Open while the
// text grows, so they never need updating.
//
// The zero Span is Fixed(0) and never appears on a real edge.
type Span struct {
	n    int
	open bool
}

// OpenSpan extends to the current end of text.
var OpenSpan = Span{open: true}

// FixedSpan returns a closed span of n symbols.
func FixedSpan(n int) Span {
	return Span{n: n}
}

// IsOpen reports whether the span extends to the end of text.
func (s Span) IsOpen() bool {
	return s.open
}

// Fixed returns the explicit length and true, or (0, false) for an open span.
func (s Span) Fixed() (int, bool) {
	if s.open {
		return 0, false
	}

	return s.n, true
}

// Resolve returns the number of label symbols on an edge that starts at
// start, with the text currently textLen symbols long.
// Complexity: O(1).
func (s Span) Resolve(start, textLen int) int {
	if s.open {
		return textLen - start
	}

	return s.n
}

// shrink drops the first k symbols of the span. Open spans stay open.
func (s Span) shrink(k int) Span {
	if s.open {
		return s
	}

	return Span{n: s.n - k}
}

// String renders "open" or the fixed length.
func (s Span) String() string {
	if s.open {
		return "open"
	}

	return strconv.Itoa(s.n)
}

// Edge is an outgoing edge of a node. Its label is text[Start : Start+span].
type Edge struct {
	Target NodeID // node the edge leads to
	Start  int    // text index of the first label symbol
	Span   Span   // Fixed(n) or OpenSpan
}

// EdgeInfo is a resolved view of one edge for listing and printing.
// The label is text[Start:End]; End is capped at the current text length.
type EdgeInfo struct {
	From, To   NodeID
	Start, End int
}

// Phase is the lifecycle state of a Tree.
type Phase int

const (
	// Growing: only the insertion engine has run since the last leaf count.
	Growing Phase = iota

	// Finalized: a fresh sentinel closes the text and leaf counts are valid.
	Finalized
)

// String returns "growing" or "finalized".
func (p Phase) String() string {
	if p == Finalized {
		return "finalized"
	}

	return "growing"
}

// Repeat describes a substring that occurs at least twice.
//
// Fields:
//   - Start:  text index of one occurrence.
//   - Length: number of symbols.
//   - Count:  number of occurrences (≥ 2).
//   - Text:   the substring itself.
type Repeat struct {
	Start  int
	Length int
	Count  int
	Text   string
}

// Visit is what Walk hands to OnVisit / OnExit for every node.
//
// For the root, Parent is Root, Edge is the zero Edge and First is 0.
// StringDepth is resolved against the current text length, so a leaf's
// depth equals the length of its suffix.
type Visit struct {
	Node        NodeID
	Parent      NodeID
	Edge        Edge   // incoming edge
	First       Symbol // first symbol of the incoming edge label
	Depth       int    // number of edges from the root
	StringDepth int    // number of symbols from the root
	Leaf        bool   // node has no outgoing edges
}
