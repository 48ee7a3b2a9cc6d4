package suffixtree

import "errors"

// Sentinel errors for suffix tree inspection.
var (
	// ErrNodeNotFound indicates a NodeID outside the arena.
	ErrNodeNotFound = errors.New("suffixtree: node not found")

	// ErrLeafCountsStale indicates leaf counts were requested while the tree
	// is Growing, i.e. text was appended after the last Finalize.
	ErrLeafCountsStale = errors.New("suffixtree: leaf counts are stale, call Finalize")
)
