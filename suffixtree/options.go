package suffixtree

import "io"

// Options configures a Tree.
//
// Fields:
//   - FoldCase:   lower-case every appended rune and every query pattern
//     (unicode.ToLower), for case-insensitive search.
//   - LeafCounts: Build finalizes right away (sentinel + leaf counts),
//     so the first CountSubstring does not pay for it.
//   - Capacity:   expected text length; pre-sizes text and arena storage.
//     Values ≤ 0 mean no pre-sizing.
//   - Trace:      if non-nil, every extension rule is written here, one
//     line per rule application.
type Options struct {
	FoldCase   bool
	LeafCounts bool
	Capacity   int
	Trace      io.Writer
}

// Option mutates Options; pass any number to New or Build.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - case-sensitive matching
//   - lazy leaf counting
//   - no pre-sizing
//   - no tracing
func DefaultOptions() Options {
	return Options{
		FoldCase:   false,
		LeafCounts: false,
		Capacity:   0,
		Trace:      nil,
	}
}

// WithFoldCase enables case-insensitive appends and queries.
func WithFoldCase() Option {
	return func(o *Options) { o.FoldCase = true }
}

// WithLeafCounts makes Build finalize the tree eagerly.
func WithLeafCounts() Option {
	return func(o *Options) { o.LeafCounts = true }
}

// WithCapacity pre-sizes storage for a text of about n symbols.
func WithCapacity(n int) Option {
	return func(o *Options) { o.Capacity = n }
}

// WithTrace writes one line per extension rule to w.
func WithTrace(w io.Writer) Option {
	return func(o *Options) { o.Trace = w }
}
