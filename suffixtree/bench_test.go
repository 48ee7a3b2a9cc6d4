package suffixtree_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/stree/suffixtree"
)

const benchSize = 100_000

// benchText returns benchSize random lowercase letters from a fixed seed.
func benchText() string {
	return randomText(rand.New(rand.NewSource(1)), "abcdefghijklmnopqrstuvwxyz", benchSize)
}

// BenchmarkBuild measures online construction of a 10^5-symbol text.
// Complexity: O(n) amortized per iteration.
func BenchmarkBuild(b *testing.B) {
	text := benchText()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = suffixtree.Build(text, suffixtree.WithCapacity(benchSize))
	}
}

// BenchmarkCountSubstring measures counting on a finalized tree; patterns
// are slices of the text so every query is a hit.
func BenchmarkCountSubstring(b *testing.B) {
	text := benchText()
	t := suffixtree.Build(text, suffixtree.WithLeafCounts())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		off := (i * 7919) % (benchSize - 8)
		_ = t.CountSubstring(text[off : off+8])
	}
}

// BenchmarkCountDistinct measures the distinct-substring sum over all edges.
func BenchmarkCountDistinct(b *testing.B) {
	t := suffixtree.Build(benchText())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = t.CountDistinctSubstrings()
	}
}

// BenchmarkSuffixArray measures the lexicographic walk.
func BenchmarkSuffixArray(b *testing.B) {
	t := suffixtree.Build(benchText(), suffixtree.WithLeafCounts())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = t.SuffixArray()
	}
}
