package suffixtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/stree/suffixtree"
)

// TestSuffixArray_Ababb checks the worked judge example (0-indexed here).
func TestSuffixArray_Ababb(t *testing.T) {
	sa, lcp := suffixtree.Build("ababb").SuffixArray()
	assert.Equal(t, []int{0, 2, 4, 1, 3}, sa)
	assert.Equal(t, []int{2, 0, 1, 1}, lcp)
}

// TestSuffixArray_Edges covers the empty and single-symbol texts.
func TestSuffixArray_Edges(t *testing.T) {
	sa, lcp := suffixtree.New().SuffixArray()
	assert.Empty(t, sa)
	assert.Empty(t, lcp)

	sa, lcp = suffixtree.Build("z").SuffixArray()
	assert.Equal(t, []int{0}, sa)
	assert.Empty(t, lcp)
}

// TestLongestCommonSubstring checks a few fixed pairs.
func TestLongestCommonSubstring(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"bababb", "zabacabba", "aba"},
		{"abc", "xyz", ""},
		{"", "abc", ""},
		{"xabcdexabcd", "abcd", "abcd"},
		{"aaaa", "aa", "aa"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, suffixtree.LongestCommonSubstring(c.a, c.b), "%q %q", c.a, c.b)
	}
	assert.Equal(t, "love", suffixtree.LongestCommonSubstring("LoveIs", "ilove", suffixtree.WithFoldCase()))
}

// TestLongestRepeat checks a fixed text.
func TestLongestRepeat(t *testing.T) {
	rep, ok := suffixtree.Build("banana").LongestRepeat()
	assert.True(t, ok)
	assert.Equal(t, "ana", rep.Text)
	assert.Equal(t, 3, rep.Length)
	assert.Equal(t, 2, rep.Count)
}
