package suffixtree_test

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/stree/suffixtree"
)

// PropertySuite compares every query against brute force on random texts.
type PropertySuite struct {
	suite.Suite
	rng   *rand.Rand
	texts []string
}

// SetupSuite draws the random corpus once; the fixed seed keeps runs stable.
func (s *PropertySuite) SetupSuite() {
	s.rng = rand.New(rand.NewSource(42))
	for _, alphabet := range []string{"ab", "abc", "abcd"} {
		for i := 0; i < 60; i++ {
			s.texts = append(s.texts, randomText(s.rng, alphabet, s.rng.Intn(21)))
		}
	}
	s.texts = append(s.texts, "", "a", "aaaaaaaaaaaaaaaaaaaa", "abababababababababab")
}

func randomText(rng *rand.Rand, alphabet string, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}

	return string(b)
}

// substrings returns every distinct non-empty substring of s.
func substrings(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for i := 0; i < len(s); i++ {
		for j := i + 1; j <= len(s); j++ {
			set[s[i:j]] = struct{}{}
		}
	}

	return set
}

// occurrences counts starting positions of p in s, overlaps included.
func occurrences(s, p string) int {
	c := 0
	for i := 0; i+len(p) <= len(s); i++ {
		if s[i:i+len(p)] == p {
			c++
		}
	}

	return c
}

// TestDistinctMatchesBruteForce verifies CountDistinctSubstrings.
func (s *PropertySuite) TestDistinctMatchesBruteForce() {
	for _, text := range s.texts {
		tr := suffixtree.Build(text)
		s.Equal(uint64(len(substrings(text))), tr.CountDistinctSubstrings(), "text %q", text)
	}
}

// TestHasAndCountMatchBruteForce verifies every substring is found and
// counted, and that random absent patterns miss.
func (s *PropertySuite) TestHasAndCountMatchBruteForce() {
	for _, text := range s.texts {
		tr := suffixtree.Build(text)
		for p := range substrings(text) {
			s.True(tr.HasSubstring(p), "text %q pattern %q", text, p)
			s.Equal(occurrences(text, p), tr.CountSubstring(p), "text %q pattern %q", text, p)
		}
		for i := 0; i < 10; i++ {
			p := randomText(s.rng, "abcde", 1+s.rng.Intn(6))
			want := strings.Contains(text, p)
			s.Equal(want, tr.HasSubstring(p), "text %q pattern %q", text, p)
			s.Equal(occurrences(text, p), tr.CountSubstring(p), "text %q pattern %q", text, p)
		}
	}
}

// TestOnlineGrowthMatchesBruteForce verifies queries after every Append,
// interleaved with count queries. Each count finalizes, so the text seen by
// later queries is a list of sentinel-separated segments.
func (s *PropertySuite) TestOnlineGrowthMatchesBruteForce() {
	for _, text := range s.texts[:40] {
		tr := suffixtree.New()
		var done []string
		cur := ""
		for i, r := range text {
			tr.Append(r)
			cur += string(r)
			p := cur[s.rng.Intn(len(cur)):]
			s.True(tr.HasSubstring(p), "segments %q+%q pattern %q", done, cur, p)
			if i%3 != 0 {
				continue
			}
			want := occurrences(cur, p)
			for _, d := range done {
				want += occurrences(d, p)
			}
			s.Equal(want, tr.CountSubstring(p), "segments %q+%q pattern %q", done, cur, p)
			done = append(done, cur)
			cur = ""
		}
	}
}

// TestSuffixArrayMatchesBruteForce verifies SA and LCP against sorting.
func (s *PropertySuite) TestSuffixArrayMatchesBruteForce() {
	for _, text := range s.texts {
		want := make([]int, len(text))
		for i := range want {
			want[i] = i
		}
		sort.Slice(want, func(i, j int) bool { return text[want[i]:] < text[want[j]:] })
		wantLCP := make([]int, 0, len(text))
		for i := 1; i < len(want); i++ {
			a, b := text[want[i-1]:], text[want[i]:]
			k := 0
			for k < len(a) && k < len(b) && a[k] == b[k] {
				k++
			}
			wantLCP = append(wantLCP, k)
		}

		sa, lcp := suffixtree.Build(text).SuffixArray()
		s.Equal(want, sa, "text %q", text)
		s.Equal(wantLCP, lcp, "text %q", text)
	}
}

// TestLongestRepeatMatchesBruteForce verifies LongestRepeat.
func (s *PropertySuite) TestLongestRepeatMatchesBruteForce() {
	for _, text := range s.texts {
		best := ""
		for p := range substrings(text) {
			if occurrences(text, p) < 2 {
				continue
			}
			if len(p) > len(best) || (len(p) == len(best) && p < best) {
				best = p
			}
		}

		tr := suffixtree.Build(text)
		rep, ok := tr.LongestRepeat()
		if best == "" {
			s.False(ok, "text %q", text)
			continue
		}
		s.Require().True(ok, "text %q", text)
		s.Equal(best, rep.Text, "text %q", text)
		s.Equal(len(best), rep.Length)
		s.Equal(occurrences(text, best), rep.Count, "text %q", text)
		s.Equal(best, text[rep.Start:rep.Start+rep.Length], "text %q", text)
	}
}

// TestLongestCommonMatchesBruteForce verifies LongestCommonSubstring.
func (s *PropertySuite) TestLongestCommonMatchesBruteForce() {
	for i := 0; i+1 < len(s.texts); i += 2 {
		a, b := s.texts[i], s.texts[i+1]
		best := ""
		for p := range substrings(a) {
			if !strings.Contains(b, p) {
				continue
			}
			if len(p) > len(best) || (len(p) == len(best) && p < best) {
				best = p
			}
		}
		s.Equal(best, suffixtree.LongestCommonSubstring(a, b), "a %q b %q", a, b)
	}
}

// TestRefinalizeKeepsCounts verifies counts over a text built in chunks
// with a Finalize after each chunk.
func (s *PropertySuite) TestRefinalizeKeepsCounts() {
	for i := 0; i+2 < len(s.texts) && i < 60; i += 3 {
		chunks := s.texts[i : i+3]
		tr := suffixtree.New()
		for _, c := range chunks {
			tr.AddText(c)
			tr.Finalize()
		}
		for _, c := range chunks {
			for p := range substrings(c) {
				want := 0
				for _, d := range chunks {
					want += occurrences(d, p)
				}
				s.Equal(want, tr.CountSubstring(p), "chunks %q pattern %q", chunks, p)
			}
		}
		var distinct = make(map[string]struct{})
		for _, c := range chunks {
			for p := range substrings(c) {
				distinct[p] = struct{}{}
			}
		}
		s.Equal(uint64(len(distinct)), tr.CountDistinctSubstrings(), "chunks %q", chunks)
	}
}

// TestPropertySuite runs PropertySuite.
func TestPropertySuite(t *testing.T) {
	suite.Run(t, new(PropertySuite))
}

// TestRepeatness checks the ratio on two extremes.
func TestRepeatness(t *testing.T) {
	require.InDelta(t, 1.0, suffixtree.Build("abcde").Repeatness(), 1e-12)
	require.InDelta(t, 5.0/15.0, suffixtree.Build("aaaaa").Repeatness(), 1e-12)
}
