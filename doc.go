// Package stree is your in-memory toolkit for substring questions over a
// growing text, built on an online suffix tree.
//
// 🚀 What is stree?
//
//	A Go module that brings together:
//		• Ukkonen construction: Append one symbol at a time, amortized O(1)
//		• Substring queries: existence and occurrence counts in O(|p|)
//		• Text statistics: distinct substrings, repeatness, longest repeat
//		• Derived views: suffix array + LCP, longest common substring
//		• Judge drivers: the cmd/stree CLI with exact output formats
//
// ✨ Why choose stree?
//
//   - Online – keep appending text between queries, no rebuilds
//   - Exact judge format – WriteTo reproduces the classic tree dump
//   - Pure Go core – the suffixtree package has no third-party imports
//   - Extensible – Walk with OnVisit/OnExit hooks for custom passes
//
// Layout:
//
//	suffixtree/  Tree, arena, insertion engine, leaf counts, queries, Walk
//	cmd/stree/   cobra CLI (tree, distinct, sa, lcs, count, search, query, stats)
//
// Quick example:
//
//	t := suffixtree.Build("ababb")
//	t.CountDistinctSubstrings() // 11
//
//	go install github.com/katalvlaran/stree/cmd/stree@latest
package stree
