package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stree/suffixtree"
)

func treeCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the suffix tree of a text in judge format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.run(cmd, func(r io.Reader, w *bufio.Writer) error {
				text, err := newWords(r).next("text")
				if err != nil {
					return fmt.Errorf("tree: %w", err)
				}
				_, err = g.build(text).WriteTo(w)

				return err
			})
		},
	}
}

func distinctCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "distinct",
		Short: "Count the distinct non-empty substrings of a text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.run(cmd, func(r io.Reader, w *bufio.Writer) error {
				text, err := newWords(r).next("text")
				if err != nil {
					return fmt.Errorf("distinct: %w", err)
				}
				_, err = fmt.Fprintln(w, g.build(text).CountDistinctSubstrings())

				return err
			})
		},
	}
}

func suffixArrayCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "sa",
		Short: "Print the suffix array (1-indexed) and neighbouring LCP values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.run(cmd, func(r io.Reader, w *bufio.Writer) error {
				text, err := newWords(r).next("text")
				if err != nil {
					return fmt.Errorf("sa: %w", err)
				}
				sa, lcp := g.build(text, suffixtree.WithLeafCounts()).SuffixArray()
				for i := range sa {
					sa[i]++
				}
				if _, err = fmt.Fprintln(w, joinInts(sa)); err != nil {
					return err
				}
				_, err = fmt.Fprintln(w, joinInts(lcp))

				return err
			})
		},
	}
}

func lcsCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "lcs",
		Short: "Print the longest common substring of two texts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.run(cmd, func(r io.Reader, w *bufio.Writer) error {
				ws := newWords(r)
				first, err := ws.next("first text")
				if err != nil {
					return fmt.Errorf("lcs: %w", err)
				}
				second, err := ws.next("second text")
				if err != nil {
					return fmt.Errorf("lcs: %w", err)
				}
				_, err = fmt.Fprintln(w, suffixtree.LongestCommonSubstring(first, second, g.treeOptions()...))

				return err
			})
		},
	}
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, " ")
}
