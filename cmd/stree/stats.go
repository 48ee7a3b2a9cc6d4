package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	"github.com/katalvlaran/stree/suffixtree"
)

func init() {
	runewidth.EastAsianWidth = true
	text.OverrideRuneWidthEastAsianWidth(true)
}

// stats is what the stats command reports about one text.
type stats struct {
	length     int
	nodes      int
	edges      int
	distinct   uint64
	repeatness float64
	repeat     suffixtree.Repeat
	hasRepeat  bool
}

func collectStats(t *suffixtree.Tree) stats {
	repeat, ok := t.LongestRepeat()

	return stats{
		length:     t.Len() - t.Sentinels(),
		nodes:      t.NodeCount(),
		edges:      t.EdgeCount(),
		distinct:   t.CountDistinctSubstrings(),
		repeatness: t.Repeatness(),
		repeat:     repeat,
		hasRepeat:  ok,
	}
}

func (s stats) json() ([]byte, error) {
	doc := []byte(`{}`)
	var err error
	set := func(path string, value any) {
		if err == nil {
			doc, err = sjson.SetBytes(doc, path, value)
		}
	}
	set("length", s.length)
	set("nodes", s.nodes)
	set("edges", s.edges)
	set("distinct", s.distinct)
	set("repeatness", s.repeatness)
	if s.hasRepeat {
		set("longest_repeat.text", s.repeat.Text)
		set("longest_repeat.start", s.repeat.Start)
		set("longest_repeat.length", s.repeat.Length)
		set("longest_repeat.count", s.repeat.Count)
	} else {
		set("longest_repeat", nil)
	}

	return doc, err
}

func (s stats) render(w io.Writer, style table.Style) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(style)
	tw.AppendHeader(table.Row{"metric", "value"})
	tw.AppendRow(table.Row{"length", s.length})
	tw.AppendRow(table.Row{"nodes", s.nodes})
	tw.AppendRow(table.Row{"edges", s.edges})
	tw.AppendRow(table.Row{"distinct substrings", s.distinct})
	tw.AppendRow(table.Row{"repeatness", strconv.FormatFloat(s.repeatness, 'f', 4, 64)})
	if s.hasRepeat {
		tw.AppendSeparator()
		tw.AppendRow(table.Row{"longest repeat", s.repeat.Text})
		tw.AppendRow(table.Row{"  at", s.repeat.Start + 1})
		tw.AppendRow(table.Row{"  occurrences", s.repeat.Count})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	tw.Render()
}

func statsCommand(g *globals) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the suffix tree of a text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.run(cmd, func(r io.Reader, w *bufio.Writer) error {
				input, err := newWords(r).next("text")
				if err != nil {
					return fmt.Errorf("stats: %w", err)
				}
				s := collectStats(g.build(input, suffixtree.WithLeafCounts()))
				if !asJSON {
					s.render(w, g.style)

					return nil
				}
				doc, err := s.json()
				if err != nil {
					return fmt.Errorf("stats: %w", err)
				}
				_, err = fmt.Fprintf(w, "%s\n", doc)

				return err
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print a JSON document instead of a table")

	return cmd
}
