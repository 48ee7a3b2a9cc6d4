package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stree/suffixtree"
)

// readPatterns parses "n, n patterns, text".
func readPatterns(r io.Reader) ([]string, string, error) {
	ws := newWords(r)
	n, err := ws.count("pattern count")
	if err != nil {
		return nil, "", err
	}
	patterns := make([]string, n)
	for i := range patterns {
		if patterns[i], err = ws.next(fmt.Sprintf("pattern %d", i+1)); err != nil {
			return nil, "", err
		}
	}
	text, err := ws.next("text")
	if err != nil {
		return nil, "", err
	}

	return patterns, text, nil
}

func countCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Count occurrences of each pattern in a text",
		Long: "Input: the number of patterns n, then n patterns, then the text.\n" +
			"Prints one occurrence count per pattern, in input order.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.run(cmd, func(r io.Reader, w *bufio.Writer) error {
				patterns, text, err := readPatterns(r)
				if err != nil {
					return fmt.Errorf("count: %w", err)
				}
				t := g.build(text, suffixtree.WithLeafCounts())
				for _, p := range patterns {
					if _, err = fmt.Fprintln(w, t.CountSubstring(p)); err != nil {
						return err
					}
				}

				return nil
			})
		},
	}
}

func searchCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "search",
		Short: "Report YES or NO for each pattern in a text",
		Long:  "Input: the number of patterns n, then n patterns, then the text.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.run(cmd, func(r io.Reader, w *bufio.Writer) error {
				patterns, text, err := readPatterns(r)
				if err != nil {
					return fmt.Errorf("search: %w", err)
				}
				t := g.build(text)
				for _, p := range patterns {
					if _, err = fmt.Fprintln(w, yesNo(t.HasSubstring(p))); err != nil {
						return err
					}
				}

				return nil
			})
		},
	}
}

func queryCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "query",
		Short: "Answer a stream of \"? word\" queries while \"A text\" lines grow the text",
		Long: "Each input line is either \"? <word>\", answered YES or NO, or \"A <text>\",\n" +
			"appended to the text. Matching ignores letter case.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.run(cmd, func(r io.Reader, w *bufio.Writer) error {
				t := suffixtree.New(g.treeOptions(suffixtree.WithFoldCase())...)
				lines := newLines(r)
				for n := 1; lines.Scan(); n++ {
					line := strings.TrimRight(lines.Text(), "\r")
					if line == "" {
						continue
					}
					if len(line) < 2 || line[1] != ' ' {
						return fmt.Errorf("query: line %d: %w %q", n, ErrUnknownQuery, line)
					}
					arg := line[2:]
					switch line[0] {
					case '?':
						if _, err := fmt.Fprintln(w, yesNo(t.HasSubstring(arg))); err != nil {
							return err
						}
					case 'A':
						t.AddText(arg)
					default:
						return fmt.Errorf("query: line %d: %w %q", n, ErrUnknownQuery, line)
					}
				}

				return lines.Err()
			})
		},
	}
}

func yesNo(ok bool) string {
	if ok {
		return "YES"
	}

	return "NO"
}
