// Command stree drives the suffixtree package from the command line: judge
// style tree dumps, substring counting and search, streaming queries, suffix
// arrays and text statistics.
//
// Every subcommand reads stdin (or --input) and writes stdout (or --output).
package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	g := new(globals)
	root := &cobra.Command{
		Use:           "stree",
		Version:       "v0.3.0",
		Short:         "stree answers substring questions with an online suffix tree",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.load(cmd)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&g.configPath, "config", "", "YAML config file (default $HOME/.stree/config.yaml)")
	flags.BoolVar(&g.foldCase, "fold-case", false, "ignore letter case in text and patterns")
	flags.BoolVar(&g.trace, "trace", false, "log every extension rule applied while building")
	flags.BoolVar(&g.verbose, "verbose", false, "log tree size and build time")
	flags.StringVarP(&g.input, "input", "i", "", "read from `FILE` instead of stdin")
	flags.StringVarP(&g.output, "output", "o", "", "write to `FILE` instead of stdout")

	root.AddCommand(
		treeCommand(g),
		distinctCommand(g),
		suffixArrayCommand(g),
		lcsCommand(g),
		countCommand(g),
		searchCommand(g),
		queryCommand(g),
		statsCommand(g),
	)

	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logFatal(err)
	}
}
