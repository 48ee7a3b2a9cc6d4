package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stree/suffixtree"
)

// Config mirrors the YAML file. Pointer fields distinguish "unset" from false.
type Config struct {
	FoldCase   *bool  `yaml:"fold_case"`
	Trace      *bool  `yaml:"trace"`
	Verbose    *bool  `yaml:"verbose"`
	TableStyle string `yaml:"table_style"`
}

var tableStyles = map[string]table.Style{
	"default": table.StyleDefault,
	"light":   table.StyleLight,
	"rounded": table.StyleRounded,
	"bold":    table.StyleBold,
	"double":  table.StyleDouble,
}

// globals holds the persistent flags after the config file was merged in.
type globals struct {
	configPath string
	foldCase   bool
	trace      bool
	verbose    bool
	input      string
	output     string
	style      table.Style
}

// load reads the config file and applies every key whose flag was not set
// explicitly on the command line.
func (g *globals) load(cmd *cobra.Command) error {
	g.style = table.StyleDefault

	file, path, err := openConfig(g.configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if file == nil {
		return nil
	}
	defer file.Close()

	var cfg Config
	if err = yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	if g.verbose || (cfg.Verbose != nil && *cfg.Verbose) {
		logConfig(path)
	}

	flags := cmd.Flags()
	apply := func(name string, dst *bool, src *bool) {
		if src != nil && !flags.Changed(name) {
			*dst = *src
		}
	}
	apply("fold-case", &g.foldCase, cfg.FoldCase)
	apply("trace", &g.trace, cfg.Trace)
	apply("verbose", &g.verbose, cfg.Verbose)

	if cfg.TableStyle != "" {
		style, ok := tableStyles[cfg.TableStyle]
		if !ok {
			return fmt.Errorf("config: %s: %w %q", path, ErrUnknownStyle, cfg.TableStyle)
		}
		g.style = style
	}

	return nil
}

// openConfig opens the explicit path, or else $HOME/.stree/config.yaml
// (then config.yml). A missing default file is not an error.
func openConfig(explicit string) (io.ReadCloser, string, error) {
	if explicit != "" {
		file, err := os.Open(explicit)
		if err != nil {
			return nil, "", err
		}

		return file, explicit, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, "", nil
	}
	for _, name := range []string{"config.yaml", "config.yml"} {
		path := filepath.Join(homeDir, ".stree", name)
		file, err := os.Open(path)
		if err == nil {
			return file, path, nil
		}
		if !os.IsNotExist(err) {
			return nil, "", err
		}
	}

	return nil, "", nil
}

// treeOptions translates the global flags into suffixtree options.
func (g *globals) treeOptions(extra ...suffixtree.Option) []suffixtree.Option {
	var opts []suffixtree.Option
	if g.foldCase {
		opts = append(opts, suffixtree.WithFoldCase())
	}
	if g.trace {
		opts = append(opts, suffixtree.WithTrace(traceWriter{}))
	}

	return append(opts, extra...)
}
