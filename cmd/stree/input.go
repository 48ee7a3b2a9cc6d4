package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stree/suffixtree"
)

var (
	// ErrBadInput indicates input that does not follow the command's format.
	ErrBadInput = errors.New("bad input")

	// ErrUnknownQuery indicates a query line other than "? word" or "A text".
	ErrUnknownQuery = errors.New("unknown query")

	// ErrUnknownStyle indicates a table_style the renderer does not know.
	ErrUnknownStyle = errors.New("unknown table style")
)

// maxToken bounds one input token; judge texts reach 10^6 symbols.
const maxToken = 16 << 20

// run opens the command's input and output, calls fn and flushes.
func (g *globals) run(cmd *cobra.Command, fn func(r io.Reader, w *bufio.Writer) error) (err error) {
	var r io.Reader = cmd.InOrStdin()
	if g.input != "" {
		in, openErr := os.Open(g.input)
		if openErr != nil {
			return openErr
		}
		defer in.Close()
		r = in
	}

	var out io.Writer = cmd.OutOrStdout()
	if g.output != "" {
		file, createErr := os.Create(g.output)
		if createErr != nil {
			return createErr
		}
		defer func() {
			if closeErr := file.Close(); err == nil {
				err = closeErr
			}
		}()
		out = file
	}

	w := bufio.NewWriter(out)
	if err = fn(r, w); err != nil {
		return err
	}

	return w.Flush()
}

// build constructs a tree over text and logs it when verbose.
func (g *globals) build(text string, extra ...suffixtree.Option) *suffixtree.Tree {
	started := time.Now()
	t := suffixtree.Build(text, g.treeOptions(extra...)...)
	if g.verbose {
		logBuild(t, time.Since(started))
	}

	return t
}

// words splits input on white space.
type words struct {
	sc *bufio.Scanner
}

func newWords(r io.Reader) *words {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxToken)
	sc.Split(bufio.ScanWords)

	return &words{sc: sc}
}

// next returns the next word; what names it in the error.
func (ws *words) next(what string) (string, error) {
	if ws.sc.Scan() {
		return ws.sc.Text(), nil
	}
	if err := ws.sc.Err(); err != nil {
		return "", err
	}

	return "", fmt.Errorf("%w: missing %s", ErrBadInput, what)
}

// count reads a non-negative integer.
func (ws *words) count(what string) (int, error) {
	s, err := ws.next(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s %q is not a count", ErrBadInput, what, s)
	}

	return n, nil
}

// newLines returns a line scanner sized for long "A text" lines.
func newLines(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxToken)

	return sc
}
