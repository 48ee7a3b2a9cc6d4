package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/katalvlaran/stree/suffixtree"
)

var logger = log.New(os.Stderr, boldGreen("[stree] "), log.LstdFlags)

var (
	boldWhite = color.New(color.FgHiWhite, color.Bold).SprintfFunc()
	boldGreen = color.New(color.FgGreen, color.Bold).SprintfFunc()
	boldRed   = color.New(color.FgRed, color.Bold).SprintfFunc()
	yellow    = color.New(color.FgYellow).SprintfFunc()
)

func logBuild(t *suffixtree.Tree, elapsed time.Duration) {
	logger.Printf("%s %d symbols, %d nodes, %d edges in %.3fs\n",
		boldWhite("built"),
		t.Len(),
		t.NodeCount(),
		t.EdgeCount(),
		float64(elapsed)/float64(time.Second),
	)
}

func logConfig(path string) {
	logger.Printf("%s %s\n", boldWhite("config"), path)
}

// traceWriter forwards suffixtree trace lines to the logger.
type traceWriter struct{}

func (traceWriter) Write(p []byte) (int, error) {
	for _, line := range bytes.Split(bytes.TrimRight(p, "\n"), []byte("\n")) {
		logger.Println(yellow("%s", line))
	}

	return len(p), nil
}

func logFatal(err error) {
	if errorMsg := err.Error(); errorMsg != "" {
		for _, line := range strings.Split(errorMsg, "\n") {
			fmt.Fprintln(os.Stderr, boldRed("%s", line))
		}
	}
	os.Exit(2)
}
