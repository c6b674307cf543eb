package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/indexlab/cagr"
	"github.com/indexlab/cagr/renderer"
)

// matrixCmd holds the flags for the 'matrix' subcommand.
type matrixCmd struct {
	file   string
	scheme int64
	years  int
}

func (*matrixCmd) Name() string     { return "matrix" }
func (*matrixCmd) Synopsis() string { return "trailing CAGR over increasing horizons" }
func (*matrixCmd) Usage() string {
	return `rca matrix [-f <file> | -scheme <code>] [-years <n>]

  Reports the trailing CAGR ending at the last observation for every
  horizon from 1 year up to -years.
`
}

func (c *matrixCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Price series file (JSONL format)")
	f.Int64Var(&c.scheme, "scheme", 0, "api.mfapi.in scheme code to analyze")
	f.IntVar(&c.years, "years", 10, "Longest trailing horizon in years")
}

func (c *matrixCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.years < 1 {
		fmt.Fprintln(os.Stderr, "-years must be at least 1")
		return subcommands.ExitUsageError
	}

	title, series, err := loadSeries(c.file, c.scheme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading series: %v\n", err)
		return subcommands.ExitFailure
	}

	cells := cagr.Matrix(series, c.years)
	printMarkdown(renderer.MatrixMarkdown(title, cells))
	return subcommands.ExitSuccess
}
