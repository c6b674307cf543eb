package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/indexlab/cagr"
	"github.com/indexlab/cagr/date"
	"github.com/indexlab/cagr/renderer"
)

// cagrCmd holds the flags for the 'cagr' subcommand.
type cagrCmd struct {
	file   string
	scheme int64
	from   string
	to     string
}

func (*cagrCmd) Name() string     { return "cagr" }
func (*cagrCmd) Synopsis() string { return "point-to-point CAGR between two dates" }
func (*cagrCmd) Usage() string {
	return `rca cagr [-f <file> | -scheme <code>] -from <date> [-to <date>]

  Computes the annualized growth rate between two dates of the series.
  Dates are aligned to actual observations: the start to the latest
  observation on or before it, the end to the nearest observation.
`
}

func (c *cagrCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Price series file (JSONL format)")
	f.Int64Var(&c.scheme, "scheme", 0, "api.mfapi.in scheme code to analyze")
	f.StringVar(&c.from, "from", "", "Start date of the growth period")
	f.StringVar(&c.to, "to", date.Today().String(), "End date of the growth period")
}

func (c *cagrCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" {
		fmt.Fprintln(os.Stderr, "-from flag is required")
		return subcommands.ExitUsageError
	}
	from, err := date.Parse(c.from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -from date: %v\n", err)
		return subcommands.ExitUsageError
	}
	to, err := date.Parse(c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -to date: %v\n", err)
		return subcommands.ExitUsageError
	}

	title, series, err := loadSeries(c.file, c.scheme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading series: %v\n", err)
		return subcommands.ExitFailure
	}

	res, err := cagr.PointCAGR(series, from, to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing CAGR: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PointMarkdown(title, res))
	return subcommands.ExitSuccess
}
