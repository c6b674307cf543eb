package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/indexlab/cagr"
	"github.com/indexlab/cagr/date"
	"github.com/indexlab/cagr/renderer"
)

// rollingCmd holds the flags for the 'rolling' subcommand.
type rollingCmd struct {
	file       string
	scheme     int64
	years      int
	stride     int
	start      string
	startAlign string
	endAlign   string
	format     string
}

func (*rollingCmd) Name() string     { return "rolling" }
func (*rollingCmd) Synopsis() string { return "rolling CAGR analysis of a price series" }
func (*rollingCmd) Usage() string {
	return `rca rolling [-f <file> | -scheme <code>] [-years <n>] [-stride <days>] [-s <date>] [-o <format>]

  Slides fixed-length windows over the series and reports the CAGR
  distribution across them.
`
}

func (c *rollingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Price series file (JSONL format)")
	f.Int64Var(&c.scheme, "scheme", 0, "api.mfapi.in scheme code to analyze")
	f.IntVar(&c.years, "years", cagr.DefaultWindowYears, "Window length in years")
	f.IntVar(&c.stride, "stride", cagr.DefaultStrideDays, "Days between consecutive window starts")
	f.StringVar(&c.start, "s", "", "First window start date (defaults to the first observation)")
	f.StringVar(&c.startAlign, "start-align", cagr.Floor.String(), "Window start alignment (floor, ceiling)")
	f.StringVar(&c.endAlign, "end-align", cagr.Floor.String(), "Window end alignment (floor, ceiling)")
	f.StringVar(&c.format, "o", "md", "Output format (md, json, csv)")
}

func (c *rollingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	params := cagr.Params{WindowYears: c.years, StrideDays: c.stride}

	var err error
	if params.StartAlignment, err = cagr.ParseAlignment(c.startAlign); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -start-align: %v\n", err)
		return subcommands.ExitUsageError
	}
	if params.EndAlignment, err = cagr.ParseAlignment(c.endAlign); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -end-align: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.start != "" {
		if params.StartDate, err = date.Parse(c.start); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	title, series, err := loadSeries(c.file, c.scheme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading series: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := cagr.Analyze(series, params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing series: %v\n", err)
		return subcommands.ExitFailure
	}

	switch c.format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			return subcommands.ExitFailure
		}
	case "csv":
		var b strings.Builder
		if err := renderer.WindowsCSV(&b, report); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Print(b.String())
	case "md":
		printMarkdown(renderer.RollingMarkdown(title, report))
	default:
		fmt.Fprintf(os.Stderr, "Unknown output format %q\n", c.format)
		return subcommands.ExitUsageError
	}

	return subcommands.ExitSuccess
}
