// Package cmd implements the CLI application to run CAGR analyses.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/indexlab/cagr"
	"github.com/indexlab/cagr/mfapi"
)

// Commands lists the subcommands a main package registers.
var Commands = []subcommands.Command{
	&rollingCmd{},
	&cagrCmd{},
	&matrixCmd{},
	&fetchCmd{},
	&topicCmd{},
}

// loadSeries opens the price series a subcommand operates on, either a local
// JSONL file or an mfapi.in scheme. It returns a display title for the series.
func loadSeries(file string, scheme int64) (string, *cagr.Series, error) {
	switch {
	case file != "" && scheme != 0:
		return "", nil, fmt.Errorf("-f and -scheme flags cannot be used together")
	case scheme != 0:
		info, series, err := mfapi.Fetch(scheme)
		if err != nil {
			return "", nil, fmt.Errorf("cannot fetch scheme %d: %w", scheme, err)
		}
		return info.Name, series, nil
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			return "", nil, err
		}
		defer f.Close()
		series, err := cagr.DecodeSeries(file, f)
		if err != nil {
			return "", nil, err
		}
		return file, series, nil
	default:
		return "", nil, fmt.Errorf("a series is required: use -f <file> or -scheme <code>")
	}
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// Fall back to the raw markdown.
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
