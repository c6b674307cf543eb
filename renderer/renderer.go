// Package renderer turns analysis reports into markdown and CSV for
// downstream display.
package renderer

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/indexlab/cagr"
)

// RollingMarkdown renders a rolling CAGR report to a markdown string.
// The title names the analyzed series (index, scheme...).
func RollingMarkdown(title string, r *cagr.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Rolling CAGR Report: %s\n\n", title)
	fmt.Fprintf(&b, "%d-year windows, %d-day stride, from %s\n\n", r.WindowYears, r.StrideDays, r.AnalysisPeriod)

	fmt.Fprint(&b, "## Summary\n\n")
	fmt.Fprintln(&b, "| Windows | Valid | Average | Std Dev | Min | Max |")
	fmt.Fprintln(&b, "|---:|---:|---:|---:|---:|---:|")
	fmt.Fprintf(&b, "| %d | %d | %s | %s | %s | %s |\n\n",
		r.TotalWindows,
		r.ValidWindows,
		r.AverageCAGR,
		r.StdDevCAGR,
		r.MinCAGR,
		r.MaxCAGR,
	)

	fmt.Fprint(&b, "## Windows\n\n")
	fmt.Fprintln(&b, "| # | Start | End | Start Price | End Price | Years | CAGR |")
	fmt.Fprintln(&b, "|---:|:---|:---|---:|---:|---:|---:|")
	for _, w := range r.Windows {
		cagrCell := "NA"
		if w.Valid {
			cagrCell = w.CAGR.SignedString()
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %.2f | %.2f | %.2f | %s |\n",
			w.Index,
			w.StartDate,
			w.EndDate,
			w.StartPrice,
			w.EndPrice,
			w.Years,
			cagrCell,
		)
	}

	return b.String()
}

// MatrixMarkdown renders trailing-horizon CAGRs to a markdown table.
func MatrixMarkdown(title string, cells []cagr.MatrixCell) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Trailing CAGR: %s\n\n", title)
	fmt.Fprintln(&b, "| Horizon | From | CAGR |")
	fmt.Fprintln(&b, "|---:|:---|---:|")
	for _, c := range cells {
		if !c.Valid {
			fmt.Fprintf(&b, "| %dY | | NA |\n", c.Years)
			continue
		}
		fmt.Fprintf(&b, "| %dY | %s | %s |\n", c.Years, c.Start.Date, c.CAGR.SignedString())
	}

	return b.String()
}

// PointMarkdown renders a single point-to-point growth lookup.
func PointMarkdown(title string, res cagr.PointResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# CAGR: %s\n\n", title)
	fmt.Fprintf(&b, "From %s (%.2f) to %s (%.2f), %.2f years.\n\n", res.Start.Date, res.Start.Price, res.End.Date, res.End.Price, res.Years)
	if res.Valid {
		fmt.Fprintf(&b, "CAGR: **%s**\n", res.CAGR.SignedString())
	} else {
		fmt.Fprint(&b, "CAGR: not defined for these endpoints.\n")
	}

	return b.String()
}

// WindowsCSV writes the report's windows table as CSV, the format offered
// for download next to the rendered report.
func WindowsCSV(b *strings.Builder, r *cagr.Report) error {
	w := csv.NewWriter(b)
	if err := w.Write([]string{"window", "start_date", "end_date", "start_price", "end_price", "actual_years", "cagr"}); err != nil {
		return err
	}
	for _, win := range r.Windows {
		cagrCell := "NA"
		if win.Valid {
			cagrCell = strconv.FormatFloat(float64(win.CAGR), 'f', 2, 64)
		}
		record := []string{
			strconv.Itoa(win.Index),
			win.StartDate.String(),
			win.EndDate.String(),
			strconv.FormatFloat(win.StartPrice, 'f', 2, 64),
			strconv.FormatFloat(win.EndPrice, 'f', 2, 64),
			strconv.FormatFloat(win.Years, 'f', 2, 64),
			cagrCell,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
