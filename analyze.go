package cagr

import (
	"fmt"
	"math"

	"github.com/indexlab/cagr/date"
)

// Default analysis parameters.
const (
	DefaultWindowYears = 5
	DefaultStrideDays  = 30
)

// Params configures a rolling CAGR analysis.
type Params struct {
	// WindowYears is the length of each rolling window in years.
	WindowYears int
	// StrideDays is the number of calendar days the anchor advances
	// between successive windows.
	StrideDays int
	// StartDate is the first window anchor. The series' earliest date is
	// used when zero.
	StartDate date.Date
	// StartAlignment and EndAlignment map window boundaries to actual
	// observations. Both default to Floor; EndAlignment set to Ceiling
	// reproduces sources that pick the first observation past the window
	// end.
	StartAlignment Alignment
	EndAlignment   Alignment
}

func (p *Params) setDefaults() {
	if p.WindowYears <= 0 {
		p.WindowYears = DefaultWindowYears
	}
	if p.StrideDays <= 0 {
		p.StrideDays = DefaultStrideDays
	}
}

func (p Params) validate() error {
	if p.StartAlignment == Nearest || p.EndAlignment == Nearest {
		return fmt.Errorf("nearest alignment is for single-point lookups, not window boundaries")
	}
	return nil
}

// Window is one realized rolling analysis interval.
type Window struct {
	Index      int // 1-based ordinal
	StartDate  date.Date
	EndDate    date.Date
	StartPrice float64
	EndPrice   float64
	Years      float64 // realized elapsed years between the resolved dates
	CAGR       Percent
	Valid      bool // false when the CAGR preconditions were not met
}

// Report is the result of a rolling CAGR analysis.
type Report struct {
	WindowYears int
	StrideDays  int
	StartDate   date.Date

	Windows      []Window
	TotalWindows int // all emitted windows
	ValidWindows int // windows contributing to the statistics

	AverageCAGR Percent
	StdDevCAGR  Percent
	MinCAGR     Percent
	MaxCAGR     Percent

	// AnalysisPeriod spans from the first window's start to the last
	// window's end.
	AnalysisPeriod date.Range
}

// Analyze runs a full rolling-window pass over the series and folds the
// results into aggregate statistics. It is a pure function of its inputs:
// two calls with the same series and parameters produce identical
// reports.
//
// Failures are reported through the package error taxonomy
// (ErrInsufficientData, ErrNoWindowsPossible, ErrNoValidCAGR); resolution
// failures on individual windows are absorbed, never propagated raw.
func Analyze(s *Series, p Params) (*Report, error) {
	if s == nil || s.Len() < 2 {
		return nil, ErrInsufficientData
	}
	p.setDefaults()
	if err := p.validate(); err != nil {
		return nil, err
	}

	start := p.StartDate
	if start.IsZero() {
		start = s.First().Date
	}

	var wins []Window
	var valid []float64
	for sp := range windows(s, p.WindowYears, p.StrideDays, start) {
		so, err := s.Resolve(sp.anchor, p.StartAlignment)
		if err != nil {
			continue
		}
		eo, err := s.Resolve(sp.target, p.EndAlignment)
		if err != nil {
			continue
		}

		years := so.Date.YearsUntil(eo.Date)
		if years < float64(p.WindowYears)*minYearsRatio {
			// Realized span too short, typically a window truncated by the
			// end of available data.
			continue
		}

		w := Window{
			Index:      len(wins) + 1,
			StartDate:  so.Date,
			EndDate:    eo.Date,
			StartPrice: so.Price,
			EndPrice:   eo.Price,
			Years:      years,
		}
		if c, ok := CAGR(so.Price, eo.Price, years); ok {
			w.CAGR = c
			w.Valid = true
			valid = append(valid, float64(c))
		}
		wins = append(wins, w)
	}

	if len(wins) == 0 {
		return nil, fmt.Errorf("%d-year window, %d-day stride over %s: %w",
			p.WindowYears, p.StrideDays, s.Span(), ErrNoWindowsPossible)
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("%d windows emitted: %w", len(wins), ErrNoValidCAGR)
	}

	report := &Report{
		WindowYears:    p.WindowYears,
		StrideDays:     p.StrideDays,
		StartDate:      start,
		Windows:        wins,
		TotalWindows:   len(wins),
		ValidWindows:   len(valid),
		AnalysisPeriod: date.Range{From: wins[0].StartDate, To: wins[len(wins)-1].EndDate},
	}
	report.AverageCAGR, report.StdDevCAGR = meanStdDev(valid)
	report.MinCAGR, report.MaxCAGR = extremes(valid)
	return report, nil
}

// meanStdDev returns the arithmetic mean and the population standard
// deviation (divide by N) of values. values must not be empty.
func meanStdDev(values []float64) (mean, stddev Percent) {
	var sum float64
	for _, v := range values {
		sum += v
	}
	m := sum / float64(len(values))

	var sq float64
	for _, v := range values {
		sq += (v - m) * (v - m)
	}
	return Percent(m), Percent(math.Sqrt(sq / float64(len(values))))
}

func extremes(values []float64) (min, max Percent) {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return Percent(lo), Percent(hi)
}
