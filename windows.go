package cagr

import (
	"iter"

	"github.com/indexlab/cagr/date"
)

// Completeness tolerances for rolling windows.
const (
	// minSpanRatio is the share of the requested window, in days, that the
	// series' remaining span must still cover for a candidate window to be
	// emitted. The slack absorbs weekends and holidays at the series tail.
	minSpanRatio = 0.98
	// minYearsRatio is the share of the requested window, in elapsed
	// years, that a realized window must cover to be kept.
	minYearsRatio = 0.90
)

// span is a candidate rolling window: the desired anchor and end dates,
// before resolution to actual observations.
type span struct {
	anchor date.Date
	target date.Date
}

// windowDays returns the requested window length in whole days.
func windowDays(windowYears int) int {
	return int(float64(windowYears) * date.DaysPerYear)
}

// windows walks the series forward in fixed day strides and yields
// candidate window boundaries. The sequence is finite and lazily
// produced; iterating again re-walks from the beginning.
//
// A candidate is emitted only while the series' remaining span covers at
// least minSpanRatio of the requested window. A target end beyond the
// last observation is clamped to it, so trailing truncated windows are
// still attempted (the analyzer applies the minYearsRatio gate on the
// realized span). The walk stops once no further full window is
// geometrically possible.
func windows(s *Series, windowYears, strideDays int, start date.Date) iter.Seq[span] {
	return func(yield func(span) bool) {
		last := s.Last().Date
		days := windowDays(windowYears)
		anchor := start
		for {
			remaining := anchor.DaysUntil(last)
			if float64(remaining) < float64(days)*minSpanRatio {
				return
			}
			target := anchor.Add(days)
			if target.After(last) {
				target = last
			}
			if !yield(span{anchor: anchor, target: target}) {
				return
			}
			anchor = anchor.Add(strideDays)
			if float64(anchor.DaysUntil(last)) <= float64(days)*minYearsRatio {
				return
			}
		}
	}
}
