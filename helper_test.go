package cagr

import (
	"testing"
	"time"

	"github.com/indexlab/cagr/date"
)

// dailySeries builds a series with one observation per day from 'from' to
// 'to' included, pricing day i (0-based) with the given function.
func dailySeries(t *testing.T, from, to date.Date, price func(i int) float64) *Series {
	t.Helper()
	n := from.DaysUntil(to)
	if n < 0 {
		t.Fatalf("inverted range %s..%s", from, to)
	}
	obs := make([]Observation, 0, n+1)
	for i := 0; i <= n; i++ {
		obs = append(obs, Observation{Date: from.Add(i), Price: price(i)})
	}
	s, err := NewSeries(obs)
	if err != nil {
		t.Fatalf("NewSeries() error = %v", err)
	}
	return s
}

// sparseSeries builds a series from (date string, price) pairs.
func sparseSeries(t *testing.T, points map[string]float64) *Series {
	t.Helper()
	obs := make([]Observation, 0, len(points))
	for d, p := range points {
		obs = append(obs, Observation{Date: date.MustParse(d), Price: p})
	}
	s, err := NewSeries(obs)
	if err != nil {
		t.Fatalf("NewSeries() error = %v", err)
	}
	return s
}

func day(y int, m time.Month, d int) date.Date { return date.New(y, m, d) }

func mustDay(t *testing.T, s string) date.Date {
	t.Helper()
	d, err := date.Parse(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}
