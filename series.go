// Package cagr computes rolling Compound Annual Growth Rate analyses
// over date-ordered price series.
package cagr

import (
	"fmt"
	"iter"
	"slices"

	"github.com/indexlab/cagr/date"
)

// Observation is a single price point in a series.
type Observation struct {
	Date  date.Date
	Price float64
}

// Series is an immutable, date-ordered sequence of price observations.
// Dates are strictly increasing, with no duplicates.
type Series struct {
	obs []Observation
}

// NewSeries builds a Series from observations. The input is copied and
// sorted chronologically. It returns an error on duplicate dates or
// non-positive prices, so that a constructed Series is always usable.
func NewSeries(obs []Observation) (*Series, error) {
	sorted := slices.Clone(obs)
	slices.SortFunc(sorted, func(a, b Observation) int { return a.Date.Compare(b.Date) })
	for i, o := range sorted {
		if o.Price <= 0 {
			return nil, fmt.Errorf("invalid price %v on %s: price must be positive", o.Price, o.Date)
		}
		if i > 0 && o.Date == sorted[i-1].Date {
			return nil, fmt.Errorf("duplicate observation on %s", o.Date)
		}
	}
	return &Series{obs: sorted}, nil
}

// Len returns the number of observations in the series.
func (s *Series) Len() int { return len(s.obs) }

// At returns the i-th observation in chronological order.
func (s *Series) At(i int) Observation { return s.obs[i] }

// First returns the earliest observation. The series must not be empty.
func (s *Series) First() Observation { return s.obs[0] }

// Last returns the latest observation. The series must not be empty.
func (s *Series) Last() Observation { return s.obs[len(s.obs)-1] }

// Span returns the date range covered by the series.
func (s *Series) Span() date.Range {
	return date.Range{From: s.First().Date, To: s.Last().Date}
}

// Observations returns an iterator over all observations in chronological order.
func (s *Series) Observations() iter.Seq[Observation] {
	return func(yield func(Observation) bool) {
		for _, o := range s.obs {
			if !yield(o) {
				return
			}
		}
	}
}

// search locates target in the series. It returns the index of the exact
// match and true, or the insertion index and false.
func (s *Series) search(target date.Date) (int, bool) {
	return slices.BinarySearchFunc(s.obs, target, func(o Observation, t date.Date) int {
		return o.Date.Compare(t)
	})
}

// Resolve maps a target date to an actual observation under the given
// alignment policy. It returns ErrNoObservationInRange when no observation
// satisfies the policy relative to the target.
func (s *Series) Resolve(target date.Date, policy Alignment) (Observation, error) {
	if len(s.obs) == 0 {
		return Observation{}, fmt.Errorf("empty series resolving %s: %w", target, ErrNoObservationInRange)
	}
	i, found := s.search(target)
	if found {
		return s.obs[i], nil
	}
	// i is the insertion index: obs[i-1] is the last observation before
	// target, obs[i] the first after.
	switch policy {
	case Floor:
		if i == 0 {
			return Observation{}, fmt.Errorf("no observation on or before %s: %w", target, ErrNoObservationInRange)
		}
		return s.obs[i-1], nil
	case Ceiling:
		if i == len(s.obs) {
			return Observation{}, fmt.Errorf("no observation on or after %s: %w", target, ErrNoObservationInRange)
		}
		return s.obs[i], nil
	case Nearest:
		switch i {
		case 0:
			return s.obs[0], nil
		case len(s.obs):
			return s.obs[len(s.obs)-1], nil
		}
		before, after := s.obs[i-1], s.obs[i]
		// Ties go to the earlier observation.
		if target.DaysUntil(after.Date) < before.Date.DaysUntil(target) {
			return after, nil
		}
		return before, nil
	default:
		return Observation{}, fmt.Errorf("unknown alignment policy %d", policy)
	}
}
