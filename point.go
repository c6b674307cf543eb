package cagr

import (
	"fmt"

	"github.com/indexlab/cagr/date"
)

// PointResult is the growth realized between two resolved observations.
type PointResult struct {
	Start Observation
	End   Observation
	Years float64
	CAGR  Percent
	Valid bool
}

// PointCAGR computes the CAGR between two dates of a series. The start is
// resolved with Floor, the end with Nearest, matching the single-point
// lookups of the NAV sources. It returns ErrInsufficientData for series
// with fewer than two observations, and ErrNoObservationInRange when the
// start date precedes the whole series.
func PointCAGR(s *Series, from, to date.Date) (PointResult, error) {
	if s == nil || s.Len() < 2 {
		return PointResult{}, ErrInsufficientData
	}
	start, err := s.Resolve(from, Floor)
	if err != nil {
		return PointResult{}, fmt.Errorf("resolving start %s: %w", from, err)
	}
	end, err := s.Resolve(to, Nearest)
	if err != nil {
		return PointResult{}, fmt.Errorf("resolving end %s: %w", to, err)
	}

	res := PointResult{
		Start: start,
		End:   end,
		Years: start.Date.YearsUntil(end.Date),
	}
	res.CAGR, res.Valid = CAGR(start.Price, end.Price, res.Years)
	return res, nil
}
