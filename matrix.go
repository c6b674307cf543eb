package cagr

// MatrixCell is the trailing CAGR over one horizon ending at the latest
// observation of a series. Valid is false when the series does not cover
// enough of the horizon ("NA" downstream).
type MatrixCell struct {
	Years int
	Start Observation
	End   Observation
	CAGR  Percent
	Valid bool
}

// Matrix computes point CAGRs over trailing horizons of 1 to maxYears
// years, all ending at the latest observation. A horizon whose realized
// coverage falls below the rolling completeness threshold is reported as
// not valid rather than annualized over a shorter span.
func Matrix(s *Series, maxYears int) []MatrixCell {
	cells := make([]MatrixCell, 0, maxYears)
	if s == nil || s.Len() < 2 {
		for y := 1; y <= maxYears; y++ {
			cells = append(cells, MatrixCell{Years: y})
		}
		return cells
	}

	end := s.Last()
	for y := 1; y <= maxYears; y++ {
		cell := MatrixCell{Years: y, End: end}
		target := end.Date.Add(-windowDays(y))
		start, err := s.Resolve(target, Ceiling)
		if err == nil {
			years := start.Date.YearsUntil(end.Date)
			if years >= float64(y)*minYearsRatio {
				cell.Start = start
				cell.CAGR, cell.Valid = CAGR(start.Price, end.Price, years)
			}
		}
		cells = append(cells, cell)
	}
	return cells
}
