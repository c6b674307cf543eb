package cagr

import "math"

// CAGR returns the compound annual growth rate, in percentage points, of
// a price moving from start to end over the given number of years.
// It reports false when any input is non-positive, in which case no
// growth rate is defined.
func CAGR(start, end, years float64) (Percent, bool) {
	if start <= 0 || end <= 0 || years <= 0 {
		return 0, false
	}
	return Percent((math.Pow(end/start, 1/years) - 1) * 100), true
}
