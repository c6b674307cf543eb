package cagr

import (
	"encoding/json"
	"math"
)

// round2 rounds to two decimals, the precision used in serialized reports.
func round2(f float64) float64 { return math.Round(f*100) / 100 }

// MarshalJSON serializes the window with a stable field order.
func (w Window) MarshalJSON() ([]byte, error) {
	var jw jsonObjectWriter
	jw.Append("window", w.Index)
	jw.Append("start_date", w.StartDate)
	jw.Append("end_date", w.EndDate)
	jw.Append("start_price", w.StartPrice)
	jw.Append("end_price", w.EndPrice)
	jw.Append("actual_years", round2(w.Years))
	if w.Valid {
		jw.Append("cagr", round2(float64(w.CAGR)))
	} else {
		jw.Append("cagr", nil)
	}
	return jw.MarshalJSON()
}

// MarshalJSON serializes the report with a stable field order, suitable
// for direct consumption by downstream formatters.
func (r *Report) MarshalJSON() ([]byte, error) {
	var jw jsonObjectWriter
	jw.Append("requested_window_years", r.WindowYears)
	jw.Append("stride_days", r.StrideDays)
	jw.Append("start_date", r.StartDate)
	jw.Append("total_windows", r.TotalWindows)
	jw.Append("valid_windows", r.ValidWindows)
	jw.Append("average_cagr", round2(float64(r.AverageCAGR)))
	jw.Append("std_dev_cagr", round2(float64(r.StdDevCAGR)))
	jw.Append("min_cagr", round2(float64(r.MinCAGR)))
	jw.Append("max_cagr", round2(float64(r.MaxCAGR)))
	jw.Append("analysis_period", r.AnalysisPeriod.String())
	jw.Append("windows", r.Windows)
	return jw.MarshalJSON()
}

var _ json.Marshaler = (*Report)(nil)
var _ json.Marshaler = Window{}
