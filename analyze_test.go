package cagr

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func linear(from, to float64, n int) func(i int) float64 {
	return func(i int) float64 { return from + (to-from)*float64(i)/float64(n) }
}

func TestAnalyzeLinearGrowth(t *testing.T) {
	// Daily prices rising linearly from 100 to 300 over ten years. With a
	// linear price path, later windows start from a higher base, so their
	// percentage growth is lower: CAGRs must be strictly positive and
	// non-increasing.
	from, to := day(2015, time.January, 1), day(2025, time.January, 1)
	n := from.DaysUntil(to)
	s := dailySeries(t, from, to, linear(100, 300, n))

	report, err := Analyze(s, Params{WindowYears: 5, StrideDays: 30})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if report.TotalWindows != 63 {
		t.Errorf("TotalWindows = %d, want 63", report.TotalWindows)
	}
	if report.ValidWindows != report.TotalWindows {
		t.Errorf("ValidWindows = %d, want %d", report.ValidWindows, report.TotalWindows)
	}

	const eps = 1e-9
	for i, w := range report.Windows {
		if !w.Valid {
			t.Fatalf("window %d has no CAGR", w.Index)
		}
		if w.CAGR <= 0 {
			t.Errorf("window %d CAGR = %v, want > 0", w.Index, w.CAGR)
		}
		if w.Years < 0.9*5 || w.Years <= 0 {
			t.Errorf("window %d realized years = %v, below completeness threshold", w.Index, w.Years)
		}
		if i > 0 && float64(w.CAGR) > float64(report.Windows[i-1].CAGR)+eps {
			t.Errorf("window %d CAGR %v exceeds previous %v: expected non-increasing", w.Index, w.CAGR, report.Windows[i-1].CAGR)
		}
		if w.Index != i+1 {
			t.Errorf("window at position %d has index %d", i, w.Index)
		}
	}

	if report.MinCAGR != report.Windows[len(report.Windows)-1].CAGR {
		t.Errorf("MinCAGR = %v, want the last (lowest) window's CAGR %v", report.MinCAGR, report.Windows[len(report.Windows)-1].CAGR)
	}
	if report.MaxCAGR != report.Windows[0].CAGR {
		t.Errorf("MaxCAGR = %v, want the first (highest) window's CAGR %v", report.MaxCAGR, report.Windows[0].CAGR)
	}
	if report.AverageCAGR < report.MinCAGR || report.AverageCAGR > report.MaxCAGR {
		t.Errorf("AverageCAGR %v outside [%v, %v]", report.AverageCAGR, report.MinCAGR, report.MaxCAGR)
	}
	if report.StdDevCAGR < 0 {
		t.Errorf("StdDevCAGR = %v, want >= 0", report.StdDevCAGR)
	}

	if report.AnalysisPeriod.From != report.Windows[0].StartDate {
		t.Errorf("AnalysisPeriod.From = %s, want first window start", report.AnalysisPeriod.From)
	}
	if report.AnalysisPeriod.To != report.Windows[len(report.Windows)-1].EndDate {
		t.Errorf("AnalysisPeriod.To = %s, want last window end", report.AnalysisPeriod.To)
	}
}

func TestAnalyzeMonotonicSigns(t *testing.T) {
	from, to := day(2015, time.January, 1), day(2023, time.January, 1)
	n := from.DaysUntil(to)

	tests := []struct {
		name  string
		price func(i int) float64
		check func(t *testing.T, w Window)
	}{
		{"strictly increasing", linear(100, 400, n), func(t *testing.T, w Window) {
			if w.CAGR <= 0 {
				t.Errorf("window %d CAGR = %v, want > 0", w.Index, w.CAGR)
			}
		}},
		{"strictly decreasing", linear(400, 100, n), func(t *testing.T, w Window) {
			if w.CAGR >= 0 {
				t.Errorf("window %d CAGR = %v, want < 0", w.Index, w.CAGR)
			}
		}},
		{"constant", func(i int) float64 { return 250 }, func(t *testing.T, w Window) {
			if !w.CAGR.Equal(0) {
				t.Errorf("window %d CAGR = %v, want 0", w.Index, w.CAGR)
			}
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := dailySeries(t, from, to, tc.price)
			report, err := Analyze(s, Params{WindowYears: 3, StrideDays: 21})
			if err != nil {
				t.Fatalf("Analyze() error = %v", err)
			}
			for _, w := range report.Windows {
				tc.check(t, w)
			}
		})
	}
}

func TestAnalyzeFailures(t *testing.T) {
	t.Run("nil series", func(t *testing.T) {
		if _, err := Analyze(nil, Params{}); !errors.Is(err, ErrInsufficientData) {
			t.Errorf("error = %v, want ErrInsufficientData", err)
		}
	})

	t.Run("single observation", func(t *testing.T) {
		s := sparseSeries(t, map[string]float64{"2020-01-01": 100})
		if _, err := Analyze(s, Params{}); !errors.Is(err, ErrInsufficientData) {
			t.Errorf("error = %v, want ErrInsufficientData", err)
		}
	})

	t.Run("span too short for the window", func(t *testing.T) {
		s := sparseSeries(t, map[string]float64{
			"2020-01-01": 100,
			"2021-01-01": 110,
		})
		if _, err := Analyze(s, Params{WindowYears: 5}); !errors.Is(err, ErrNoWindowsPossible) {
			t.Errorf("error = %v, want ErrNoWindowsPossible", err)
		}
	})

	t.Run("nearest alignment rejected", func(t *testing.T) {
		from, to := day(2015, time.January, 1), day(2025, time.January, 1)
		s := dailySeries(t, from, to, func(i int) float64 { return 100 })
		if _, err := Analyze(s, Params{EndAlignment: Nearest}); err == nil {
			t.Error("expected an error for nearest window alignment")
		}
	})
}

func TestAnalyzeInvalidWindowsAreCounted(t *testing.T) {
	// A zero price cannot enter through NewSeries; build the series
	// directly to exercise per-window CAGR degradation.
	from, to := day(2015, time.January, 1), day(2022, time.January, 1)
	n := from.DaysUntil(to)
	obs := make([]Observation, 0, n+1)
	for i := 0; i <= n; i++ {
		obs = append(obs, Observation{Date: from.Add(i), Price: 100})
	}
	// Corrupt the very first observation: every window anchored there
	// resolves to a non-positive start price.
	obs[0].Price = 0
	s := &Series{obs: obs}

	report, err := Analyze(s, Params{WindowYears: 5, StrideDays: 30})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if report.TotalWindows == report.ValidWindows {
		t.Fatalf("expected some windows without a CAGR, got %d/%d valid", report.ValidWindows, report.TotalWindows)
	}
	if report.Windows[0].Valid {
		t.Errorf("window anchored on the corrupt price should have no CAGR")
	}
}

func TestAnalyzeAllWindowsInvalid(t *testing.T) {
	// All prices non-positive: windows exist but no CAGR can be computed.
	from, to := day(2015, time.January, 1), day(2022, time.January, 1)
	n := from.DaysUntil(to)
	obs := make([]Observation, 0, n+1)
	for i := 0; i <= n; i++ {
		obs = append(obs, Observation{Date: from.Add(i), Price: 0})
	}
	s := &Series{obs: obs}

	if _, err := Analyze(s, Params{WindowYears: 5, StrideDays: 30}); !errors.Is(err, ErrNoValidCAGR) {
		t.Errorf("error = %v, want ErrNoValidCAGR", err)
	}
}

func TestAnalyzeStartDate(t *testing.T) {
	from, to := day(2010, time.January, 1), day(2025, time.January, 1)
	n := from.DaysUntil(to)
	s := dailySeries(t, from, to, linear(100, 500, n))

	start := day(2018, time.June, 1)
	report, err := Analyze(s, Params{WindowYears: 5, StrideDays: 30, StartDate: start})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if report.Windows[0].StartDate.Before(start) {
		t.Errorf("first window starts %s, before the requested start %s", report.Windows[0].StartDate, start)
	}
	if report.StartDate != start {
		t.Errorf("report start date = %s, want %s", report.StartDate, start)
	}
}

func TestAnalyzeEndAlignment(t *testing.T) {
	// Sparse series: the window end target falls between two observations,
	// so floor and ceiling alignments must resolve different end dates.
	points := map[string]float64{}
	d := day(2015, time.January, 1)
	last := day(2024, time.January, 1)
	for i := 0; !d.After(last); i++ {
		points[d.String()] = 100 + float64(i)
		d = d.Add(14) // bi-weekly observations
	}
	s := sparseSeries(t, points)

	floor, err := Analyze(s, Params{WindowYears: 5, StrideDays: 30})
	if err != nil {
		t.Fatalf("Analyze(floor) error = %v", err)
	}
	ceiling, err := Analyze(s, Params{WindowYears: 5, StrideDays: 30, EndAlignment: Ceiling})
	if err != nil {
		t.Fatalf("Analyze(ceiling) error = %v", err)
	}

	differs := false
	for i := range floor.Windows {
		if i >= len(ceiling.Windows) {
			break
		}
		f, c := floor.Windows[i], ceiling.Windows[i]
		if c.EndDate.Before(f.EndDate) {
			t.Errorf("window %d: ceiling end %s before floor end %s", f.Index, c.EndDate, f.EndDate)
		}
		if c.EndDate != f.EndDate {
			differs = true
		}
	}
	if !differs {
		t.Error("floor and ceiling end alignments resolved identical windows on a sparse series")
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	from, to := day(2012, time.March, 15), day(2024, time.July, 1)
	n := from.DaysUntil(to)
	s := dailySeries(t, from, to, linear(80, 420, n))

	p := Params{WindowYears: 4, StrideDays: 21, StartAlignment: Floor, EndAlignment: Ceiling}
	first, err := Analyze(s, p)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	second, err := Analyze(s, p)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	a, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	b, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(a) != string(b) {
		t.Errorf("two identical analyses produced different reports:\n%s\n%s", a, b)
	}
}

func TestAnalyzeDefaults(t *testing.T) {
	from, to := day(2010, time.January, 1), day(2025, time.January, 1)
	n := from.DaysUntil(to)
	s := dailySeries(t, from, to, linear(100, 200, n))

	report, err := Analyze(s, Params{})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if report.WindowYears != DefaultWindowYears {
		t.Errorf("WindowYears = %d, want default %d", report.WindowYears, DefaultWindowYears)
	}
	if report.StrideDays != DefaultStrideDays {
		t.Errorf("StrideDays = %d, want default %d", report.StrideDays, DefaultStrideDays)
	}
	if report.StartDate != s.First().Date {
		t.Errorf("StartDate = %s, want series first date %s", report.StartDate, s.First().Date)
	}
}
