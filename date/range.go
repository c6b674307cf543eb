package date

import "fmt"

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains return true if date is included in the range (boundaries included).
func (r Range) Contains(d Date) bool { return !d.Before(r.From) && !d.After(r.To) }

// Days returns the number of days covered by the range.
func (r Range) Days() int { return r.From.DaysUntil(r.To) }

// Years returns the duration of the range in average calendar years.
func (r Range) Years() float64 { return r.From.YearsUntil(r.To) }

// String formats the range as "from to to".
func (r Range) String() string { return fmt.Sprintf("%s to %s", r.From, r.To) }
