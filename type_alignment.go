package cagr

import "fmt"

// Alignment defines the rule used to map a desired target date to an
// actual available observation.
type Alignment int

const (
	// Floor picks the latest observation on or before the target date.
	Floor Alignment = iota
	// Ceiling picks the earliest observation on or after the target date.
	Ceiling
	// Nearest picks the observation closest to the target date by absolute
	// day difference. It is meant for single-point lookups, not for
	// rolling window boundaries.
	Nearest
)

func (a Alignment) String() string {
	switch a {
	case Floor:
		return "floor"
	case Ceiling:
		return "ceiling"
	case Nearest:
		return "nearest"
	default:
		return "unknown"
	}
}

// ParseAlignment parses a string into an Alignment.
func ParseAlignment(s string) (Alignment, error) {
	switch s {
	case "floor":
		return Floor, nil
	case "ceiling":
		return Ceiling, nil
	case "nearest":
		return Nearest, nil
	default:
		return 0, fmt.Errorf("unknown alignment policy: %q", s)
	}
}
