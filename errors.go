package cagr

import "errors"

// Failure taxonomy for an analysis. All values are recoverable by the
// caller and are matched with errors.Is; Analyze never panics across its
// boundary.
var (
	// ErrInsufficientData reports a series too short to form any window.
	ErrInsufficientData = errors.New("insufficient data: at least two observations are required")

	// ErrNoObservationInRange reports a date resolution request that fell
	// outside the series' span.
	ErrNoObservationInRange = errors.New("no observation in range")

	// ErrNoWindowsPossible reports that no rolling window could be formed
	// with the given parameters.
	ErrNoWindowsPossible = errors.New("no rolling windows possible with the given parameters")

	// ErrNoValidCAGR reports that windows existed but none had both
	// positive endpoint prices and a positive elapsed duration.
	ErrNoValidCAGR = errors.New("no valid CAGR could be computed")
)
