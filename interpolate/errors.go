package interpolate

import "errors"

var (
	// ErrTooFewPoints is returned for fewer than two knots.
	ErrTooFewPoints = errors.New("interpolate: need at least two points")

	// ErrLengthMismatch is returned when xs and ys differ in length.
	ErrLengthMismatch = errors.New("interpolate: xs and ys lengths differ")

	// ErrNotIncreasing is returned when xs is not strictly increasing.
	ErrNotIncreasing = errors.New("interpolate: xs must be strictly increasing")

	// ErrNonFinite is returned for NaN/Inf knots or query points.
	ErrNonFinite = errors.New("interpolate: non-finite value")

	// ErrOutOfRange is returned by the Raise policy.
	ErrOutOfRange = errors.New("interpolate: x outside the data range")
)
