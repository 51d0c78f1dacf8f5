// SPDX-License-Identifier: MIT
// Package integrate: sentinel error set.
// Structural misuse (nil integrand, non-finite bounds, NaN tolerances, a
// non-positive subdivision budget) is reported through these sentinels and
// matched with errors.Is. Numerical non-convergence is NEVER an error here:
// it is a Status carried by a still-usable Result.

package integrate

import "errors"

var (
	// ErrNilFunc is returned when the integrand is nil.
	ErrNilFunc = errors.New("integrate: integrand is nil")

	// ErrNonFiniteBound is returned when a or b is NaN or ±Inf.
	ErrNonFiniteBound = errors.New("integrate: integration bound is NaN or Inf")

	// ErrBadTolerance is returned when epsabs or epsrel is NaN.
	ErrBadTolerance = errors.New("integrate: tolerance is NaN")

	// ErrBadLimit is returned when the subdivision budget is < 1.
	ErrBadLimit = errors.New("integrate: subdivision limit must be >= 1")

	// ErrNotConverged is wrapped by Result.Err for every non-success status
	// except InvalidInput.
	ErrNotConverged = errors.New("integrate: requested accuracy not reached")

	// ErrInvalidTolerance is wrapped by Result.Err for InvalidInput.
	ErrInvalidTolerance = errors.New("integrate: tolerances too small for working precision")
)
