// SPDX-License-Identifier: MIT

package differentiate

import "errors"

var (
	// ErrNilFunc is returned when f is nil.
	ErrNilFunc = errors.New("differentiate: function is nil")

	// ErrNonFinitePoint is returned when x is NaN or ±Inf.
	ErrNonFinitePoint = errors.New("differentiate: evaluation point is NaN or Inf")

	// ErrNonFiniteValue is returned when f produced NaN or ±Inf on the stencil.
	ErrNonFiniteValue = errors.New("differentiate: function returned NaN or Inf")

	// ErrTooFewSamples is returned by Gradient for fewer than two samples.
	ErrTooFewSamples = errors.New("differentiate: need at least two samples")

	// ErrBadSpacing is returned by Gradient for a non-positive or non-finite spacing.
	ErrBadSpacing = errors.New("differentiate: spacing must be positive and finite")
)
