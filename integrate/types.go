// SPDX-License-Identifier: MIT
// Package integrate: public types (integrand, status taxonomy, result).

package integrate

import "fmt"

// Func is an integrand. args is the slice given through WithArgs, forwarded
// unmodified on every call (nil when no args were supplied).
type Func func(x float64, args []float64) float64

// Scalar adapts a plain one-argument function to Func.
func Scalar(f func(float64) float64) Func {
	if f == nil {
		return nil
	}

	return func(x float64, _ []float64) float64 { return f(x) }
}

// Status is the closed set of outcomes an integration can report.
type Status int

const (
	// Success means the error estimate meets the requested tolerance.
	Success Status = iota

	// SubdivisionLimitReached means the subdivision budget (Adaptive) or the
	// escalation ladder (NonAdaptive) was exhausted before convergence.
	SubdivisionLimitReached

	// RoundoffLimited means roundoff error prevents reaching the tolerance.
	RoundoffLimited

	// BadIntegrandBehavior means the integrand is non-finite or singular
	// enough that a subinterval became too small to bisect.
	BadIntegrandBehavior

	// ExtrapolationRoundoff is reserved for roundoff detected in an
	// extrapolation table.
	ExtrapolationRoundoff

	// ProbablyDivergent is reserved for integrals that appear divergent or
	// converge too slowly.
	ProbablyDivergent

	// InvalidInput means the tolerances cannot be met at working precision.
	// No function evaluations were made.
	InvalidInput
)

// String returns the identifier of s.
func (s Status) String() string {
	switch s {
	case Success:
		return "Success"
	case SubdivisionLimitReached:
		return "SubdivisionLimitReached"
	case RoundoffLimited:
		return "RoundoffLimited"
	case BadIntegrandBehavior:
		return "BadIntegrandBehavior"
	case ExtrapolationRoundoff:
		return "ExtrapolationRoundoff"
	case ProbablyDivergent:
		return "ProbablyDivergent"
	case InvalidInput:
		return "InvalidInput"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Message returns the fixed diagnostic text of s.
func (s Status) Message() string { return Message(s) }

// Message maps a status to its diagnostic text. It is total: unknown values
// get a generic message.
func Message(s Status) string {
	switch s {
	case Success:
		return "The integral was computed to the requested accuracy."
	case SubdivisionLimitReached:
		return "The maximum number of subdivisions has been achieved. " +
			"If increasing the limit yields no improvement, analyze the integrand " +
			"for singularities or discontinuities and split the range at them."
	case RoundoffLimited:
		return "The occurrence of roundoff error is detected, which prevents " +
			"the requested tolerance from being achieved. The error may be underestimated."
	case BadIntegrandBehavior:
		return "Extremely bad integrand behavior occurs at some points of the integration interval."
	case ExtrapolationRoundoff:
		return "The algorithm does not converge. Roundoff error is detected in the " +
			"extrapolation table. It is assumed that the requested tolerance cannot be " +
			"achieved and that the returned result is the best which can be obtained."
	case ProbablyDivergent:
		return "The integral is probably divergent, or slowly convergent."
	case InvalidInput:
		return "The input is invalid: epsabs <= 0 and epsrel < max(50*eps, 5e-15)."
	default:
		return "Unknown integration status."
	}
}

// Result is the outcome of one integration call.
//
// Fields:
//   - Integral     — best estimate of ∫_a^b f(x) dx.
//   - AbsErr       — estimate of |Integral − true value|.
//   - NEval        — number of integrand invocations.
//   - Status       — outcome classification.
//   - Subdivisions — bisections performed (always 0 for NonAdaptive).
type Result struct {
	Integral     float64
	AbsErr       float64
	NEval        int
	Status       Status
	Subdivisions int
}

// Success reports whether the requested accuracy was reached.
func (r Result) Success() bool { return r.Status == Success }

// Err returns nil on success, otherwise a *StatusError that wraps
// ErrInvalidTolerance (InvalidInput) or ErrNotConverged (everything else).
func (r Result) Err() error {
	if r.Status == Success {
		return nil
	}

	return &StatusError{Status: r.Status}
}

// String renders the result on one line.
func (r Result) String() string {
	return fmt.Sprintf("integral=%.15g abserr=%.3g neval=%d subdivisions=%d status=%s",
		r.Integral, r.AbsErr, r.NEval, r.Subdivisions, r.Status)
}

// StatusError turns a non-success Status into an error value.
type StatusError struct {
	Status Status
}

func (e *StatusError) Error() string {
	return "integrate: " + e.Status.String() + ": " + e.Status.Message()
}

// Unwrap exposes the sentinel class of the status for errors.Is.
func (e *StatusError) Unwrap() error {
	if e.Status == InvalidInput {
		return ErrInvalidTolerance
	}

	return ErrNotConverged
}
