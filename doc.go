// Package scijo is a small numerical toolkit shaped after SciPy's
// integrate, fft, optimize and interpolate modules.
//
// 🚀 What is in scijo?
//
//	• integrate     — Gauss–Kronrod quadrature: the non-adaptive 21/43/87-point
//	                  ladder (QNG) and globally adaptive bisection (QAG-style)
//	                  with roundoff detection and a closed status taxonomy
//	• differentiate — iterated central differences (orders 2–8), sampled-data gradients
//	• fft           — radix-2 and Bluestein transforms of any length
//	• optimize      — bisection, Newton and secant root finders
//	• interpolate   — piecewise-linear interpolation with extrapolation policies
//	• constants     — CODATA 2018 physical constants
//	• cmd/scijo     — command line front-end, including concurrent YAML batches
//
// ✨ Principles
//
//   - Deterministic: identical inputs give bit-identical results.
//   - Non-convergence is data, not failure: integrators return a usable
//     Result with a Status; errors are reserved for malformed input.
//   - Functional options with documented defaults; no global state.
//   - Library packages never log and never panic on user input.
//
// Quick example:
//
//	res, err := integrate.Quad(integrate.Scalar(math.Sin), 0, math.Pi)
//	// res.Integral ≈ 2, res.AbsErr ≈ 2e-14, res.NEval == 21, res.Status == Success
//
//	go get github.com/katalvlaran/scijo
package scijo
