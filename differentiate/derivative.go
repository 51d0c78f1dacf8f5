// SPDX-License-Identifier: MIT

package differentiate

import "math"

// stencils holds the antisymmetric central-difference weights c_k for offsets
// k = 1..order/2:  f'(x) ≈ (1/h)·Σ c_k·(f(x+kh) − f(x−kh)).
var stencils = map[int][]float64{
	2: {1.0 / 2},
	4: {2.0 / 3, -1.0 / 12},
	6: {3.0 / 4, -3.0 / 20, 1.0 / 60},
	8: {4.0 / 5, -1.0 / 5, 4.0 / 105, -1.0 / 280},
}

// Result is the outcome of Derivative.
type Result struct {
	Df        float64 // best derivative estimate
	Err       float64 // |change between the two estimates that produced Df|; +Inf after one iteration
	NIter     int     // iterations performed
	NFev      int     // function evaluations
	Converged bool    // Err met atol + rtol·|Df|
}

// Derivative estimates f'(x) by central differences with a shrinking step.
//
// Each iteration evaluates the stencil at step h, then divides h by the step
// factor. The error estimate of iteration k is |df_k − df_{k−1}|. Iteration
// stops when err ≤ atol + rtol·|df| (Converged), when the iteration budget is
// spent, or when the error grows for the first time after the second
// iteration: roundoff then dominates and the best earlier estimate is kept.
//
// Errors: ErrNilFunc, ErrNonFinitePoint, ErrNonFiniteValue.
//
// Complexity: O(maxIter·order) evaluations of f.
func Derivative(f func(float64) float64, x float64, opts ...Option) (Result, error) {
	if f == nil {
		return Result{}, ErrNilFunc
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Result{}, ErrNonFinitePoint
	}
	o := gatherOptions(opts)
	coeffs := stencils[o.order]

	var (
		res     Result
		h       = o.step
		prev    float64
		prevErr = math.Inf(1)
		best    = Result{Err: math.Inf(1)}
	)
	for res.NIter = 1; res.NIter <= o.maxIt; res.NIter++ {
		var sum float64
		for k, c := range coeffs {
			off := float64(k+1) * h
			sum += c * (f(x+off) - f(x-off))
		}
		res.NFev += 2 * len(coeffs)
		df := sum / h
		if math.IsNaN(df) || math.IsInf(df, 0) {
			best.NIter, best.NFev = res.NIter, res.NFev

			return best, ErrNonFiniteValue
		}

		err := math.Inf(1)
		if res.NIter > 1 {
			err = math.Abs(df - prev)
		}
		if res.NIter > 2 && err > prevErr {
			best.NIter, best.NFev = res.NIter, res.NFev

			return best, nil
		}
		if res.NIter == 1 || err <= best.Err {
			best.Df, best.Err = df, err
		}
		if err <= o.atol+o.rtol*math.Abs(df) {
			best.NIter, best.NFev, best.Converged = res.NIter, res.NFev, true

			return best, nil
		}
		prev, prevErr = df, err
		h /= o.factor
	}
	best.NIter, best.NFev = o.maxIt, res.NFev

	return best, nil
}
