// SPDX-License-Identifier: MIT

package differentiate

import "math"

// Gradient returns dy/dx for samples ys taken at uniform spacing.
//
// Interior points use (y[i+1] − y[i−1]) / 2h. With three or more samples the
// ends use the second-order one-sided formulas
//
//	(−3y₀ + 4y₁ − y₂) / 2h   and   (3yₙ₋₁ − 4yₙ₋₂ + yₙ₋₃) / 2h,
//
// so every output is exact for quadratics. Two samples yield the single
// forward difference at both ends. The input is not modified.
func Gradient(ys []float64, spacing float64) ([]float64, error) {
	n := len(ys)
	if n < 2 {
		return nil, ErrTooFewSamples
	}
	if !(spacing > 0) || math.IsInf(spacing, 0) {
		return nil, ErrBadSpacing
	}

	out := make([]float64, n)
	if n == 2 {
		d := (ys[1] - ys[0]) / spacing
		out[0], out[1] = d, d

		return out, nil
	}
	twoH := 2 * spacing
	for i := 1; i < n-1; i++ {
		out[i] = (ys[i+1] - ys[i-1]) / twoH
	}
	out[0] = (-3*ys[0] + 4*ys[1] - ys[2]) / twoH
	out[n-1] = (3*ys[n-1] - 4*ys[n-2] + ys[n-3]) / twoH

	return out, nil
}
