// SPDX-License-Identifier: MIT

// Package differentiate estimates first derivatives numerically.
//
// 🚀 What is here?
//
//   - Derivative: iterated central differences of order 2, 4, 6 or 8 at a
//     point. The step starts at 0.5 and shrinks by a constant factor; the
//     change between successive estimates is the error estimate. Iteration
//     stops on tolerance, on the iteration budget, or as soon as the error
//     starts growing (the best estimate seen so far is returned).
//   - Gradient: derivative of uniformly sampled data: second-order central
//     differences inside, second-order one-sided differences at both ends.
//
// ✨ Usage
//
//	res, err := differentiate.Derivative(math.Sin, 1, differentiate.WithOrder(8))
//	if err != nil { ... }
//	fmt.Println(res.Df, res.Err, res.Converged)
//
// ⚙️ Options
//
//	WithOrder(2|4|6|8)     accuracy order of the stencil (default 8)
//	WithInitialStep(h)     first step (default 0.5)
//	WithStepFactor(q)      step reduction per iteration (default 2)
//	WithMaxIter(n)         iteration budget (default 10)
//	WithAbsTol / WithRelTol  stopping rule err ≤ atol + rtol·|df| (defaults 0, √ε)
//
// Option constructors panic on nonsensical values; numerical trouble is
// reported through Result.Converged or a sentinel error.
package differentiate
