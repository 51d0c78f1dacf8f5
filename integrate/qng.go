// SPDX-License-Identifier: MIT
// Package integrate: non-adaptive Gauss–Kronrod–Patterson escalation (QNG).

package integrate

import "math"

// NonAdaptive integrates f over [a,b] with the fixed ladder of nested rules
// 10/21 → 21/43 → 43/87, reusing every function value of the previous level.
// It stops at the first level whose scaled error estimate satisfies
// abserr ≤ max(epsabs, epsrel·|integral|).
//
// Implementation:
//   - Stage 1: structural validation (errors), tolerance check (InvalidInput),
//     degenerate interval (zero Success).
//   - Stage 2: walk the ladder as an explicit state machine; each level calls
//     evaluate with the previous level's cache.
//   - Stage 3: on exhaustion, return the 87-point estimate with
//     SubdivisionLimitReached.
//
// Behavior highlights:
//   - At most 87 evaluations; never loops.
//   - a > b is handled by the signed half-width: the result is the exact
//     negation of the swapped call.
//   - A non-finite estimate stops the ladder with BadIntegrandBehavior.
//
// Options honoured: WithEpsAbs, WithEpsRel, WithArgs.
//
// Errors:
//   - ErrNilFunc, ErrNonFiniteBound, ErrBadTolerance.
//
// Complexity:
//   - Time O(87) integrand calls worst case, Space O(43).
func NonAdaptive(f Func, a, b float64, opts ...Option) (Result, error) {
	o := gatherOptions(opts)

	// Stage 1: validation.
	if err := validate(f, a, b, o); err != nil {
		return Result{}, err
	}
	if tolerancesTooSmall(o) {
		return Result{Status: InvalidInput}, nil
	}
	if a == b {
		return Result{Status: Success}, nil
	}

	// Stage 2: escalation.
	var (
		res   Result
		cache *evalCache
		est   estimate
		level int
	)
	for level = 0; level < len(escalation); level++ {
		est, cache = evaluate(f, o.args, a, b, escalation[level], cache)
		res.NEval += est.neval
		res.Integral = est.high
		res.AbsErr = est.err()

		if !est.finite() {
			res.AbsErr = math.Inf(1)
			res.Status = BadIntegrandBehavior

			return res, nil
		}
		if res.AbsErr <= tolerance(o, est.high) {
			res.Status = Success

			return res, nil
		}
	}

	// Stage 3: ladder exhausted.
	res.Status = SubdivisionLimitReached

	return res, nil
}
