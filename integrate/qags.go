// SPDX-License-Identifier: MIT
// Package integrate: globally adaptive bisection (QAG/QAGS without extrapolation).

package integrate

import "math"

// Roundoff detection thresholds (QUADPACK QAG).
const (
	roundoffDelta     = 1e-5 // |parent − children| ≤ roundoffDelta·|children|
	roundoffGrowth    = 0.99 // children error ≥ roundoffGrowth·parent error
	roundoffWarmup    = 10   // bisections before type-2 counting starts
	roundoffType1Max  = 6
	roundoffType2Max  = 20
	tooSmallUlpFactor = 100
	tooSmallMinFactor = 1000
)

// Quad is Adaptive under its SciPy name.
func Quad(f Func, a, b float64, opts ...Option) (Result, error) {
	return Adaptive(f, a, b, opts...)
}

// Adaptive integrates f over [a,b] by repeatedly bisecting the subinterval
// with the largest local error estimate until the SUM of local errors meets
// max(epsabs, epsrel·|Σ integrals|) or the subdivision budget is exhausted.
//
// Implementation:
//   - Stage 1: validation; degenerate interval → zero Success; a > b is swapped
//     and the final integral negated.
//   - Stage 2: one evaluation of the whole range with the selected rule; early
//     exit on convergence, roundoff or a non-finite estimate.
//   - Stage 3: max-heap loop. Pop worst, bisect at the midpoint, evaluate both
//     halves with fresh function values, update running totals, push both.
//   - Stage 4: classify and re-sum the heap contents for the final integral.
//
// Behavior highlights:
//   - Deterministic: equal errors are refined in insertion order.
//   - NEval = points·(1 + 2·Subdivisions).
//   - Non-convergence is a Status, never an error.
//
// Options honoured: WithEpsAbs, WithEpsRel, WithLimit, WithRule, WithArgs.
//
// Errors:
//   - ErrNilFunc, ErrNonFiniteBound, ErrBadTolerance, ErrBadLimit.
//
// Complexity:
//   - Time O(limit·(points + log limit)), Space O(limit).
func Adaptive(f Func, a, b float64, opts ...Option) (Result, error) {
	o := gatherOptions(opts)

	// Stage 1: validation.
	if err := validate(f, a, b, o); err != nil {
		return Result{}, err
	}
	if o.limit < 1 {
		return Result{}, ErrBadLimit
	}
	rule, _ := o.rule.ruleSet() // WithRule guarantees a known rule
	if tolerancesTooSmall(o) {
		return Result{Status: InvalidInput}, nil
	}
	if a == b {
		return Result{Status: Success}, nil
	}
	sign := 1.0
	if a > b {
		a, b = b, a
		sign = -1
	}

	res := refine(f, a, b, rule, o)
	res.Integral *= sign

	return res, nil
}

// refine runs Stages 2–4 of Adaptive on a < b.
func refine(f Func, a, b float64, rule *RuleSet, o Options) Result {
	var res Result

	// Stage 2: initial estimate over the whole range.
	first, _ := evaluate(f, o.args, a, b, rule, nil)
	res.NEval = first.neval
	res.Integral = first.high
	res.AbsErr = first.err()
	if !first.finite() {
		res.AbsErr = math.Inf(1)
		res.Status = BadIntegrandBehavior

		return res
	}
	tol := tolerance(o, first.high)
	if res.AbsErr <= 50*epsilon*first.abs && res.AbsErr > tol {
		res.Status = RoundoffLimited

		return res
	}
	if (res.AbsErr <= tol && res.AbsErr != first.asc) || res.AbsErr == 0 {
		res.Status = Success

		return res
	}

	// Stage 3: refinement loop.
	var (
		heap        = newIntervalHeap(o.limit + 1)
		total       = first.high
		totalErr    = res.AbsErr
		status      = SubdivisionLimitReached
		roundoff1   int
		roundoff2   int
		parent      interval
		left, right estimate
		mid         float64
		area, err12 float64
	)
	heap.push(interval{a: a, b: b, integral: first.high, err: res.AbsErr})

	for res.Subdivisions < o.limit && totalErr > tolerance(o, total) {
		parent, _ = heap.pop()
		mid = 0.5 * (parent.a + parent.b)

		left, _ = evaluate(f, o.args, parent.a, mid, rule, nil)
		right, _ = evaluate(f, o.args, mid, parent.b, rule, nil)
		res.NEval += left.neval + right.neval
		res.Subdivisions++

		if !left.finite() || !right.finite() {
			heap.push(parent)
			status = BadIntegrandBehavior

			break
		}

		leftErr, rightErr := left.err(), right.err()
		area = left.high + right.high
		err12 = leftErr + rightErr

		// Roundoff bookkeeping: only when neither child error is saturated at asc.
		if left.asc != leftErr && right.asc != rightErr {
			if math.Abs(parent.integral-area) <= roundoffDelta*math.Abs(area) && err12 >= roundoffGrowth*parent.err {
				roundoff1++
			}
			if res.Subdivisions >= roundoffWarmup && err12 > parent.err {
				roundoff2++
			}
		}

		total += area - parent.integral
		totalErr += err12 - parent.err
		heap.push(interval{a: parent.a, b: mid, integral: left.high, err: leftErr})
		heap.push(interval{a: mid, b: parent.b, integral: right.high, err: rightErr})

		if totalErr > tolerance(o, total) {
			if roundoff1 >= roundoffType1Max || roundoff2 >= roundoffType2Max {
				status = RoundoffLimited

				break
			}
			if subintervalTooSmall(parent.a, mid, parent.b) {
				status = BadIntegrandBehavior

				break
			}
		}
	}

	// Stage 4: re-sum to shed the drift of the running totals.
	total, totalErr = 0, 0
	for i := range heap.items {
		total += heap.items[i].integral
		totalErr += heap.items[i].err
	}
	res.Integral = total
	res.AbsErr = totalErr
	if status == SubdivisionLimitReached && totalErr <= tolerance(o, total) {
		status = Success
	}
	res.Status = status

	return res
}

// subintervalTooSmall reports whether [a1,b2] (bisected at a2) is at the
// resolution limit of floating point around a2.
func subintervalTooSmall(a1, a2, b2 float64) bool {
	tmp := (1 + tooSmallUlpFactor*epsilon) * (math.Abs(a2) + tooSmallMinFactor*underflow)

	return math.Abs(a1) <= tmp && math.Abs(b2) <= tmp
}
