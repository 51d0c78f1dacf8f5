// SPDX-License-Identifier: MIT
// Package integrate: kernel evaluator shared by both integrators.
//
// Purpose:
//   - Apply one RuleSet to one interval [a,b] and produce the embedded pair of
//     estimates plus the auxiliary magnitudes used by the error-scaling law.
//   - Optionally reuse the function values of the previous escalation level.
//
// Determinism & Performance:
//   - Fixed ascending node order; each node contributes f(x₊)+f(x₋) once.
//   - One allocation per call (the cache), sized by the rule.

package integrate

import "math"

// estimate is the output of one kernel evaluation.
//
//   - low   — embedded (lower-order) rule estimate of the integral.
//   - high  — extended (higher-order) rule estimate of the integral.
//   - abs   — high-order estimate of ∫|f|, used to detect underflow-scale results.
//   - asc   — high-order estimate of ∫|f − mean|, used by rescaleError.
//   - neval — integrand invocations made by this call only.
type estimate struct {
	low   float64
	high  float64
	abs   float64
	asc   float64
	neval int
}

// err returns the scaled error estimate |high − low| under the QUADPACK law.
func (e estimate) err() float64 {
	return rescaleError(e.high-e.low, e.abs, e.asc)
}

// finite reports whether both integral estimates and the error are finite.
func (e estimate) finite() bool {
	return !isNonFinite(e.high) && !isNonFinite(e.low) && !isNonFinite(e.asc)
}

// evalCache keeps f(center) and f(center ± h·t_i) for one level, aligned with
// that level's nodes. It lives for one integration call.
type evalCache struct {
	center float64
	plus   []float64
	minus  []float64
}

// evaluate applies rule r on [a,b].
// Implementation:
//   - Stage 1: map reference nodes to x = center ± halfwidth·t.
//   - Stage 2: take f(center) and inherited node values from prev; evaluate
//     the rest.
//   - Stage 3: accumulate low/high/abs sums, then asc around mean = high/2
//     (the reference-interval sum over its length, i.e. high/(b−a) after scaling).
//   - Stage 4: scale low/high by the signed half-width and abs/asc by its modulus.
//
// Contract:
//   - prev must be the cache returned for the previous ladder level of r on the
//     SAME interval, or nil. Rules without an inherited table ignore prev.
//   - a > b is allowed: the signed half-width negates low/high exactly.
//
// Complexity:
//   - Time O(points), Space O(len(r.nodes)).
func evaluate(f Func, args []float64, a, b float64, r *RuleSet, prev *evalCache) (estimate, *evalCache) {
	if r.inherited == nil {
		prev = nil
	}

	var (
		center = 0.5 * (a + b)
		half   = 0.5 * (b - a)
		n      = len(r.nodes)
		cache  = &evalCache{plus: make([]float64, n), minus: make([]float64, n)}
		est    estimate
	)

	// Stage 1–2: collect function values.
	if prev != nil {
		cache.center = prev.center
	} else {
		cache.center = f(center, args)
		est.neval++
	}
	var (
		i, j int
		dx   float64
	)
	for i = 0; i < n; i++ {
		if prev != nil {
			if j = r.inherited[i]; j >= 0 {
				cache.plus[i], cache.minus[i] = prev.plus[j], prev.minus[j]
				continue
			}
		}
		dx = half * r.nodes[i]
		cache.plus[i] = f(center+dx, args)
		cache.minus[i] = f(center-dx, args)
		est.neval += 2
	}

	// Stage 3: weighted sums on the reference interval.
	var (
		fc     = cache.center
		low    = r.lowCenter * fc
		high   = r.highCenter * fc
		absSum = r.highCenter * math.Abs(fc)
		fp, fm float64
		pair   float64
	)
	for i = 0; i < n; i++ {
		fp, fm = cache.plus[i], cache.minus[i]
		pair = fp + fm
		low += r.low[i] * pair
		high += r.high[i] * pair
		absSum += r.high[i] * (math.Abs(fp) + math.Abs(fm))
	}
	mean := 0.5 * high
	ascSum := r.highCenter * math.Abs(fc-mean)
	for i = 0; i < n; i++ {
		ascSum += r.high[i] * (math.Abs(cache.plus[i]-mean) + math.Abs(cache.minus[i]-mean))
	}

	// Stage 4: scale to [a,b].
	absHalf := math.Abs(half)
	est.low = low * half
	est.high = high * half
	est.abs = absSum * absHalf
	est.asc = ascSum * absHalf

	return est, cache
}

// rescaleError applies the QUADPACK error-scaling law to a raw |high − low|.
//
//	err = |err|
//	if asc ≠ 0 and err ≠ 0:      err = asc · min(1, (200·err/asc)^1.5)
//	if abs > underflow/(50·ε):   err = max(50·ε·abs, err)
//
// The first step damps the pessimism of the raw difference for smooth
// integrands; the second keeps the estimate above the roundoff floor.
func rescaleError(err, abs, asc float64) float64 {
	err = math.Abs(err)
	if asc != 0 && err != 0 {
		scale := math.Pow(200*err/asc, 1.5)
		if scale < 1 {
			err = asc * scale
		} else {
			err = asc
		}
	}
	if abs > underflow/(50*epsilon) {
		if floor := 50 * epsilon * abs; floor > err {
			err = floor
		}
	}

	return err
}
