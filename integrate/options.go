// SPDX-License-Identifier: MIT
// Package integrate: functional configuration.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Constructors panic only on nonsensical values (programmer error);
//     tolerances that are merely too small are NOT rejected here, they are
//     reported as Status InvalidInput by the integrators.
//   - Options fields are unexported; public entry points accept ...Option.

package integrate

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsAbs is the default absolute tolerance.
	DefaultEpsAbs = 1.49e-8

	// DefaultEpsRel is the default relative tolerance.
	DefaultEpsRel = 1.49e-8

	// DefaultLimit is the default subdivision budget of Adaptive.
	DefaultLimit = 50

	// DefaultRule is the default per-subinterval rule of Adaptive.
	DefaultRule = GaussKronrod21
)

// ---------- Internal panic messages ----------

const (
	panicRuleInvalid = "integrate: WithRule: unknown rule"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	epsAbs float64
	epsRel float64
	limit  int
	rule   Rule
	args   []float64
}

// WithEpsAbs sets the absolute tolerance. Values ≤ 0 disable the absolute
// criterion; NaN is rejected by the integrators with ErrBadTolerance.
func WithEpsAbs(eps float64) Option {
	return func(o *Options) { o.epsAbs = eps }
}

// WithEpsRel sets the relative tolerance. NaN is rejected by the integrators
// with ErrBadTolerance.
func WithEpsRel(eps float64) Option {
	return func(o *Options) { o.epsRel = eps }
}

// WithLimit sets the subdivision budget used by Adaptive. A limit < 1 is
// rejected by Adaptive with ErrBadLimit.
func WithLimit(limit int) Option {
	return func(o *Options) { o.limit = limit }
}

// WithRule selects the per-subinterval Gauss–Kronrod pair used by Adaptive.
// NonAdaptive always walks its own 21/43/87 ladder and ignores it.
// Panics on an unknown Rule.
func WithRule(r Rule) Option {
	if _, ok := r.ruleSet(); !ok {
		panic(panicRuleInvalid)
	}

	return func(o *Options) { o.rule = r }
}

// WithArgs sets the auxiliary argument slice passed to every integrand call.
// The slice is neither copied nor inspected.
func WithArgs(args ...float64) Option {
	return func(o *Options) { o.args = args }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) Options {
	o := Options{
		epsAbs: DefaultEpsAbs,
		epsRel: DefaultEpsRel,
		limit:  DefaultLimit,
		rule:   DefaultRule,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// ---------- Numeric policy ----------

const (
	// epsilon is the IEEE-754 double machine epsilon.
	epsilon = 0x1p-52

	// underflow is the smallest positive normal double.
	underflow = 0x1p-1022

	// minEpsRel is the smallest relative tolerance accepted when the absolute
	// criterion is disabled.
	minEpsRel = 50 * epsilon
)

// validate checks structural inputs shared by both integrators.
func validate(f Func, a, b float64, o Options) error {
	if f == nil {
		return ErrNilFunc
	}
	if isNonFinite(a) || isNonFinite(b) {
		return ErrNonFiniteBound
	}
	if math.IsNaN(o.epsAbs) || math.IsNaN(o.epsRel) {
		return ErrBadTolerance
	}

	return nil
}

// tolerancesTooSmall reports the InvalidInput condition:
// epsabs ≤ 0 and epsrel < max(0.5e-14, 50·ε).
func tolerancesTooSmall(o Options) bool {
	return o.epsAbs <= 0 && o.epsRel < math.Max(0.5e-14, minEpsRel)
}

// tolerance is the convergence threshold for an estimate.
func tolerance(o Options, estimate float64) float64 {
	return math.Max(o.epsAbs, o.epsRel*math.Abs(estimate))
}

func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
