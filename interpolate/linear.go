package interpolate

import (
	"fmt"
	"math"
	"sort"
)

// Policy selects the behaviour outside the knot range.
type Policy int

const (
	// Raise reports ErrOutOfRange.
	Raise Policy = iota
	// Clamp returns ys[0] or ys[n−1].
	Clamp
	// Extrapolate continues the end segments linearly.
	Extrapolate
	// Fill returns the value given to WithFill.
	Fill
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Raise:
		return "raise"
	case Clamp:
		return "clamp"
	case Extrapolate:
		return "extrapolate"
	case Fill:
		return "fill"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration.
type Options struct {
	policy Policy
	fill   float64
}

// WithPolicy sets the out-of-range policy. Panics on an unknown Policy;
// use WithFill for Fill.
func WithPolicy(p Policy) Option {
	if p < Raise || p > Extrapolate {
		panic("interpolate: WithPolicy: unknown policy")
	}

	return func(o *Options) { o.policy = p }
}

// WithFill selects the Fill policy with value v (NaN allowed).
func WithFill(v float64) Option {
	return func(o *Options) {
		o.policy = Fill
		o.fill = v
	}
}

// Linear is a piecewise-linear interpolant.
type Linear struct {
	xs, ys []float64
	opts   Options
}

// NewLinear builds an interpolant through (xs[i], ys[i]).
// The inputs are copied.
func NewLinear(xs, ys []float64, opts ...Option) (*Linear, error) {
	if len(xs) != len(ys) {
		return nil, ErrLengthMismatch
	}
	if len(xs) < 2 {
		return nil, ErrTooFewPoints
	}
	for i := range xs {
		if nonFinite(xs[i]) || nonFinite(ys[i]) {
			return nil, fmt.Errorf("%w at index %d", ErrNonFinite, i)
		}
		if i > 0 && !(xs[i] > xs[i-1]) {
			return nil, fmt.Errorf("%w at index %d", ErrNotIncreasing, i)
		}
	}

	l := &Linear{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&l.opts)
		}
	}

	return l, nil
}

// Policy returns the configured out-of-range policy.
func (l *Linear) Policy() Policy { return l.opts.policy }

// Domain returns the knot range.
func (l *Linear) Domain() (lo, hi float64) { return l.xs[0], l.xs[len(l.xs)-1] }

// At evaluates the interpolant at x.
func (l *Linear) At(x float64) (float64, error) {
	if nonFinite(x) {
		return 0, ErrNonFinite
	}
	n := len(l.xs)
	if x < l.xs[0] || x > l.xs[n-1] {
		switch l.opts.policy {
		case Clamp:
			if x < l.xs[0] {
				return l.ys[0], nil
			}
			return l.ys[n-1], nil
		case Fill:
			return l.opts.fill, nil
		case Extrapolate:
			if x < l.xs[0] {
				return l.segment(0, x), nil
			}
			return l.segment(n-2, x), nil
		default:
			return 0, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfRange, x, l.xs[0], l.xs[n-1])
		}
	}

	// First knot ≥ x; exact knots return their own value.
	i := sort.SearchFloat64s(l.xs, x)
	if l.xs[i] == x {
		return l.ys[i], nil
	}

	return l.segment(i-1, x), nil
}

// Eval evaluates the interpolant at every point of xs. It stops at the first error.
func (l *Linear) Eval(xs []float64) ([]float64, error) {
	out := make([]float64, len(xs))
	for i, x := range xs {
		y, err := l.At(x)
		if err != nil {
			return nil, fmt.Errorf("interpolate: point %d: %w", i, err)
		}
		out[i] = y
	}

	return out, nil
}

// segment evaluates the line through knots i and i+1 at x.
func (l *Linear) segment(i int, x float64) float64 {
	x0, x1 := l.xs[i], l.xs[i+1]
	y0, y1 := l.ys[i], l.ys[i+1]

	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}

// Interp evaluates the clamped piecewise-linear interpolant of (xp, fp) at
// every point of x.
func Interp(x, xp, fp []float64) ([]float64, error) {
	l, err := NewLinear(xp, fp, WithPolicy(Clamp))
	if err != nil {
		return nil, err
	}

	return l.Eval(x)
}

func nonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
