package optimize

import "math"

const (
	// DefaultXTol is the absolute step tolerance.
	DefaultXTol = 2e-12

	// DefaultRTol is the relative step tolerance, 4ε.
	DefaultRTol = 4 * 0x1p-52

	// DefaultMaxIter bounds the number of iterations.
	DefaultMaxIter = 100
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration.
type Options struct {
	xtol    float64
	rtol    float64
	maxIter int
}

// WithXTol sets the absolute tolerance. Panics if tol < 0 or NaN.
func WithXTol(tol float64) Option {
	if !(tol >= 0) {
		panic("optimize: WithXTol: tolerance must be >= 0")
	}

	return func(o *Options) { o.xtol = tol }
}

// WithRTol sets the relative tolerance. Panics if tol < 0 or NaN.
func WithRTol(tol float64) Option {
	if !(tol >= 0) {
		panic("optimize: WithRTol: tolerance must be >= 0")
	}

	return func(o *Options) { o.rtol = tol }
}

// WithMaxIter sets the iteration budget. Panics if n < 1.
func WithMaxIter(n int) Option {
	if n < 1 {
		panic("optimize: WithMaxIter: n must be >= 1")
	}

	return func(o *Options) { o.maxIter = n }
}

func gatherOptions(opts []Option) Options {
	o := Options{xtol: DefaultXTol, rtol: DefaultRTol, maxIter: DefaultMaxIter}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func (o Options) close(x0, x1 float64) bool {
	return math.Abs(x1-x0) <= o.xtol+o.rtol*math.Abs(x1)
}

func nonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
