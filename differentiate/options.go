// SPDX-License-Identifier: MIT
// Package differentiate: functional configuration of Derivative.

package differentiate

import "math"

const (
	// DefaultOrder is the accuracy order of the central stencil.
	DefaultOrder = 8

	// DefaultInitialStep is the first step size.
	DefaultInitialStep = 0.5

	// DefaultStepFactor divides the step after every iteration.
	DefaultStepFactor = 2.0

	// DefaultMaxIter bounds the number of stencil evaluations.
	DefaultMaxIter = 10

	// DefaultAbsTol is the absolute part of the stopping rule.
	DefaultAbsTol = 0.0
)

// DefaultRelTol is the relative part of the stopping rule, √ε.
var DefaultRelTol = math.Sqrt(0x1p-52)

const (
	panicOrderInvalid = "differentiate: WithOrder: order must be 2, 4, 6 or 8"
	panicStepInvalid  = "differentiate: WithInitialStep: step must be positive and finite"
	panicFactorSmall  = "differentiate: WithStepFactor: factor must be > 1"
	panicMaxIterSmall = "differentiate: WithMaxIter: n must be >= 1"
	panicTolInvalid   = "differentiate: tolerance must be >= 0"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration.
type Options struct {
	order  int
	step   float64
	factor float64
	maxIt  int
	atol   float64
	rtol   float64
}

// WithOrder selects the stencil accuracy order. Panics unless order is 2, 4, 6 or 8.
func WithOrder(order int) Option {
	if _, ok := stencils[order]; !ok {
		panic(panicOrderInvalid)
	}

	return func(o *Options) { o.order = order }
}

// WithInitialStep sets the first step. Panics if h ≤ 0 or h is not finite.
func WithInitialStep(h float64) Option {
	if !(h > 0) || math.IsInf(h, 0) {
		panic(panicStepInvalid)
	}

	return func(o *Options) { o.step = h }
}

// WithStepFactor sets the step reduction factor. Panics if q ≤ 1.
func WithStepFactor(q float64) Option {
	if !(q > 1) || math.IsInf(q, 0) {
		panic(panicFactorSmall)
	}

	return func(o *Options) { o.factor = q }
}

// WithMaxIter sets the iteration budget. Panics if n < 1.
func WithMaxIter(n int) Option {
	if n < 1 {
		panic(panicMaxIterSmall)
	}

	return func(o *Options) { o.maxIt = n }
}

// WithAbsTol sets the absolute tolerance. Panics if atol < 0 or NaN.
func WithAbsTol(atol float64) Option {
	if !(atol >= 0) {
		panic(panicTolInvalid)
	}

	return func(o *Options) { o.atol = atol }
}

// WithRelTol sets the relative tolerance. Panics if rtol < 0 or NaN.
func WithRelTol(rtol float64) Option {
	if !(rtol >= 0) {
		panic(panicTolInvalid)
	}

	return func(o *Options) { o.rtol = rtol }
}

func gatherOptions(opts []Option) Options {
	o := Options{
		order:  DefaultOrder,
		step:   DefaultInitialStep,
		factor: DefaultStepFactor,
		maxIt:  DefaultMaxIter,
		atol:   DefaultAbsTol,
		rtol:   DefaultRelTol,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
