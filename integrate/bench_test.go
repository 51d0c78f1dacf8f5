// Package integrate_test provides benchmarks for both integrators on smooth,
// peaked and singular integrands.
package integrate_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/scijo/integrate"
)

// sinks to defeat dead-code elimination
var (
	sinkR integrate.Result
	sinkK []integrate.KernelOut
)

var benchFuncs = []struct {
	name string
	f    integrate.Func
	a, b float64
}{
	{"exp", integrate.Scalar(math.Exp), 0, 1},
	{"runge", integrate.Scalar(runge), -1, 1},
	{"invsqrt", integrate.Scalar(func(x float64) float64 { return 1 / math.Sqrt(x) }), 0, 1},
}

func BenchmarkNonAdaptive(b *testing.B) {
	b.ReportAllocs()
	for _, bf := range benchFuncs {
		b.Run(bf.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				res, err := integrate.NonAdaptive(bf.f, bf.a, bf.b)
				if err != nil {
					b.Fatal(err)
				}
				sinkR = res
			}
		})
	}
}

func BenchmarkAdaptive(b *testing.B) {
	b.ReportAllocs()
	for _, bf := range benchFuncs {
		b.Run(bf.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				res, err := integrate.Adaptive(bf.f, bf.a, bf.b)
				if err != nil {
					b.Fatal(err)
				}
				sinkR = res
			}
		})
	}
}

func BenchmarkAdaptiveRules(b *testing.B) {
	b.ReportAllocs()
	for _, rule := range []integrate.Rule{integrate.GaussKronrod15, integrate.GaussKronrod21} {
		b.Run(rule.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				sinkR, _ = integrate.Adaptive(integrate.Scalar(runge), -1, 1,
					integrate.WithEpsAbs(0), integrate.WithEpsRel(1e-12), integrate.WithRule(rule))
			}
		})
	}
}

func BenchmarkLadder(b *testing.B) {
	b.ReportAllocs()
	f := integrate.Scalar(math.Cos)
	for i := 0; i < b.N; i++ {
		sinkK = integrate.EvaluateLadder_TestOnly(f, nil, 0, 1)
	}
}
