// Package optimize finds roots of scalar functions.
//
// Root finders:
//
//	Bisect(f, a, b)       bracketing; needs f(a)·f(b) ≤ 0, always converges
//	Newton(f, df, x0)     quadratic convergence near a simple root
//	Secant(f, x0, x1)     derivative-free, superlinear
//
// Every finder stops when two successive iterates agree to
// xtol + rtol·|x| (or f hits exactly zero) and reports iterations and
// function calls in RootResult. Exhausting the iteration budget returns the
// last iterate together with ErrNotConverged, so callers can still inspect it.
package optimize
