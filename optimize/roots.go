package optimize

// RootResult describes a root search.
type RootResult struct {
	Root       float64
	Iterations int
	FuncCalls  int
	Converged  bool
}

// Bisect finds a root of f in [a,b] by repeated halving.
// f(a) and f(b) must not share a sign; an exact zero at an end is returned at once.
func Bisect(f func(float64) float64, a, b float64, opts ...Option) (RootResult, error) {
	if f == nil {
		return RootResult{}, ErrNilFunc
	}
	if nonFinite(a) || nonFinite(b) {
		return RootResult{}, ErrNonFinite
	}
	o := gatherOptions(opts)

	fa, fb := f(a), f(b)
	res := RootResult{FuncCalls: 2}
	if nonFinite(fa) || nonFinite(fb) {
		return res, ErrNonFinite
	}
	switch {
	case fa == 0:
		res.Root, res.Converged = a, true
		return res, nil
	case fb == 0:
		res.Root, res.Converged = b, true
		return res, nil
	case (fa > 0) == (fb > 0):
		return res, ErrNoSignChange
	}

	for res.Iterations < o.maxIter {
		res.Iterations++
		mid := a + (b-a)/2
		fm := f(mid)
		res.FuncCalls++
		res.Root = mid
		if nonFinite(fm) {
			return res, ErrNonFinite
		}
		if fm == 0 || o.close(a, mid) {
			res.Converged = true
			return res, nil
		}
		if (fm > 0) == (fa > 0) {
			a, fa = mid, fm
		} else {
			b = mid
		}
	}

	return res, ErrNotConverged
}

// Newton finds a root of f from x0 using its derivative df.
func Newton(f, df func(float64) float64, x0 float64, opts ...Option) (RootResult, error) {
	if f == nil || df == nil {
		return RootResult{}, ErrNilFunc
	}
	if nonFinite(x0) {
		return RootResult{}, ErrNonFinite
	}
	o := gatherOptions(opts)

	res := RootResult{Root: x0}
	for res.Iterations < o.maxIter {
		res.Iterations++
		fx, dfx := f(x0), df(x0)
		res.FuncCalls += 2
		if nonFinite(fx) || nonFinite(dfx) {
			return res, ErrNonFinite
		}
		if fx == 0 {
			res.Converged = true
			return res, nil
		}
		if dfx == 0 {
			return res, ErrZeroDerivative
		}
		x1 := x0 - fx/dfx
		res.Root = x1
		if o.close(x0, x1) {
			res.Converged = true
			return res, nil
		}
		x0 = x1
	}

	return res, ErrNotConverged
}

// Secant finds a root of f from the two starting points x0 and x1.
func Secant(f func(float64) float64, x0, x1 float64, opts ...Option) (RootResult, error) {
	if f == nil {
		return RootResult{}, ErrNilFunc
	}
	if nonFinite(x0) || nonFinite(x1) {
		return RootResult{}, ErrNonFinite
	}
	o := gatherOptions(opts)

	f0, f1 := f(x0), f(x1)
	res := RootResult{Root: x1, FuncCalls: 2}
	for res.Iterations < o.maxIter {
		if nonFinite(f0) || nonFinite(f1) {
			return res, ErrNonFinite
		}
		if f1 == 0 {
			res.Converged = true
			return res, nil
		}
		if f1 == f0 {
			return res, ErrZeroDerivative
		}
		res.Iterations++
		x2 := x1 - f1*(x1-x0)/(f1-f0)
		res.Root = x2
		if o.close(x1, x2) {
			res.Converged = true
			return res, nil
		}
		x0, f0 = x1, f1
		x1, f1 = x2, f(x2)
		res.FuncCalls++
	}

	return res, ErrNotConverged
}
