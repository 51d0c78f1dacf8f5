package optimize

import "errors"

var (
	// ErrNilFunc is returned when f (or df for Newton) is nil.
	ErrNilFunc = errors.New("optimize: function is nil")

	// ErrNoSignChange is returned by Bisect when f(a) and f(b) have the same sign.
	ErrNoSignChange = errors.New("optimize: f(a) and f(b) must have opposite signs")

	// ErrZeroDerivative is returned when the Newton derivative or the secant
	// slope vanishes before convergence.
	ErrZeroDerivative = errors.New("optimize: derivative is zero")

	// ErrNotConverged is returned with the last iterate when the iteration
	// budget is spent.
	ErrNotConverged = errors.New("optimize: iteration limit reached")

	// ErrNonFinite is returned for a NaN/Inf starting point or function value.
	ErrNonFinite = errors.New("optimize: non-finite value")
)
