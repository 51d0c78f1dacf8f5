// Package integrate computes definite integrals of scalar functions with
// Gauss–Kronrod quadrature and a self-consistent error estimate.
//
// 🚀 What is inside?
//
//	Two strategies reproducing the QUADPACK algorithms:
//	  • NonAdaptive (QNG): nested 10/21 → 21/43 → 43/87-point rules, every
//	    function value of a level reused by the next; at most 87 calls.
//	  • Adaptive (QAG/QAGS without extrapolation, alias Quad): a global
//	    max-heap over subintervals keyed by local error; the worst one is
//	    bisected until the sum of local errors meets the tolerance or the
//	    subdivision budget runs out.
//
// ✨ Error estimate:
//
//	abserr = |K − G| rescaled by the QUADPACK law
//	  asc·min(1, (200·|K−G|/asc)^1.5), floored at 50·ε·∫|f|,
//	where asc ≈ ∫|f − mean|. Convergence: abserr ≤ max(epsabs, epsrel·|I|).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/scijo/integrate"
//
//	res, err := integrate.Adaptive(integrate.Scalar(math.Sin), 0, math.Pi,
//	    integrate.WithEpsRel(1e-10),
//	    integrate.WithLimit(100),
//	)
//	if err != nil {
//	    // nil integrand, NaN/Inf bounds, NaN tolerance, limit < 1
//	}
//	if !res.Success() {
//	    log.Println(res.Status.Message())
//	}
//
// Status taxonomy:
//
//	Success, SubdivisionLimitReached, RoundoffLimited, BadIntegrandBehavior,
//	ExtrapolationRoundoff (reserved), ProbablyDivergent (reserved), InvalidInput.
//
// Non-convergence is informational: the Result always carries the best
// estimate found. Only structurally invalid input returns an error.
//
// Concurrency: every call is synchronous and owns its scratch state, so
// independent calls may run in parallel. The integrand is called from the
// calling goroutine only.
package integrate
