package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/scijo/cmd/scijo/catalog"
	"github.com/katalvlaran/scijo/integrate"
)

// quadJob is one integration request, shared by the quad and batch commands.
type quadJob struct {
	Name   string    `yaml:"name"`
	Func   string    `yaml:"func"`
	A      float64   `yaml:"a"`
	B      float64   `yaml:"b"`
	Args   []float64 `yaml:"args"`
	Method string    `yaml:"method"`
	EpsAbs *float64  `yaml:"epsabs"`
	EpsRel *float64  `yaml:"epsrel"`
	Limit  *int      `yaml:"limit"`
	Rule   int       `yaml:"rule"`
}

// options translates the job into integrator options. Unset tolerances and
// limit keep the integrator defaults; a zero rule means GK21.
func (q quadJob) options() ([]integrate.Option, error) {
	opts := []integrate.Option{integrate.WithArgs(q.Args...)}
	if q.EpsAbs != nil {
		opts = append(opts, integrate.WithEpsAbs(*q.EpsAbs))
	}
	if q.EpsRel != nil {
		opts = append(opts, integrate.WithEpsRel(*q.EpsRel))
	}
	if q.Limit != nil {
		opts = append(opts, integrate.WithLimit(*q.Limit))
	}
	switch q.Rule {
	case 0, 21:
	case 15:
		opts = append(opts, integrate.WithRule(integrate.GaussKronrod15))
	default:
		return nil, fmt.Errorf("rule %d: want 15 or 21", q.Rule)
	}

	return opts, nil
}

// run resolves the integrand and dispatches to the selected method.
func (q quadJob) run() (integrate.Result, error) {
	entry, err := catalog.Resolve(q.Func, q.Args)
	if err != nil {
		return integrate.Result{}, err
	}
	opts, err := q.options()
	if err != nil {
		return integrate.Result{}, err
	}

	log.Debugf("quad %s on [%g, %g] method=%s args=%v", q.Func, q.A, q.B, q.Method, q.Args)
	switch q.Method {
	case "", "adaptive", "qags":
		return integrate.Adaptive(entry.F, q.A, q.B, opts...)
	case "qng", "nonadaptive":
		return integrate.NonAdaptive(entry.F, q.A, q.B, opts...)
	default:
		return integrate.Result{}, fmt.Errorf("method %q: want adaptive or qng", q.Method)
	}
}

func newQuadCmd() *cobra.Command {
	var (
		q              quadJob
		epsAbs, epsRel float64
		limit          int
	)
	cmd := &cobra.Command{
		Use:   "quad FUNC A B",
		Short: "Integrate a catalog function over [A, B]",
		Example: `  scijo quad sin 0 3.141592653589793
  scijo quad runge --epsrel 1e-10 -- -1 1`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			q.Func = args[0]
			if q.A, err = strconv.ParseFloat(args[1], 64); err != nil {
				return fmt.Errorf("bound A: %w", err)
			}
			if q.B, err = strconv.ParseFloat(args[2], 64); err != nil {
				return fmt.Errorf("bound B: %w", err)
			}
			if cmd.Flags().Changed("epsabs") {
				q.EpsAbs = &epsAbs
			}
			if cmd.Flags().Changed("epsrel") {
				q.EpsRel = &epsRel
			}
			if cmd.Flags().Changed("limit") {
				q.Limit = &limit
			}

			res, err := q.run()
			if err != nil {
				return err
			}
			if !res.Success() {
				log.Warningf("%s: %s", res.Status, res.Status.Message())
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.String())

			return nil
		},
	}
	f := cmd.Flags()
	f.Float64SliceVar(&q.Args, "args", nil, "extra parameters passed to FUNC")
	f.Float64Var(&epsAbs, "epsabs", integrate.DefaultEpsAbs, "absolute tolerance")
	f.Float64Var(&epsRel, "epsrel", integrate.DefaultEpsRel, "relative tolerance")
	f.IntVar(&limit, "limit", integrate.DefaultLimit, "subdivision budget (adaptive)")
	f.StringVar(&q.Method, "method", "adaptive", "adaptive|qng")
	f.IntVar(&q.Rule, "rule", 21, "Gauss–Kronrod rule per subinterval: 15|21")

	return cmd
}
