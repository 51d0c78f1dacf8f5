package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/scijo/cmd/scijo/catalog"
	"github.com/katalvlaran/scijo/differentiate"
	"github.com/katalvlaran/scijo/optimize"
)

func newRootFindCmd() *cobra.Command {
	var (
		args    []float64
		method  string
		xtol    float64
		maxIter int
	)
	cmd := &cobra.Command{
		Use:   "root FUNC A B",
		Short: "Find a root of a catalog function (bracket [A,B] or start points A, B)",
		Example: `  scijo root poly 0 2 --args -2,0,1
  scijo root sin --method newton -- -1 1`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, pos []string) error {
			entry, err := catalog.Resolve(pos[0], args)
			if err != nil {
				return err
			}
			a, err := strconv.ParseFloat(pos[1], 64)
			if err != nil {
				return fmt.Errorf("A: %w", err)
			}
			b, err := strconv.ParseFloat(pos[2], 64)
			if err != nil {
				return fmt.Errorf("B: %w", err)
			}

			f := entry.Bind(args)
			opts := []optimize.Option{optimize.WithXTol(xtol), optimize.WithMaxIter(maxIter)}
			var res optimize.RootResult
			switch method {
			case "bisect":
				res, err = optimize.Bisect(f, a, b, opts...)
			case "secant":
				res, err = optimize.Secant(f, a, b, opts...)
			case "newton":
				// The catalog has no analytic derivatives; Newton starts at the
				// bracket midpoint with a numerical derivative.
				df := func(x float64) float64 {
					d, derr := differentiate.Derivative(f, x)
					if derr != nil {
						log.Debugf("derivative at %g: %v", x, derr)
					}
					return d.Df
				}
				res, err = optimize.Newton(f, df, a+(b-a)/2, opts...)
			default:
				return fmt.Errorf("method %q: want bisect, secant or newton", method)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "root=%.12g iterations=%d calls=%d converged=%t\n",
				res.Root, res.Iterations, res.FuncCalls, res.Converged)

			return nil
		},
	}
	f := cmd.Flags()
	f.Float64SliceVar(&args, "args", nil, "extra parameters passed to FUNC")
	f.StringVar(&method, "method", "bisect", "bisect|secant|newton")
	f.Float64Var(&xtol, "xtol", optimize.DefaultXTol, "absolute step tolerance")
	f.IntVar(&maxIter, "maxiter", optimize.DefaultMaxIter, "iteration budget")

	return cmd
}
