package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/scijo/cmd/scijo/catalog"
	"github.com/katalvlaran/scijo/differentiate"
)

func newDerivCmd() *cobra.Command {
	var (
		args  []float64
		order int
	)
	cmd := &cobra.Command{
		Use:   "deriv FUNC X",
		Short: "Differentiate a catalog function at X",
		Example: `  scijo deriv sin 1 --order 8
  scijo deriv exp -- -2.5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, pos []string) error {
			entry, err := catalog.Resolve(pos[0], args)
			if err != nil {
				return err
			}
			x, err := strconv.ParseFloat(pos[1], 64)
			if err != nil {
				return fmt.Errorf("point X: %w", err)
			}
			if order != 2 && order != 4 && order != 6 && order != 8 {
				return fmt.Errorf("order %d: want 2, 4, 6 or 8", order)
			}

			res, err := differentiate.Derivative(entry.Bind(args), x, differentiate.WithOrder(order))
			if err != nil {
				return err
			}
			if !res.Converged {
				log.Warningf("derivative of %s at %g did not converge (err=%g)", entry.Name, x, res.Err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "df=%.12g err=%.3g niter=%d nfev=%d converged=%t\n",
				res.Df, res.Err, res.NIter, res.NFev, res.Converged)

			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&args, "args", nil, "extra parameters passed to FUNC")
	cmd.Flags().IntVar(&order, "order", differentiate.DefaultOrder, "stencil accuracy order: 2|4|6|8")

	return cmd
}
