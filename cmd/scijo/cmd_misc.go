package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/scijo/cmd/scijo/catalog"
	"github.com/katalvlaran/scijo/constants"
	"github.com/katalvlaran/scijo/fft"
	"github.com/katalvlaran/scijo/interpolate"
)

func parseFloats(in []string) ([]float64, error) {
	out := make([]float64, len(in))
	for i, s := range in {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}

func newInterpCmd() *cobra.Command {
	var (
		xs, ys []float64
		policy string
	)
	cmd := &cobra.Command{
		Use:   "interp X...",
		Short: "Piecewise-linear interpolation through --xs/--ys",
		Example: `  scijo interp --xs 0,1,2 --ys 0,10,20 0.5 1.5
  scijo interp --xs -2,0,2 --ys 4,0,4 -- -1 1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, pos []string) error {
			points, err := parseFloats(pos)
			if err != nil {
				return err
			}
			var opt interpolate.Option
			switch policy {
			case "raise":
				opt = interpolate.WithPolicy(interpolate.Raise)
			case "clamp":
				opt = interpolate.WithPolicy(interpolate.Clamp)
			case "extrapolate":
				opt = interpolate.WithPolicy(interpolate.Extrapolate)
			default:
				return fmt.Errorf("policy %q: want raise, clamp or extrapolate", policy)
			}
			l, err := interpolate.NewLinear(xs, ys, opt)
			if err != nil {
				return err
			}
			vals, err := l.Eval(points)
			if err != nil {
				return err
			}
			for _, v := range vals {
				fmt.Fprintf(cmd.OutOrStdout(), "%.12g\n", v)
			}

			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&xs, "xs", nil, "knot abscissae, strictly increasing")
	cmd.Flags().Float64SliceVar(&ys, "ys", nil, "knot values")
	cmd.Flags().StringVar(&policy, "policy", "raise", "out-of-range policy: raise|clamp|extrapolate")

	return cmd
}

func newFFTCmd() *cobra.Command {
	var inverse bool
	cmd := &cobra.Command{
		Use:   "fft VALUE...",
		Short: "Discrete Fourier transform of real samples",
		Example: `  scijo fft 1 1 1 1
  scijo fft --inverse -- 1 -1 1 -1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, pos []string) error {
			vals, err := parseFloats(pos)
			if err != nil {
				return err
			}
			in := make([]complex128, len(vals))
			for i, v := range vals {
				in[i] = complex(v, 0)
			}
			var out []complex128
			if inverse {
				out, err = fft.IFFT(in)
			} else {
				out, err = fft.FFT(in)
			}
			if err != nil {
				return err
			}
			for k, c := range out {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%.12g\t%.12g\n", k, real(c), imag(c))
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&inverse, "inverse", false, "compute the inverse transform")

	return cmd
}

func newConstCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "const [SUBSTR]",
		Short: "List CODATA constants whose name contains SUBSTR",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, pos []string) error {
			sub := ""
			if len(pos) == 1 {
				sub = pos[0]
			}
			names := constants.Find(sub)
			if len(names) == 0 {
				return fmt.Errorf("no constant matches %q", sub)
			}
			for _, name := range names {
				c, err := constants.Lookup(name)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), c.String())
			}

			return nil
		},
	}
}

func newFuncsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "funcs",
		Short: "List the functions available to quad, deriv, root and batch",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range catalog.Names() {
				e, _ := catalog.Lookup(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", e.Name, e.Doc)
			}
		},
	}
}
