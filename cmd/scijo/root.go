package main

import (
	"io"

	"github.com/spf13/cobra"
)

// newRootCmd assembles the command tree writing results to out and logs to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "scijo",
		Short: "Numerical integration, differentiation, root finding and friends",
		Long: `Numerical integration, differentiation, root finding and friends.

Numbers that start with '-' read as flags. Put flags first and separate
negative positional numbers with "--", e.g. scijo quad runge -- -1 1.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initLogging(errOut, logLevel)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warning", "log level: debug|info|notice|warning|error|critical")

	root.AddCommand(
		newQuadCmd(),
		newDerivCmd(),
		newRootFindCmd(),
		newInterpCmd(),
		newFFTCmd(),
		newConstCmd(),
		newBatchCmd(),
		newFuncsCmd(),
	)

	return root
}
