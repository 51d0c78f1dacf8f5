// Command scijo runs the scijo numerical routines from the command line.
//
//	scijo quad runge --epsrel 1e-10 -- -1 1
//	scijo deriv sin 1 --order 8
//	scijo root poly 0 2 --args -2,0,1
//	scijo batch jobs.yaml --jobs 4
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
