package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/scijo/integrate"
)

var errNoJobs = errors.New("batch: file has no jobs")

// batchFile is the YAML layout of a batch run.
//
//	jobs:
//	  - name: runge
//	    func: runge
//	    a: -1
//	    b: 1
//	    epsrel: 1e-10
type batchFile struct {
	Jobs []quadJob `yaml:"jobs"`
}

// loadBatch reads and decodes path, naming unnamed jobs by position.
func loadBatch(path string) ([]quadJob, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var bf batchFile
	if err = yaml.Unmarshal(raw, &bf); err != nil {
		return nil, fmt.Errorf("batch: parse %s: %w", path, err)
	}
	if len(bf.Jobs) == 0 {
		return nil, errNoJobs
	}
	for i := range bf.Jobs {
		if bf.Jobs[i].Name == "" {
			bf.Jobs[i].Name = fmt.Sprintf("job%d", i+1)
		}
	}

	return bf.Jobs, nil
}

// runBatch integrates every job with at most limit running at once and
// returns the results in input order. The first structural error cancels
// the remaining jobs; non-convergence is a Status, not an error.
func runBatch(ctx context.Context, jobs []quadJob, limit int) ([]integrate.Result, error) {
	results := make([]integrate.Result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := job.run()
			if err != nil {
				return fmt.Errorf("job %q: %w", job.Name, err)
			}
			log.Infof("job %s finished: %s", job.Name, res.Status)
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func newBatchCmd() *cobra.Command {
	var jobs int
	cmd := &cobra.Command{
		Use:   "batch FILE.yaml",
		Short: "Run the integration jobs listed in a YAML file concurrently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, pos []string) error {
			if jobs < 1 {
				return fmt.Errorf("--jobs %d: must be >= 1", jobs)
			}
			batch, err := loadBatch(pos[0])
			if err != nil {
				return err
			}
			log.Infof("running %d jobs with concurrency %d", len(batch), jobs)
			results, err := runBatch(cmd.Context(), batch, jobs)
			if err != nil {
				return err
			}
			for i, res := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", batch[i].Name, res)
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&jobs, "jobs", runtime.NumCPU(), "maximum number of jobs integrated at once")

	return cmd
}
