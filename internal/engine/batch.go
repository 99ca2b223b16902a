package engine

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/algolab/internal/drivers"
	"github.com/san-kum/algolab/internal/frame"
)

// Job is one independent run inside a Batch.
type Job struct {
	Driver  drivers.Driver
	Data    frame.Dataset
	Config  Config
	Metrics func() []Metric
}

// Batch runs jobs concurrently, at most limit at a time. Each job gets its
// own Runner, so drivers and metrics must not be shared between jobs.
type Batch struct {
	jobs  []Job
	limit int
}

func NewBatch(jobs ...Job) *Batch {
	return &Batch{jobs: jobs, limit: runtime.GOMAXPROCS(0)}
}

func (b *Batch) Add(j Job) { b.jobs = append(b.jobs, j) }

func (b *Batch) Len() int { return len(b.jobs) }

// SetLimit bounds the number of jobs in flight; n < 1 means no bound.
func (b *Batch) SetLimit(n int) { b.limit = n }

// Run returns results in job order. The first validation error cancels the
// jobs that have not started yet and is returned.
func (b *Batch) Run(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, len(b.jobs))

	g, ctx := errgroup.WithContext(ctx)
	if b.limit > 0 {
		g.SetLimit(b.limit)
	}
	for i, job := range b.jobs {
		g.Go(func() error {
			r := New(job.Driver)
			if job.Metrics != nil {
				for _, m := range job.Metrics() {
					r.AddMetric(m)
				}
			}
			res, err := r.Run(ctx, job.Data, job.Config)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
