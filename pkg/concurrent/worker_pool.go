package concurrent

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

type JobFunc[T any, G any] func(ctx context.Context, job T) (G, error)

type WorkerPool[T any, G any] struct {
	numWorkers int
}

// NewWorkerPool. numWorkers <= 0 means GOMAXPROCS workers
func NewWorkerPool[T any, G any](numWorkers int) *WorkerPool[T, G] {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
	}
}

func (wp *WorkerPool[T, G]) NumWorkers() int {
	return wp.numWorkers
}

// Run. results[i] is the result of jobs[i]. the first error cancels the remaining jobs and is returned.
func (wp *WorkerPool[T, G]) Run(ctx context.Context, jobs []T, jobFunc JobFunc[T, G]) ([]G, error) {
	results := make([]G, len(jobs))
	group, ctx := errgroup.WithContext(ctx)

	jobQueue := make(chan int)
	group.Go(func() error {
		defer close(jobQueue)
		for i := range jobs {
			select {
			case jobQueue <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < wp.numWorkers; w++ {
		group.Go(func() error {
			for i := range jobQueue {
				if err := ctx.Err(); err != nil {
					return err
				}
				res, err := jobFunc(ctx, jobs[i])
				if err != nil {
					return err
				}
				results[i] = res
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
