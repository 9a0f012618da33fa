package renderer

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// RowFunc renders one scanline on behalf of a worker and returns the number
// of samples it traced.
type RowFunc func(workerID, row int) (int, error)

// WorkerPool runs a fixed number of workers that pull rows from a shared
// scheduler until it is exhausted.
type WorkerPool struct {
	workers    []*Worker
	numWorkers int
	wg         sync.WaitGroup
}

// Worker renders the rows it claims and keeps its own counters
type Worker struct {
	ID    int
	stats WorkerStats
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = DefaultWorkerCount()
	}

	wp := &WorkerPool{numWorkers: numWorkers}
	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{ID: i, stats: WorkerStats{ID: i}})
	}
	return wp
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run starts every worker and blocks until all of them have exited. The
// first worker error (including a recovered panic) stops the remaining
// workers from claiming new rows and is returned once they have joined.
// Cancelling ctx has the same effect and returns ctx.Err().
func (wp *WorkerPool) Run(ctx context.Context, scheduler RowScheduler, render RowFunc) ([]WorkerStats, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errs := make(chan error, wp.numWorkers)
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(runCtx, &wp.wg, scheduler, render, errs, cancel)
	}
	wp.wg.Wait()
	close(errs)

	stats := make([]WorkerStats, 0, len(wp.workers))
	for _, worker := range wp.workers {
		stats = append(stats, worker.stats)
	}

	if err, ok := <-errs; ok {
		return stats, err
	}
	if err := ctx.Err(); err != nil {
		return stats, err
	}
	return stats, nil
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup, scheduler RowScheduler, render RowFunc, errs chan<- error, abort context.CancelFunc) {
	defer wg.Done()
	w.stats = WorkerStats{ID: w.ID}
	start := time.Now()
	defer func() { w.stats.RenderTime = time.Since(start) }()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		row, ok := scheduler.Next()
		if !ok {
			return
		}

		samples, err := w.renderRow(render, row)
		if err != nil {
			errs <- err
			abort()
			return
		}
		w.stats.Rows++
		w.stats.Samples += samples
	}
}

// renderRow invokes render and converts a panic into an ErrWorkerPanic error
func (w *Worker) renderRow(render RowFunc, row int) (samples int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: worker %d, row %d: %v", ErrWorkerPanic, w.ID, row, r)
		}
	}()
	return render(w.ID, row)
}
