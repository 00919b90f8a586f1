package workers

import "context"

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Wait blocks until every worker has stopped.
func (w *Workers) Wait() {
	for _, worker := range w.workers {
		worker.Wait()
	}
}
