package sweepservice

import "context"

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
}

// Task is one session credit attempt.
type Task func() error

// WorkerPool caps how many credit attempts a sweep runs at once. AddTask
// runs the task on the caller's goroutine and blocks until it finishes,
// so a sweep's errgroup covers the work itself, not just the handoff.
type WorkerPool struct {
	sem chan struct{}
}

func NewWorkerPool(size int) *WorkerPool {
	return &WorkerPool{sem: make(chan struct{}, size)}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.sem <- struct{}{}:
	}
	defer func() { <-wp.sem }()

	return task()
}
