package workerpool

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Submit once the pool has been closed.
var ErrClosed = errors.New("workerpool: closed")

// Task is a unit of work for the pool. Fn must be safe to run concurrently.
// ResultC, when set, receives exactly one Result and should be buffered.
type Task struct {
	Fn      func() (any, error)
	ResultC chan Result
}

type Result struct {
	Value any
	Err   error
}

type WorkerPool struct {
	tasks  chan Task
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWorkerPool starts workerCount workers sharing a queue of queueSize tasks.
func NewWorkerPool(workerCount int, queueSize int) *WorkerPool {
	if workerCount < 1 {
		workerCount = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	wp := &WorkerPool{
		tasks:  make(chan Task, queueSize),
		ctx:    ctx,
		cancel: cancel,
	}
	wp.wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for {
		select {
		case <-wp.ctx.Done():
			return
		case task := <-wp.tasks:
			res, err := task.Fn()
			if task.ResultC != nil {
				task.ResultC <- Result{Value: res, Err: err}
			}
		}
	}
}

// Submit queues a task, blocking while the queue is full.
func (wp *WorkerPool) Submit(ctx context.Context, task Task) error {
	select {
	case <-wp.ctx.Done():
		return ErrClosed
	default:
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-wp.ctx.Done():
		return ErrClosed
	case wp.tasks <- task:
		return nil
	}
}

// Done is closed when the pool shuts down.
func (wp *WorkerPool) Done() <-chan struct{} {
	return wp.ctx.Done()
}

// Close stops the workers and waits for running tasks to return.
// Queued tasks that have not started are dropped.
func (wp *WorkerPool) Close() {
	wp.cancel()
	wp.wg.Wait()
}
