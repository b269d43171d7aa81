package service

import (
	"context"

	"shift-payroll/pkg/workerpool"
)

// AsyncService runs blocking work on the shared worker pool so a burst of chat
// updates cannot open more database work than there are workers.
type AsyncService struct {
	Pool *workerpool.WorkerPool
}

func NewAsyncService(pool *workerpool.WorkerPool) *AsyncService {
	return &AsyncService{Pool: pool}
}

// SubmitAsync runs fn on the pool and waits for its result.
func (a *AsyncService) SubmitAsync(ctx context.Context, fn func() (any, error)) (any, error) {
	resCh := make(chan workerpool.Result, 1)
	if err := a.Pool.Submit(ctx, workerpool.Task{Fn: fn, ResultC: resCh}); err != nil {
		return nil, err
	}
	select {
	case res := <-resCh:
		return res.Value, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-a.Pool.Done():
		return nil, workerpool.ErrClosed
	}
}
