package service

import (
	"planning-bot/pkg/workerpool"
)

// AsyncService runs engine work on the pool. With a single worker every
// submitted function runs alone and in submission order.
type AsyncService struct {
	Pool *workerpool.WorkerPool
}

func NewAsyncService(pool *workerpool.WorkerPool) *AsyncService {
	return &AsyncService{Pool: pool}
}

// SubmitAsync runs fn on the pool and waits for its result.
func (a *AsyncService) SubmitAsync(fn func() (any, error)) (any, error) {
	resCh := make(chan workerpool.Result, 1)
	if err := a.Pool.Submit(workerpool.Task{
		Fn:      fn,
		ResultC: resCh,
	}); err != nil {
		return nil, err
	}
	res := <-resCh
	return res.Value, res.Err
}

// Do is SubmitAsync for functions without a value.
func (a *AsyncService) Do(fn func() error) error {
	_, err := a.SubmitAsync(func() (any, error) {
		return nil, fn()
	})
	return err
}
