package workerpool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleWorkerKeepsOrder(t *testing.T) {
	wp := NewWorkerPool(1, 16)

	var (
		mu    sync.Mutex
		order []int
	)
	for i := 0; i < 10; i++ {
		i := i
		require.NoError(t, wp.Submit(Task{Fn: func() (any, error) {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			return nil, nil
		}}))
	}
	wp.Close()

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, order)
}

func TestResultDelivered(t *testing.T) {
	wp := NewWorkerPool(2, 1)
	defer wp.Close()

	resC := make(chan Result, 1)
	require.NoError(t, wp.Submit(Task{Fn: func() (any, error) { return "ok", nil }, ResultC: resC}))
	res := <-resC
	require.NoError(t, res.Err)
	assert.Equal(t, "ok", res.Value)
}

func TestPanicBecomesError(t *testing.T) {
	wp := NewWorkerPool(1, 1)
	defer wp.Close()

	resC := make(chan Result, 1)
	require.NoError(t, wp.Submit(Task{Fn: func() (any, error) { panic("kaboom") }, ResultC: resC}))
	res := <-resC
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "kaboom")

	// The worker survives.
	require.NoError(t, wp.Submit(Task{Fn: func() (any, error) { return 1, nil }, ResultC: resC}))
	assert.Equal(t, 1, (<-resC).Value)
}

func TestSubmitAfterClose(t *testing.T) {
	wp := NewWorkerPool(0, 1)
	wp.Close()
	wp.Close()

	assert.ErrorIs(t, wp.Submit(Task{Fn: func() (any, error) { return nil, nil }}), ErrClosed)
}
