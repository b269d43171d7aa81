package workerpool

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSubmitReturnsResult(t *testing.T) {
	wp := NewWorkerPool(2, 4)
	defer wp.Close()

	resCh := make(chan Result, 1)
	require.NoError(t, wp.Submit(context.Background(), Task{
		Fn:      func() (any, error) { return 42, nil },
		ResultC: resCh,
	}))

	res := <-resCh
	assert.NoError(t, res.Err)
	assert.Equal(t, 42, res.Value)
}

func TestSubmitPropagatesError(t *testing.T) {
	wp := NewWorkerPool(1, 1)
	defer wp.Close()

	boom := errors.New("boom")
	resCh := make(chan Result, 1)
	require.NoError(t, wp.Submit(context.Background(), Task{
		Fn:      func() (any, error) { return nil, boom },
		ResultC: resCh,
	}))

	assert.ErrorIs(t, (<-resCh).Err, boom)
}

func TestConcurrencyIsBounded(t *testing.T) {
	const workers = 3
	wp := NewWorkerPool(workers, 16)
	defer wp.Close()

	var running, peak int32
	var wg sync.WaitGroup
	for i := 0; i < 12; i++ {
		wg.Add(1)
		resCh := make(chan Result, 1)
		require.NoError(t, wp.Submit(context.Background(), Task{
			Fn: func() (any, error) {
				n := atomic.AddInt32(&running, 1)
				for {
					p := atomic.LoadInt32(&peak)
					if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				atomic.AddInt32(&running, -1)
				return nil, nil
			},
			ResultC: resCh,
		}))
		go func() {
			defer wg.Done()
			<-resCh
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(workers))
}

func TestSubmitAfterClose(t *testing.T) {
	wp := NewWorkerPool(1, 1)
	wp.Close()

	err := wp.Submit(context.Background(), Task{Fn: func() (any, error) { return nil, nil }})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestSubmitHonoursContext(t *testing.T) {
	wp := NewWorkerPool(1, 0)
	defer wp.Close()

	release := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, wp.Submit(context.Background(), Task{
		Fn: func() (any, error) {
			close(started)
			<-release
			return nil, nil
		},
	}))
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := wp.Submit(ctx, Task{Fn: func() (any, error) { return nil, nil }})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
}
