package sweepservice

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPool_AddTask(t *testing.T) {
	t.Run("Runs the task and returns its error", func(t *testing.T) {
		wp := NewWorkerPool(2)

		ran := false
		err := wp.AddTask(context.Background(), func() error {
			ran = true
			return nil
		})
		assert.NoError(t, err)
		assert.True(t, ran)

		taskErr := errors.New("task failed")
		err = wp.AddTask(context.Background(), func() error { return taskErr })
		assert.ErrorIs(t, err, taskErr)
	})

	t.Run("Cancelled context rejects the task", func(t *testing.T) {
		wp := NewWorkerPool(1)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := wp.AddTask(ctx, func() error {
			t.Fatal("task must not run")
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Caps concurrent tasks at the pool size", func(t *testing.T) {
		const size = 3
		wp := NewWorkerPool(size)

		var inFlight, peak int64
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				wp.AddTask(context.Background(), func() error {
					n := atomic.AddInt64(&inFlight, 1)
					for {
						p := atomic.LoadInt64(&peak)
						if n <= p || atomic.CompareAndSwapInt64(&peak, p, n) {
							break
						}
					}
					atomic.AddInt64(&inFlight, -1)
					return nil
				})
			}()
		}
		wg.Wait()

		assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(size))
	})
}
