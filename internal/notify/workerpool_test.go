package notify

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPoolRunsTasks(t *testing.T) {
	wp := NewWorkerPool(2)
	defer wp.Close()

	var wg sync.WaitGroup
	var mu sync.Mutex
	done := 0

	for i := 0; i < 5; i++ {
		wg.Add(1)
		err := wp.AddTask(context.Background(), func() error {
			defer wg.Done()
			mu.Lock()
			done++
			mu.Unlock()
			return nil
		})
		assert.NoError(t, err)
	}

	wg.Wait()
	assert.Equal(t, 5, done)
}

func TestWorkerPoolRespectsContext(t *testing.T) {
	wp := &WorkerPool{tasks: make(chan Task)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := wp.AddTask(ctx, func() error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
