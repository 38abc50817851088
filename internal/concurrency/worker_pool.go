package concurrency

import (
	"context"
	"sync"
)

// WorkerFn handles the task at index. Tasks are independent.
type WorkerFn func(ctx context.Context, index int)

// SimpleWorkerPool runs fn for every index in [0, tasks) on at most
// concurrency goroutines and returns once all started tasks finish.
// Indices not yet handed out when ctx is cancelled are skipped.
func SimpleWorkerPool(ctx context.Context, concurrency int, tasks int, fn WorkerFn) {
	if tasks <= 0 {
		return
	}
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > tasks {
		concurrency = tasks
	}

	idxCh := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range idxCh {
				fn(ctx, idx)
			}
		}()
	}

feed:
	for i := 0; i < tasks; i++ {
		select {
		case idxCh <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(idxCh)
	wg.Wait()
}
