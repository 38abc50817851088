package concurrency

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleWorkerPool_RunsEveryTask(t *testing.T) {
	seen := make([]int32, 50)
	SimpleWorkerPool(context.Background(), 4, len(seen), func(_ context.Context, i int) {
		atomic.AddInt32(&seen[i], 1)
	})
	for i, n := range seen {
		assert.Equalf(t, int32(1), n, "task %d", i)
	}
}

func TestSimpleWorkerPool_ZeroTasks(t *testing.T) {
	called := false
	SimpleWorkerPool(context.Background(), 4, 0, func(context.Context, int) { called = true })
	assert.False(t, called)
}

func TestSimpleWorkerPool_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var n int32
	SimpleWorkerPool(ctx, 2, 1000, func(context.Context, int) { atomic.AddInt32(&n, 1) })
	assert.Less(t, atomic.LoadInt32(&n), int32(1000))
}
