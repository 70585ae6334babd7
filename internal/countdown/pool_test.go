package countdown

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolDeliversResult(t *testing.T) {
	pool := NewPool(1)
	pool.Now = func() time.Time {
		return time.Date(2025, time.December, 20, 9, 0, 0, 0, time.Local)
	}
	defer pool.Close()

	got := make(chan int, 1)
	target := time.Date(2025, time.December, 25, 0, 0, 0, 0, time.Local)
	pool.Submit(context.Background(), target, func(days int) {
		got <- days
	})

	select {
	case days := <-got:
		assert.Equal(t, 6, days)
	case <-time.After(2 * time.Second):
		t.Fatal("no delivery")
	}
}

func TestPoolDropsCancelledJobs(t *testing.T) {
	pool := NewPool(1)
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	delivered := false
	pool.Submit(cancelled, time.Now(), func(int) {
		delivered = true
	})

	// Close drains the queue, so the job has definitely run by now.
	pool.Close()
	assert.False(t, delivered, "delivery to a detached target must be a no-op")
}

func TestPoolDrainsOnClose(t *testing.T) {
	pool := NewPool(2)

	got := make(chan int, 10)
	for i := 0; i < 10; i++ {
		pool.Submit(context.Background(), time.Now().AddDate(0, 0, i), func(days int) {
			got <- days
		})
	}
	pool.Close()

	require.Len(t, got, 10)
}
