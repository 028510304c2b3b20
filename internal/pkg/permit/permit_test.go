//go:build unit

package permit_test

import (
	"sync"
	"testing"

	"slotbooking/internal/pkg/permit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryAcquire(t *testing.T) {
	t.Run("grants permits up to the ceiling", func(t *testing.T) {
		g := permit.NewGuard(3)

		assert.True(t, g.TryAcquire("5551234567"))
		assert.True(t, g.TryAcquire("5551234567"))
		assert.True(t, g.TryAcquire("5551234567"))
		assert.False(t, g.TryAcquire("5551234567"))
		assert.Equal(t, 3, g.Inflight("5551234567"))
	})

	t.Run("identities are independent", func(t *testing.T) {
		g := permit.NewGuard(1)

		assert.True(t, g.TryAcquire("5551234567"))
		assert.False(t, g.TryAcquire("5551234567"))
		assert.True(t, g.TryAcquire("5559876543"))
	})

	t.Run("ceiling below one is clamped to one", func(t *testing.T) {
		g := permit.NewGuard(0)

		assert.True(t, g.TryAcquire("5551234567"))
		assert.False(t, g.TryAcquire("5551234567"))
	})
}

func TestRelease(t *testing.T) {
	t.Run("frees a permit for reuse", func(t *testing.T) {
		g := permit.NewGuard(1)

		require.True(t, g.TryAcquire("5551234567"))
		require.False(t, g.TryAcquire("5551234567"))

		g.Release("5551234567")
		assert.True(t, g.TryAcquire("5551234567"))
	})

	t.Run("count returns to zero after all releases", func(t *testing.T) {
		g := permit.NewGuard(3)

		require.True(t, g.TryAcquire("5551234567"))
		require.True(t, g.TryAcquire("5551234567"))
		g.Release("5551234567")
		g.Release("5551234567")

		assert.Equal(t, 0, g.Inflight("5551234567"))
	})

	t.Run("release without acquire never goes negative", func(t *testing.T) {
		g := permit.NewGuard(2)

		g.Release("5551234567")
		assert.Equal(t, 0, g.Inflight("5551234567"))
		assert.True(t, g.TryAcquire("5551234567"))
		assert.True(t, g.TryAcquire("5551234567"))
	})
}

func TestConcurrentAcquire(t *testing.T) {
	const (
		ceiling    = 3
		goroutines = 50
	)
	g := permit.NewGuard(ceiling)

	var (
		mu      sync.Mutex
		granted int
		wg      sync.WaitGroup
	)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.TryAcquire("5551234567") {
				mu.Lock()
				granted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// Exactly the ceiling may win regardless of interleaving.
	assert.Equal(t, ceiling, granted)
	assert.Equal(t, ceiling, g.Inflight("5551234567"))

	for i := 0; i < ceiling; i++ {
		g.Release("5551234567")
	}
	assert.Equal(t, 0, g.Inflight("5551234567"))
}
