package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, options ...Option) (*Adapter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return New(client, options...), mr
}

func TestAllowWithinLimit(t *testing.T) {
	t.Parallel()

	adapter, _ := newTestAdapter(t, WithLimit(30))
	ctx := context.Background()

	for i := 0; i < 30; i++ {
		allowed, err := adapter.Allow(ctx, "203.0.113.7")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	// The 31st request within the window is rejected.
	allowed, err := adapter.Allow(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestAllowWindowReset(t *testing.T) {
	t.Parallel()

	adapter, mr := newTestAdapter(t, WithLimit(2), WithWindow(15*time.Minute))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		allowed, err := adapter.Allow(ctx, "203.0.113.7")
		require.NoError(t, err)
		require.True(t, allowed)
	}

	allowed, err := adapter.Allow(ctx, "203.0.113.7")
	require.NoError(t, err)
	require.False(t, allowed)

	// Once the fixed window elapses the counter expires and the caller
	// starts fresh.
	mr.FastForward(15*time.Minute + time.Second)

	allowed, err = adapter.Allow(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestAllowPerCaller(t *testing.T) {
	t.Parallel()

	adapter, _ := newTestAdapter(t, WithLimit(1))
	ctx := context.Background()

	allowed, err := adapter.Allow(ctx, "203.0.113.7")
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = adapter.Allow(ctx, "203.0.113.7")
	require.NoError(t, err)
	require.False(t, allowed)

	// A different caller has its own window.
	allowed, err = adapter.Allow(ctx, "198.51.100.23")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestAllowBackendError(t *testing.T) {
	t.Parallel()

	adapter, mr := newTestAdapter(t)
	mr.Close()

	_, err := adapter.Allow(context.Background(), "203.0.113.7")
	assert.Error(t, err)
}
