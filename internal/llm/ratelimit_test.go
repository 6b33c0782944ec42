package llm

import (
	"context"
	"testing"
	"time"

	apperrors "thematic-analysis-backend/internal/errors"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterMemoryStore(t *testing.T) {
	store, err := NewStore(nil)
	require.NoError(t, err)

	t.Run("rejects when the window resets after max wait", func(t *testing.T) {
		limiter, err := NewRateLimiter("2-M", store, 0)
		require.NoError(t, err)

		ctx := context.Background()
		require.NoError(t, limiter.Wait(ctx, "reject"))
		require.NoError(t, limiter.Wait(ctx, "reject"))
		assert.ErrorIs(t, limiter.Wait(ctx, "reject"), apperrors.ErrGenerationRateLimited)
	})

	t.Run("waits for the window to reset", func(t *testing.T) {
		limiter, err := NewRateLimiter("1-S", store, 3*time.Second)
		require.NoError(t, err)

		ctx := context.Background()
		require.NoError(t, limiter.Wait(ctx, "wait"))

		start := time.Now()
		require.NoError(t, limiter.Wait(ctx, "wait"))
		assert.Greater(t, time.Since(start), time.Duration(0))
	})

	t.Run("stops waiting when the context is cancelled", func(t *testing.T) {
		limiter, err := NewRateLimiter("1-M", store, 2*time.Minute)
		require.NoError(t, err)

		require.NoError(t, limiter.Wait(context.Background(), "cancel"))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		assert.ErrorIs(t, limiter.Wait(ctx, "cancel"), context.DeadlineExceeded)
	})
}

func TestRateLimiterRedisStore(t *testing.T) {
	s := miniredis.RunT(t)

	client, err := NewRedisClient("redis://" + s.Addr())
	require.NoError(t, err)
	defer client.Close()

	store, err := NewStore(client)
	require.NoError(t, err)

	limiter, err := NewRateLimiter("1-M", store, time.Second)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, limiter.Wait(ctx, string(ServiceReportGeneration)))
	assert.ErrorIs(t, limiter.Wait(ctx, string(ServiceReportGeneration)), apperrors.ErrGenerationRateLimited)
}

func TestNewRateLimiterInvalidRate(t *testing.T) {
	store, err := NewStore(nil)
	require.NoError(t, err)

	_, err = NewRateLimiter("fast", store, time.Second)
	assert.Error(t, err)
}

func TestNewRedisClientInvalidURL(t *testing.T) {
	_, err := NewRedisClient("://not-a-url")
	assert.Error(t, err)
}

func TestRedisStoreSharesBudgetAcrossLimiters(t *testing.T) {
	s := miniredis.RunT(t)

	client, err := NewRedisClient("redis://" + s.Addr())
	require.NoError(t, err)
	defer client.Close()

	first, err := NewStore(client)
	require.NoError(t, err)
	second, err := NewStore(client)
	require.NoError(t, err)

	a, err := NewRateLimiter("1-M", first, 0)
	require.NoError(t, err)
	b, err := NewRateLimiter("1-M", second, 0)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, a.Wait(ctx, "shared"))
	assert.ErrorIs(t, b.Wait(ctx, "shared"), apperrors.ErrGenerationRateLimited)
	require.NoError(t, client.Ping(ctx).Err())
}
