package llm

import (
	"context"
	"fmt"
	"time"

	apperrors "thematic-analysis-backend/internal/errors"

	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const (
	rateLimitPrefix = "llm_rate_limit"
	// Reset is reported with second precision
	minResetWait = 100 * time.Millisecond
)

// RateLimiter throttles calls to the generation service.
// Callers block until the current window resets, up to maxWait.
type RateLimiter struct {
	instance *limiter.Limiter
	maxWait  time.Duration
}

// NewRedisClient builds the client that backs the shared limiter store.
func NewRedisClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return redis.NewClient(opts), nil
}

// NewStore keeps limiter counters in redis when client is set, so that every replica
// shares one budget, and in memory otherwise
func NewStore(client *redis.Client) (limiter.Store, error) {
	if client == nil {
		return memory.NewStoreWithOptions(limiter.StoreOptions{Prefix: rateLimitPrefix}), nil
	}

	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{
		Prefix:   rateLimitPrefix,
		MaxRetry: 3,
	})
	if err != nil {
		return nil, fmt.Errorf("create redis limiter store: %w", err)
	}
	return store, nil
}

// NewRateLimiter creates a limiter from a formatted rate such as "15-M"
func NewRateLimiter(rateFormatted string, store limiter.Store, maxWait time.Duration) (*RateLimiter, error) {
	rate, err := limiter.NewRateFromFormatted(rateFormatted)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", rateFormatted, err)
	}
	return &RateLimiter{
		instance: limiter.New(store, rate),
		maxWait:  maxWait,
	}, nil
}

// Wait consumes one call from the budget for key. When the budget is exhausted it sleeps
// until the window resets; if that is further away than maxWait it returns ErrGenerationRateLimited.
func (l *RateLimiter) Wait(ctx context.Context, key string) error {
	deadline := time.Now().Add(l.maxWait)

	for {
		lctx, err := l.instance.Get(ctx, key)
		if err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
		if !lctx.Reached {
			return nil
		}

		reset := time.Unix(lctx.Reset, 0)
		if reset.After(deadline) {
			return apperrors.ErrGenerationRateLimited
		}

		wait := time.Until(reset)
		if wait < minResetWait {
			wait = minResetWait
		}

		rateLimitWaits.WithLabelValues(key).Inc()
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
