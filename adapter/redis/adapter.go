package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Adapter throttles callers with a fixed window counter per caller key.
type Adapter struct {
	client    *redis.Client
	keyPrefix string
	window    time.Duration
	limit     int64
	logger    *zap.Logger
}

type Option func(*Adapter)

func WithKeyPrefix(prefix string) Option {
	return func(a *Adapter) {
		a.keyPrefix = prefix
	}
}

func WithWindow(window time.Duration) Option {
	return func(a *Adapter) {
		a.window = window
	}
}

func WithLimit(limit int64) Option {
	return func(a *Adapter) {
		a.limit = limit
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(a *Adapter) {
		a.logger = logger
	}
}

const (
	defaultKeyPrefix = "ratelimit:"
	defaultWindow    = 15 * time.Minute
	defaultLimit     = 30
)

func New(client *redis.Client, options ...Option) *Adapter {
	a := &Adapter{
		client:    client,
		keyPrefix: defaultKeyPrefix,
		window:    defaultWindow,
		limit:     defaultLimit,
	}
	a.logger = zap.NewNop()

	for _, o := range options {
		o(a)
	}

	return a
}

const adapterName = "redis"

func (a *Adapter) Name() string {
	return adapterName
}

// Allow increments the caller's counter for the current window and reports
// whether the caller is still within the limit. The window starts with the
// first request: the key expires once, window seconds after INCR creates it.
func (a *Adapter) Allow(ctx context.Context, caller string) (bool, error) {
	key := a.keyPrefix + caller

	count, err := a.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}

	if count == 1 {
		if err := a.client.Expire(ctx, key, a.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}

	if count > a.limit {
		a.logger.Debug("rate limit exceeded",
			zap.String("caller", caller),
			zap.Int64("count", count),
		)
		return false, nil
	}

	return true, nil
}
