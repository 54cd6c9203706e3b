package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const throttleKeyPrefix = "throttle:"

// RedisLimiter keeps sliding windows in Redis sorted sets scored by hit
// time, so the throttle survives restarts.
type RedisLimiter struct {
	client *redis.Client
	log    *slog.Logger
}

var _ Limiter = (*RedisLimiter)(nil)

// NewRedisLimiter creates a Redis-backed limiter.
func NewRedisLimiter(client *redis.Client, log *slog.Logger) *RedisLimiter {
	if log == nil {
		log = slog.Default()
	}

	return &RedisLimiter{client: client, log: log}
}

// Check records one hit for key and reports whether it fits the limit.
// The hit is written before counting, so a blocked caller keeps extending
// the window instead of sneaking in at its edge.
func (l *RedisLimiter) Check(ctx context.Context, key string, limit int, window time.Duration) (*Result, error) {
	if l.client == nil {
		return nil, errors.New("redis limiter has no client")
	}

	now := time.Now()
	redisKey := throttleKeyPrefix + key
	cutoff := now.Add(-window).UnixMilli()

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "-inf", fmt.Sprintf("(%d", cutoff))
	pipe.ZAdd(ctx, redisKey, redis.Z{
		Score:  float64(now.UnixMilli()),
		Member: uuid.NewString(),
	})
	countCmd := pipe.ZCard(ctx, redisKey)
	pipe.Expire(ctx, redisKey, window*2)

	if _, err := pipe.Exec(ctx); err != nil {
		l.log.Error("throttle pipeline failed", slog.String("key", key), slog.Any("error", err))
		return nil, err
	}

	hits, err := countCmd.Result()
	if err != nil {
		return nil, err
	}

	remaining := limit - int(hits)
	if remaining < 0 {
		remaining = 0
	}

	result := &Result{
		Allowed:   hits <= int64(limit),
		Remaining: remaining,
		ResetAt:   now.Add(window),
	}

	if !result.Allowed {
		return result, ErrLimitExceeded
	}

	return result, nil
}
