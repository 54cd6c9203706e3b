package state

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	dialogKeyPattern = "dialog:state:*"
	scanBatch        = 100
)

// Cleaner expires abandoned time-entry dialogs in Redis. A user who opened
// the time prompt and walked away would otherwise have every later group
// message swallowed by the dialog handler.
type Cleaner struct {
	redisClient *redis.Client
	storage     Storage
	log         *slog.Logger
	ttl         time.Duration
	interval    time.Duration
}

// NewCleaner builds a Cleaner sweeping on the given interval; dialogs
// untouched for longer than ttl are cleared.
func NewCleaner(redisClient *redis.Client, storage Storage, log *slog.Logger, ttl, interval time.Duration) *Cleaner {
	if log == nil {
		log = slog.Default()
	}

	return &Cleaner{
		redisClient: redisClient,
		storage:     storage,
		log:         log,
		ttl:         ttl,
		interval:    interval,
	}
}

// Run sweeps until the context is cancelled.
func (c *Cleaner) Run(ctx context.Context) {
	if c == nil || c.redisClient == nil || c.storage == nil {
		return
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.log.Info("dialog cleaner stopped")
			return
		case <-ticker.C:
			c.sweep(ctx)
		}
	}
}

func (c *Cleaner) sweep(ctx context.Context) {
	var cursor uint64
	for {
		keys, next, err := c.redisClient.Scan(ctx, cursor, dialogKeyPattern, scanBatch).Result()
		if err != nil {
			c.log.Error("dialog cleaner scan failed", slog.Any("error", err))
			return
		}

		for _, key := range keys {
			c.expire(ctx, key)
		}

		if next == 0 || ctx.Err() != nil {
			return
		}
		cursor = next
	}
}

// expire clears the dialog behind key when it has gone stale.
func (c *Cleaner) expire(ctx context.Context, key string) {
	userID, err := userIDFromKey(key)
	if err != nil {
		c.log.Warn("dialog cleaner skipped malformed key", slog.String("key", key), slog.Any("error", err))
		return
	}

	stored, err := c.storage.GetState(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrStateNotFound) {
			c.log.Error("dialog cleaner failed to load state", slog.Int64("user_id", userID), slog.Any("error", err))
		}
		return
	}

	if stored == nil || time.Since(stored.UpdatedAt) <= c.ttl {
		return
	}

	if err := c.storage.ClearState(ctx, userID); err != nil {
		c.log.Error("dialog cleaner failed to clear state", slog.Int64("user_id", userID), slog.Any("error", err))
		return
	}

	c.log.Info("stale dialog cleared", slog.Int64("user_id", userID))
}

func userIDFromKey(key string) (int64, error) {
	idx := strings.LastIndexByte(key, ':')
	if idx < 0 || idx == len(key)-1 {
		return 0, fmt.Errorf("unexpected dialog key %q", key)
	}

	return strconv.ParseInt(key[idx+1:], 10, 64)
}
