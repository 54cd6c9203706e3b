package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	redis "github.com/redis/go-redis/v9"

	"github.com/azkar-labs/azkar-bot/internal/domain"
)

const (
	settingsKeyPattern = "group:settings:%d"
	settingsIDsKey     = "group:settings:ids"
)

// RedisStore persists group settings as JSON records in Redis. Group
// membership is tracked in a set so sweeps can enumerate groups.
//
// Same-group updates are serialized with an in-process lock; the bot runs
// a single scheduler, so no cross-instance coordination is needed.
type RedisStore struct {
	client *redis.Client
	locks  sync.Map // groupID -> *sync.Mutex
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore returns a store backed by the provided Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get returns the record for groupID, creating and storing the default one
// on first access.
func (s *RedisStore) Get(ctx context.Context, groupID int64) (domain.GroupSettings, error) {
	record, err := s.load(ctx, groupID)
	if err == nil {
		return record, nil
	}

	if !errors.Is(err, redis.Nil) {
		return domain.GroupSettings{}, err
	}

	record = domain.DefaultGroupSettings()
	if err := s.save(ctx, groupID, record); err != nil {
		return domain.GroupSettings{}, err
	}

	return record, nil
}

// Update applies mutate to the stored record and writes the result back.
func (s *RedisStore) Update(ctx context.Context, groupID int64, mutate func(*domain.GroupSettings)) (domain.GroupSettings, error) {
	mu := s.lockFor(groupID)
	mu.Lock()
	defer mu.Unlock()

	record, err := s.load(ctx, groupID)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			return domain.GroupSettings{}, err
		}
		record = domain.DefaultGroupSettings()
	}

	if mutate != nil {
		mutate(&record)
	}

	if err := s.save(ctx, groupID, record); err != nil {
		return domain.GroupSettings{}, err
	}

	return record, nil
}

// GroupIDs returns every group registered in the membership set.
func (s *RedisStore) GroupIDs(ctx context.Context) ([]int64, error) {
	raw, err := s.client.SMembers(ctx, settingsIDsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list group ids: %w", err)
	}

	ids := make([]int64, 0, len(raw))
	for _, member := range raw {
		var id int64
		if _, err := fmt.Sscanf(member, "%d", &id); err != nil {
			continue
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func (s *RedisStore) load(ctx context.Context, groupID int64) (domain.GroupSettings, error) {
	data, err := s.client.Get(ctx, settingsKey(groupID)).Bytes()
	if err != nil {
		return domain.GroupSettings{}, err
	}

	var record domain.GroupSettings
	if err := json.Unmarshal(data, &record); err != nil {
		return domain.GroupSettings{}, fmt.Errorf("decode group settings: %w", err)
	}

	return record, nil
}

func (s *RedisStore) save(ctx context.Context, groupID int64, record domain.GroupSettings) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode group settings: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, settingsKey(groupID), payload, 0)
	pipe.SAdd(ctx, settingsIDsKey, groupID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save group settings: %w", err)
	}

	return nil
}

func (s *RedisStore) lockFor(groupID int64) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(groupID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func settingsKey(groupID int64) string {
	return fmt.Sprintf(settingsKeyPattern, groupID)
}
