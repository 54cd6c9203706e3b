package settings

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"

	"github.com/azkar-labs/azkar-bot/internal/domain"
)

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()

	srv, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(srv.Close)

	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client)
}

func TestRedisStoreDefaultsOnFirstAccess(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)

	got, err := store.Get(ctx, -42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != domain.DefaultGroupSettings() {
		t.Fatalf("defaults mismatch: %+v", got)
	}

	ids, err := store.GroupIDs(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 1 || ids[0] != -42 {
		t.Fatalf("expected membership [-42], got %v", ids)
	}
}

func TestRedisStoreReadAfterWrite(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)

	_, err := store.Update(ctx, -42, func(s *domain.GroupSettings) {
		s.FridayReminder.Enabled = false
		s.Timezone = "Africa/Cairo"
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Get(ctx, -42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.FridayReminder.Enabled {
		t.Fatal("expected friday reminder disabled after update")
	}
	if got.Timezone != "Africa/Cairo" {
		t.Fatalf("expected timezone Africa/Cairo, got %q", got.Timezone)
	}
}

func TestRedisStoreUpdateCreatesRecord(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)

	got, err := store.Update(ctx, -7, func(s *domain.GroupSettings) {
		s.PeriodicAzkar.IntervalMinutes = 90
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.PeriodicAzkar.IntervalMinutes != 90 {
		t.Fatalf("expected interval 90, got %d", got.PeriodicAzkar.IntervalMinutes)
	}

	// Everything else must carry the defaults: records are never partial.
	if !got.MorningAzkar.Enabled || got.MorningAzkar.Time != "06:00" {
		t.Fatalf("expected full default record, got %+v", got)
	}
}
