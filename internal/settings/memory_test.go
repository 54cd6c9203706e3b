package settings

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/azkar-labs/azkar-bot/internal/domain"
)

func TestMemoryStoreDefaultsOnFirstAccess(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	got, err := store.Get(ctx, -100500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := domain.DefaultGroupSettings()
	if got != want {
		t.Fatalf("defaults mismatch:\n got %+v\nwant %+v", got, want)
	}

	if got.PeriodicAzkar.IntervalMinutes != 120 || !got.PeriodicAzkar.Enabled {
		t.Fatalf("periodic defaults wrong: %+v", got.PeriodicAzkar)
	}

	if got.Timezone != domain.DefaultTimezone {
		t.Fatalf("timezone default wrong: %q", got.Timezone)
	}
}

func TestMemoryStoreStableAcrossCalls(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first, _ := store.Get(ctx, 7)

	// A write between reads must be visible; Get must not re-default.
	_, err := store.Update(ctx, 7, func(s *domain.GroupSettings) {
		s.MorningAzkar.Enabled = false
		s.PeriodicAzkar.IntervalMinutes = 150
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, _ := store.Get(ctx, 7)
	if second == first {
		t.Fatal("expected second read to observe the update")
	}
	if second.MorningAzkar.Enabled || second.PeriodicAzkar.IntervalMinutes != 150 {
		t.Fatalf("update not visible: %+v", second)
	}
}

func TestMemoryStoreUpdateReturnsResult(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	now := time.Date(2026, time.February, 19, 6, 0, 0, 0, time.UTC)

	got, err := store.Update(ctx, 42, func(s *domain.GroupSettings) {
		s.LastPeriodicSentAt = &now
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.LastPeriodicSentAt == nil || !got.LastPeriodicSentAt.Equal(now) {
		t.Fatalf("expected last-sent timestamp %v, got %+v", now, got.LastPeriodicSentAt)
	}
}

func TestMemoryStoreGroupIDs(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for _, id := range []int64{-1, -2, -3} {
		if _, err := store.Get(ctx, id); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	ids, err := store.GroupIDs(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ids) != 3 {
		t.Fatalf("expected 3 group ids, got %v", ids)
	}
}

func TestMemoryStoreConcurrentUpdatesSameGroup(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	const workers = 16
	const iterations = 50

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				_, _ = store.Update(ctx, 1, func(s *domain.GroupSettings) {
					s.PeriodicAzkar.IntervalMinutes += domain.IntervalStepMinutes
				})
			}
		}()
	}
	wg.Wait()

	got, _ := store.Get(ctx, 1)
	want := 120 + workers*iterations*domain.IntervalStepMinutes
	if got.PeriodicAzkar.IntervalMinutes != want {
		t.Fatalf("lost updates: got %d, want %d", got.PeriodicAzkar.IntervalMinutes, want)
	}
}
