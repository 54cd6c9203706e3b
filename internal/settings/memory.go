package settings

import (
	"context"
	"sync"

	"github.com/azkar-labs/azkar-bot/internal/domain"
)

type entry struct {
	mu     sync.Mutex
	record domain.GroupSettings
}

// MemoryStore keeps group settings in process memory. It is the default
// backend; records live for the process lifetime and are never evicted.
//
// The map-level lock guards only entry lookup and creation. Each group owns
// its entry mutex, so updates for unrelated groups proceed concurrently.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[int64]*entry
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty in-memory settings store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[int64]*entry)}
}

// Get returns the record for groupID, creating the default one on first access.
func (s *MemoryStore) Get(_ context.Context, groupID int64) (domain.GroupSettings, error) {
	e := s.loadOrCreate(groupID)

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.record, nil
}

// Update applies mutate to the record under the group's lock and returns the result.
func (s *MemoryStore) Update(_ context.Context, groupID int64, mutate func(*domain.GroupSettings)) (domain.GroupSettings, error) {
	e := s.loadOrCreate(groupID)

	e.mu.Lock()
	defer e.mu.Unlock()

	if mutate != nil {
		mutate(&e.record)
	}

	return e.record, nil
}

// GroupIDs returns every group that has a record.
func (s *MemoryStore) GroupIDs(_ context.Context) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}

	return ids, nil
}

func (s *MemoryStore) loadOrCreate(groupID int64) *entry {
	s.mu.RLock()
	e := s.entries[groupID]
	s.mu.RUnlock()

	if e != nil {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if e = s.entries[groupID]; e == nil {
		e = &entry{record: domain.DefaultGroupSettings()}
		s.entries[groupID] = e
	}

	return e
}
