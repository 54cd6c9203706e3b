// Package settings persists per-group reminder configuration.
package settings

import (
	"context"

	"github.com/azkar-labs/azkar-bot/internal/domain"
)

// Store is the settings persistence contract shared by the menu protocol
// and the scheduler.
//
// Get returns the existing record for the group or atomically creates and
// returns a fresh default one. Update applies mutate to the record and
// returns the result; writes are last-writer-wins. Updates for the same
// group are applied atomically with respect to each other; updates for
// different groups never contend on a shared lock.
type Store interface {
	Get(ctx context.Context, groupID int64) (domain.GroupSettings, error)
	Update(ctx context.Context, groupID int64, mutate func(*domain.GroupSettings)) (domain.GroupSettings, error)
	// GroupIDs enumerates every registered group for scheduler sweeps.
	GroupIDs(ctx context.Context) ([]int64, error)
}
