// Package repository implements the Postgres-backed group settings store.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/azkar-labs/azkar-bot/internal/domain"
	"github.com/azkar-labs/azkar-bot/internal/settings"
)

// SettingsRepository persists group settings as one JSONB record per group.
// Update runs inside a transaction with a row lock, so concurrent mutations
// of the same group serialize at the database.
type SettingsRepository struct {
	db  *sql.DB
	log *slog.Logger
}

var _ settings.Store = (*SettingsRepository)(nil)

// NewSettingsRepository creates a SQL-backed settings store.
func NewSettingsRepository(db *sql.DB, log *slog.Logger) *SettingsRepository {
	if log == nil {
		log = slog.Default()
	}

	return &SettingsRepository{
		db:  db,
		log: log,
	}
}

// Get returns the record for groupID, creating and storing the default one
// on first access.
func (r *SettingsRepository) Get(ctx context.Context, groupID int64) (domain.GroupSettings, error) {
	const query = `SELECT record FROM group_settings WHERE group_id = $1`

	var payload []byte
	err := r.db.QueryRowContext(ctx, query, groupID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		record := domain.DefaultGroupSettings()
		if err := r.insertDefault(ctx, groupID, record); err != nil {
			return domain.GroupSettings{}, err
		}
		return record, nil
	}
	if err != nil {
		r.log.Error("failed to fetch group settings", slog.Int64("group_id", groupID), slog.Any("error", err))
		return domain.GroupSettings{}, fmt.Errorf("select group settings: %w", err)
	}

	return decodeRecord(payload)
}

// Update applies mutate to the stored record under a row lock and writes
// the result back. A missing row starts from the defaults.
func (r *SettingsRepository) Update(ctx context.Context, groupID int64, mutate func(*domain.GroupSettings)) (domain.GroupSettings, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.GroupSettings{}, fmt.Errorf("begin settings update: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const query = `SELECT record FROM group_settings WHERE group_id = $1 FOR UPDATE`

	record := domain.DefaultGroupSettings()

	var payload []byte
	err = tx.QueryRowContext(ctx, query, groupID).Scan(&payload)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// fresh group, keep the defaults
	case err != nil:
		return domain.GroupSettings{}, fmt.Errorf("select group settings for update: %w", err)
	default:
		if record, err = decodeRecord(payload); err != nil {
			return domain.GroupSettings{}, err
		}
	}

	if mutate != nil {
		mutate(&record)
	}

	encoded, err := json.Marshal(record)
	if err != nil {
		return domain.GroupSettings{}, fmt.Errorf("encode group settings: %w", err)
	}

	const upsert = `
		INSERT INTO group_settings (group_id, record, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (group_id) DO UPDATE SET record = EXCLUDED.record, updated_at = NOW()
	`
	if _, err := tx.ExecContext(ctx, upsert, groupID, encoded); err != nil {
		r.log.Error("failed to save group settings", slog.Int64("group_id", groupID), slog.Any("error", err))
		return domain.GroupSettings{}, fmt.Errorf("upsert group settings: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.GroupSettings{}, fmt.Errorf("commit settings update: %w", err)
	}

	return record, nil
}

// GroupIDs returns every group with a settings row.
func (r *SettingsRepository) GroupIDs(ctx context.Context) ([]int64, error) {
	const query = `SELECT group_id FROM group_settings ORDER BY group_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list group ids: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan group id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate group ids: %w", err)
	}

	return ids, nil
}

func (r *SettingsRepository) insertDefault(ctx context.Context, groupID int64, record domain.GroupSettings) error {
	encoded, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode group settings: %w", err)
	}

	const insert = `
		INSERT INTO group_settings (group_id, record, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (group_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, insert, groupID, encoded); err != nil {
		r.log.Error("failed to register group", slog.Int64("group_id", groupID), slog.Any("error", err))
		return fmt.Errorf("insert group settings: %w", err)
	}

	return nil
}

func decodeRecord(payload []byte) (domain.GroupSettings, error) {
	var record domain.GroupSettings
	if err := json.Unmarshal(payload, &record); err != nil {
		return domain.GroupSettings{}, fmt.Errorf("decode group settings: %w", err)
	}

	return record, nil
}
