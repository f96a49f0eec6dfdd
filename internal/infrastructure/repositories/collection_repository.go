package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/todoflow/todoflow/internal/domain"
	"github.com/todoflow/todoflow/internal/infrastructure/db"
	"github.com/todoflow/todoflow/internal/infrastructure/db/sqlc"
)

// CollectionRepository persists collections in the sqlite-backed key-value
// records table, one JSON array per user.
type CollectionRepository struct {
	queries *sqlc.Queries
}

func NewCollectionRepository(adapter db.Adapter) *CollectionRepository {
	return &CollectionRepository{
		queries: adapter.Queries(),
	}
}

func (r *CollectionRepository) LoadCollection(ctx context.Context, userID string) ([]domain.Task, error) {
	key := taskKey(userID)
	record, err := r.queries.GetRecord(ctx, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCollectionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load collection %s: %w", key, err)
	}
	return decodeTasks(key, []byte(record.Payload))
}

func (r *CollectionRepository) SaveCollection(ctx context.Context, userID string, tasks []domain.Task) error {
	payload, err := encodeTasks(tasks)
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}
	key := taskKey(userID)
	err = r.queries.UpsertRecord(ctx, sqlc.UpsertRecordParams{
		Key:       key,
		Payload:   payload,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("save collection %s: %w", key, err)
	}
	return nil
}

func (r *CollectionRepository) DeleteCollection(ctx context.Context, userID string) error {
	key := taskKey(userID)
	if err := r.queries.DeleteRecord(ctx, key); err != nil {
		return fmt.Errorf("delete collection %s: %w", key, err)
	}
	return nil
}

// ListUsers returns the ids of every user with a persisted collection.
func (r *CollectionRepository) ListUsers(ctx context.Context) ([]string, error) {
	keys, err := r.queries.ListRecordKeys(ctx, taskKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	users := make([]string, 0, len(keys))
	for _, key := range keys {
		users = append(users, strings.TrimPrefix(key, taskKeyPrefix))
	}
	return users, nil
}
