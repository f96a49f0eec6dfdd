package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/todoflow/todoflow/internal/domain"
	"github.com/todoflow/todoflow/internal/infrastructure/db"
	"github.com/todoflow/todoflow/internal/infrastructure/db/sqlc"
)

// SessionRepository keeps the logged-in user in the same records table the
// collections live in.
type SessionRepository struct {
	queries *sqlc.Queries
}

func NewSessionRepository(adapter db.Adapter) *SessionRepository {
	return &SessionRepository{
		queries: adapter.Queries(),
	}
}

func (r *SessionRepository) CurrentUser(ctx context.Context) (domain.User, error) {
	record, err := r.queries.GetRecord(ctx, sessionKey)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrSessionNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("load session: %w", err)
	}
	return decodeUser(sessionKey, []byte(record.Payload))
}

func (r *SessionRepository) SaveUser(ctx context.Context, user domain.User) error {
	payload, err := encodeUser(user)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}
	err = r.queries.UpsertRecord(ctx, sqlc.UpsertRecordParams{
		Key:       sessionKey,
		Payload:   payload,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *SessionRepository) ClearUser(ctx context.Context) error {
	if err := r.queries.DeleteRecord(ctx, sessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
