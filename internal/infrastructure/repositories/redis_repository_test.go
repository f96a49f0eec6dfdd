package repositories

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todoflow/todoflow/internal/domain"
)

// Requires a reachable Redis; set REDIS_ADDR to run.
func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	store := NewRedisStore(addr)
	require.NoError(t, store.Ping(context.Background()))
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRedisCollectionRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)
	userID := "redis-test-user"
	t.Cleanup(func() { _ = store.DeleteCollection(ctx, userID) })

	require.NoError(t, store.DeleteCollection(ctx, userID))
	_, err := store.LoadCollection(ctx, userID)
	require.ErrorIs(t, err, domain.ErrCollectionNotFound)

	tasks := sampleTasks(userID)
	require.NoError(t, store.SaveCollection(ctx, userID, tasks))

	loaded, err := store.LoadCollection(ctx, userID)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, tasks[0].ID, loaded[0].ID)
	assert.Equal(t, tasks[0].Tags, loaded[0].Tags)

	require.NoError(t, store.DeleteCollection(ctx, userID))
	_, err = store.LoadCollection(ctx, userID)
	assert.ErrorIs(t, err, domain.ErrCollectionNotFound)
}

func TestRedisSession(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)
	t.Cleanup(func() { _ = store.ClearUser(ctx) })

	require.NoError(t, store.ClearUser(ctx))
	_, err := store.CurrentUser(ctx)
	require.ErrorIs(t, err, domain.ErrSessionNotFound)

	user := domain.User{ID: "google-123", Name: "John Doe", Provider: domain.ProviderGoogle}
	require.NoError(t, store.SaveUser(ctx, user))

	current, err := store.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, current)
}
