package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todoflow/todoflow/internal/domain"
	"github.com/todoflow/todoflow/internal/infrastructure/repositories"
)

func sessionFixture(t *testing.T) (*SessionService, *repositories.MemoryStore) {
	t.Helper()
	store := repositories.NewMemoryStore()
	return NewSessionService(store, newTestStoreService(store)), store
}

func testUser() domain.User {
	return domain.User{
		ID:       "google-123",
		Name:     "John Doe",
		Email:    "john@example.com",
		Provider: domain.ProviderGoogle,
	}
}

func TestLoginAndCurrent(t *testing.T) {
	ctx := context.Background()
	svc, _ := sessionFixture(t)

	_, err := svc.Current(ctx)
	require.ErrorIs(t, err, domain.ErrSessionNotFound)

	require.NoError(t, svc.Login(ctx, testUser()))

	user, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "google-123", user.ID)
	assert.Equal(t, domain.ProviderGoogle, user.Provider)
}

func TestLoginValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := sessionFixture(t)

	user := testUser()
	user.ID = ""
	assert.Error(t, svc.Login(ctx, user))

	user = testUser()
	user.Provider = "myspace"
	assert.Error(t, svc.Login(ctx, user))
}

func TestLogoutPurgesTasks(t *testing.T) {
	ctx := context.Background()
	svc, store := sessionFixture(t)

	require.NoError(t, svc.Login(ctx, testUser()))
	_, err := svc.store.Load(ctx, "google-123")
	require.NoError(t, err)
	require.True(t, store.Has("google-123"))

	require.NoError(t, svc.Logout(ctx))

	assert.False(t, store.Has("google-123"), "logout removes the task namespace")
	_, err = svc.Current(ctx)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestLogoutWithoutSession(t *testing.T) {
	svc, _ := sessionFixture(t)
	assert.NoError(t, svc.Logout(context.Background()))
}
