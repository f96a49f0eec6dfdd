package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todoflow/todoflow/internal/domain"
	"github.com/todoflow/todoflow/internal/infrastructure/repositories"
)

func newTestStoreService(repo domain.CollectionRepository) *StoreService {
	return &StoreService{
		repo: repo,
		now:  func() time.Time { return time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC) },
	}
}

func TestLoadSeedsFirstUse(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStore()
	svc := newTestStoreService(store)

	tasks, err := svc.Load(ctx, "google-123")
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "Complete hackathon project", tasks[0].Title)
	for _, task := range tasks {
		assert.Equal(t, "google-123", task.UserID)
		require.NoError(t, task.Validate())
	}

	// The seed is persisted immediately, not recomputed per load.
	assert.True(t, store.Has("google-123"))
	again, err := svc.Load(ctx, "google-123")
	require.NoError(t, err)
	assert.Equal(t, tasks[0].ID, again[0].ID)
}

func TestLoadRequiresUserID(t *testing.T) {
	svc := newTestStoreService(repositories.NewMemoryStore())
	_, err := svc.Load(context.Background(), "  ")
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStore()
	svc := newTestStoreService(store)

	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	tasks := []domain.Task{{
		ID:         "task-1",
		Title:      "Deploy application",
		Status:     domain.StatusTodo,
		Priority:   domain.PriorityHigh,
		DueDate:    "2025-01-07",
		CreatedAt:  now,
		UpdatedAt:  now,
		UserID:     "u",
		SharedWith: []string{"a@example.com"},
		Tags:       []string{"deployment"},
	}}

	require.NoError(t, svc.Save(ctx, "u", tasks))
	loaded, err := svc.Load(ctx, "u")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, tasks[0].ID, loaded[0].ID)
	assert.Equal(t, tasks[0].Tags, loaded[0].Tags)
	assert.Equal(t, tasks[0].SharedWith, loaded[0].SharedWith)
	assert.True(t, tasks[0].CreatedAt.Equal(loaded[0].CreatedAt))
}

func TestSaveEmptyCollectionIsNotReseeded(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStore()
	svc := newTestStoreService(store)

	require.NoError(t, svc.Save(ctx, "u", []domain.Task{}))
	loaded, err := svc.Load(ctx, "u")
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoadSurfacesMalformedPayload(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStore()
	svc := newTestStoreService(store)

	store.PutRaw("u", []byte("{not json"))

	_, err := svc.Load(ctx, "u")
	var derr *domain.DeserializationError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "tasks:u", derr.Key)

	// The bad payload is left in place for inspection, never reseeded over.
	assert.True(t, store.Has("u"))
}

func TestPurge(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStore()
	svc := newTestStoreService(store)

	_, err := svc.Load(ctx, "u")
	require.NoError(t, err)
	require.True(t, store.Has("u"))

	require.NoError(t, svc.Purge(ctx, "u"))
	assert.False(t, store.Has("u"))
}
