package application

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todoflow/todoflow/internal/domain"
)

func newTestLifecycleService(start time.Time) *LifecycleService {
	current := start
	n := 0
	return &LifecycleService{
		now: func() time.Time {
			current = current.Add(time.Second)
			return current
		},
		newID: func() string {
			n++
			return fmt.Sprintf("task-%d", n)
		},
	}
}

func TestCreate(t *testing.T) {
	start := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("defaults and stamping", func(t *testing.T) {
		svc := newTestLifecycleService(start)

		collection, task, err := svc.Create(nil, CreateTaskInput{Title: "  Write docs  "}, "google-123")
		require.NoError(t, err)

		assert.Equal(t, "task-1", task.ID)
		assert.Equal(t, "Write docs", task.Title)
		assert.Equal(t, domain.StatusTodo, task.Status)
		assert.Equal(t, domain.PriorityMedium, task.Priority)
		assert.Equal(t, "google-123", task.UserID)
		assert.Equal(t, task.CreatedAt, task.UpdatedAt)
		assert.Equal(t, []string{}, task.Tags)
		assert.Equal(t, []string{}, task.SharedWith)
		require.Len(t, collection, 1)
	})

	t.Run("new task is prepended", func(t *testing.T) {
		svc := newTestLifecycleService(start)

		collection, first, err := svc.Create(nil, CreateTaskInput{Title: "first"}, "u")
		require.NoError(t, err)
		collection, second, err := svc.Create(collection, CreateTaskInput{Title: "second"}, "u")
		require.NoError(t, err)

		require.Len(t, collection, 2)
		assert.Equal(t, second.ID, collection[0].ID)
		assert.Equal(t, first.ID, collection[1].ID)
	})

	t.Run("input collection is not mutated", func(t *testing.T) {
		svc := newTestLifecycleService(start)
		existing, _, err := svc.Create(nil, CreateTaskInput{Title: "existing"}, "u")
		require.NoError(t, err)

		_, _, err = svc.Create(existing, CreateTaskInput{Title: "new"}, "u")
		require.NoError(t, err)
		require.Len(t, existing, 1)
		assert.Equal(t, "existing", existing[0].Title)
	})

	t.Run("blank title rejected", func(t *testing.T) {
		svc := newTestLifecycleService(start)
		_, _, err := svc.Create(nil, CreateTaskInput{Title: "   "}, "u")
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "title", verr.Field)
	})

	t.Run("tags and shared emails normalized", func(t *testing.T) {
		svc := newTestLifecycleService(start)
		_, task, err := svc.Create(nil, CreateTaskInput{
			Title:      "t",
			Tags:       []string{" Work ", "work", "", "urgent"},
			SharedWith: []string{"A@Example.com"},
		}, "u")
		require.NoError(t, err)
		assert.Equal(t, []string{"work", "urgent"}, task.Tags)
		assert.Equal(t, []string{"a@example.com"}, task.SharedWith)
	})

	t.Run("invalid due date rejected", func(t *testing.T) {
		svc := newTestLifecycleService(start)
		_, _, err := svc.Create(nil, CreateTaskInput{Title: "t", DueDate: "tomorrow"}, "u")
		assert.Error(t, err)
	})
}

func TestUpdate(t *testing.T) {
	start := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	seed := func(t *testing.T, svc *LifecycleService) []domain.Task {
		t.Helper()
		collection, _, err := svc.Create(nil, CreateTaskInput{
			Title:    "original",
			Priority: domain.PriorityLow,
			DueDate:  "2025-02-01",
			Tags:     []string{"keep"},
		}, "google-123")
		require.NoError(t, err)
		return collection
	}

	t.Run("unknown id fails with NotFoundError", func(t *testing.T) {
		svc := newTestLifecycleService(start)
		collection := seed(t, svc)

		_, err := svc.Update(collection, "missing", UpdateCommand{})
		var nfe *domain.NotFoundError
		require.ErrorAs(t, err, &nfe)
		assert.Equal(t, "missing", nfe.TaskID)
	})

	t.Run("empty command only refreshes updatedAt", func(t *testing.T) {
		svc := newTestLifecycleService(start)
		collection := seed(t, svc)
		before := collection[0]

		updated, err := svc.Update(collection, before.ID, UpdateCommand{})
		require.NoError(t, err)

		after := updated[0]
		assert.Equal(t, before.Title, after.Title)
		assert.Equal(t, before.Status, after.Status)
		assert.Equal(t, before.Priority, after.Priority)
		assert.Equal(t, before.DueDate, after.DueDate)
		assert.Equal(t, before.Tags, after.Tags)
		assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
	})

	t.Run("identity fields survive any update", func(t *testing.T) {
		svc := newTestLifecycleService(start)
		collection := seed(t, svc)
		before := collection[0]

		title := "renamed"
		status := domain.StatusCompleted
		updated, err := svc.Update(collection, before.ID, UpdateCommand{Title: &title, Status: &status})
		require.NoError(t, err)

		after := updated[0]
		assert.Equal(t, before.ID, after.ID)
		assert.Equal(t, before.CreatedAt, after.CreatedAt)
		assert.Equal(t, before.UserID, after.UserID)
		assert.Equal(t, "renamed", after.Title)
		assert.Equal(t, domain.StatusCompleted, after.Status)
	})

	t.Run("clearing the due date", func(t *testing.T) {
		svc := newTestLifecycleService(start)
		collection := seed(t, svc)

		empty := ""
		updated, err := svc.Update(collection, collection[0].ID, UpdateCommand{DueDate: &empty})
		require.NoError(t, err)
		assert.Equal(t, "", updated[0].DueDate)
	})

	t.Run("validation failure leaves the collection untouched", func(t *testing.T) {
		svc := newTestLifecycleService(start)
		collection := seed(t, svc)

		blank := "  "
		_, err := svc.Update(collection, collection[0].ID, UpdateCommand{Title: &blank})
		require.Error(t, err)
		assert.Equal(t, "original", collection[0].Title)
	})

	t.Run("input collection is not mutated", func(t *testing.T) {
		svc := newTestLifecycleService(start)
		collection := seed(t, svc)

		title := "renamed"
		_, err := svc.Update(collection, collection[0].ID, UpdateCommand{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "original", collection[0].Title)
	})
}

func TestDelete(t *testing.T) {
	start := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	svc := newTestLifecycleService(start)

	collection, first, err := svc.Create(nil, CreateTaskInput{Title: "first"}, "u")
	require.NoError(t, err)
	collection, second, err := svc.Create(collection, CreateTaskInput{Title: "second"}, "u")
	require.NoError(t, err)

	t.Run("removes the task", func(t *testing.T) {
		out := svc.Delete(collection, first.ID)
		require.Len(t, out, 1)
		assert.Equal(t, second.ID, out[0].ID)
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		out := svc.Delete(collection, "missing")
		assert.Len(t, out, 2)
	})

	t.Run("input collection is not mutated", func(t *testing.T) {
		_ = svc.Delete(collection, first.ID)
		assert.Len(t, collection, 2)
	})
}
