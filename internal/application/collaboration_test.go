package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todoflow/todoflow/internal/domain"
)

func TestValidEmail(t *testing.T) {
	valid := []string{"user@example.com", "a.b+c@sub.domain.org", "x@y.zz"}
	for _, email := range valid {
		assert.True(t, ValidEmail(email), email)
	}

	invalid := []string{"not-an-email", "user@nodot", "two@@example.com", "has space@example.com", "", "@example.com", "user@"}
	for _, email := range invalid {
		assert.False(t, ValidEmail(email), email)
	}
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" Work ", "work", "", "URGENT", "urgent"})
	assert.Equal(t, []string{"work", "urgent"}, got)
}

func TestNormalizeEmails(t *testing.T) {
	got, err := NormalizeEmails([]string{" A@Example.com ", "a@example.com", "b@example.com"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, got)

	_, err = NormalizeEmails([]string{"a@example.com", "junk"})
	var iee *domain.InvalidEmailError
	require.ErrorAs(t, err, &iee)
}

func TestAddTag(t *testing.T) {
	task := domain.Task{ID: "t", Tags: []string{"work"}}

	t.Run("normalizes before appending", func(t *testing.T) {
		out := AddTag(task, "  Urgent ")
		assert.Equal(t, []string{"work", "urgent"}, out.Tags)
		assert.Equal(t, []string{"work"}, task.Tags)
	})

	t.Run("duplicate is a no-op", func(t *testing.T) {
		out := AddTag(task, "WORK")
		assert.Equal(t, []string{"work"}, out.Tags)
	})

	t.Run("empty is a no-op", func(t *testing.T) {
		out := AddTag(task, "   ")
		assert.Equal(t, []string{"work"}, out.Tags)
	})
}

func TestRemoveTag(t *testing.T) {
	task := domain.Task{ID: "t", Tags: []string{"work", "urgent"}}

	out := RemoveTag(task, "work")
	assert.Equal(t, []string{"urgent"}, out.Tags)
	assert.Equal(t, []string{"work", "urgent"}, task.Tags)

	out = RemoveTag(task, "missing")
	assert.Equal(t, []string{"work", "urgent"}, out.Tags)
}

func TestAddCollaborator(t *testing.T) {
	task := domain.Task{ID: "t", SharedWith: []string{"existing@example.com"}}

	t.Run("lowercases and appends", func(t *testing.T) {
		out, err := AddCollaborator(task, " New@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, []string{"existing@example.com", "new@example.com"}, out.SharedWith)
		assert.Equal(t, []string{"existing@example.com"}, task.SharedWith)
	})

	t.Run("malformed address", func(t *testing.T) {
		_, err := AddCollaborator(task, "not-an-email")
		var iee *domain.InvalidEmailError
		require.ErrorAs(t, err, &iee)
		assert.Equal(t, "not-an-email", iee.Email)
	})

	t.Run("duplicate address", func(t *testing.T) {
		_, err := AddCollaborator(task, "EXISTING@example.com")
		var dce *domain.DuplicateCollaboratorError
		require.ErrorAs(t, err, &dce)
		assert.Equal(t, "existing@example.com", dce.Email)
	})
}

func TestRemoveCollaborator(t *testing.T) {
	task := domain.Task{ID: "t", SharedWith: []string{"a@example.com", "b@example.com"}}

	out := RemoveCollaborator(task, "a@example.com")
	assert.Equal(t, []string{"b@example.com"}, out.SharedWith)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, task.SharedWith)

	out = RemoveCollaborator(task, "missing@example.com")
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, out.SharedWith)
}
