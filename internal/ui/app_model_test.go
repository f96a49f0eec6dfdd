package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todoflow/todoflow/internal/domain"
)

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"work", "Urgent"}, splitTags(" work , Urgent ,, "))
	assert.Empty(t, splitTags(""))
}

func TestNextStatus(t *testing.T) {
	assert.Equal(t, domain.StatusInProgress, nextStatus(domain.StatusTodo))
	assert.Equal(t, domain.StatusCompleted, nextStatus(domain.StatusInProgress))
	assert.Equal(t, domain.StatusTodo, nextStatus(domain.StatusCompleted))
}

func TestNextStatusFilterCyclesThroughAll(t *testing.T) {
	f := domain.StatusFilterAll
	seen := map[string]bool{}
	for i := 0; i < 6; i++ {
		f = nextStatusFilter(f)
		seen[f.String()] = true
	}
	assert.Len(t, seen, 6, "every filter including the virtual ones is reachable")
	assert.Equal(t, domain.StatusFilterAll, f)
}

func TestParseDueDateInput(t *testing.T) {
	m := Model{dateFormat: dateFormatDMY()}

	got, err := m.parseDueDateInput("07/01/2025")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-07", got)

	got, err = m.parseDueDateInput("2025-01-07")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-07", got)

	got, err = m.parseDueDateInput("   ")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	_, err = m.parseDueDateInput("someday")
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "long ti...", truncate("long title here", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
