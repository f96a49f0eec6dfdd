package application

import (
	"time"

	"github.com/google/uuid"

	"github.com/todoflow/todoflow/internal/domain"
)

// SeedTasks builds the illustrative collection a user sees on first use.
func SeedTasks(ownerID string, now time.Time) []domain.Task {
	now = now.UTC()
	return []domain.Task{
		{
			ID:          uuid.NewString(),
			Title:       "Complete hackathon project",
			Description: "Build a full-stack todo management application",
			Status:      domain.StatusInProgress,
			Priority:    domain.PriorityHigh,
			DueDate:     "2025-01-08",
			CreatedAt:   now,
			UpdatedAt:   now,
			UserID:      ownerID,
			SharedWith:  []string{},
			Tags:        []string{"hackathon", "coding"},
		},
		{
			ID:          uuid.NewString(),
			Title:       "Review project requirements",
			Description: "Go through all the technical requirements and ensure everything is covered",
			Status:      domain.StatusCompleted,
			Priority:    domain.PriorityMedium,
			CreatedAt:   now,
			UpdatedAt:   now,
			UserID:      ownerID,
			SharedWith:  []string{},
			Tags:        []string{"planning"},
		},
		{
			ID:          uuid.NewString(),
			Title:       "Deploy application",
			Description: "Deploy the frontend and backend to production",
			Status:      domain.StatusTodo,
			Priority:    domain.PriorityHigh,
			DueDate:     "2025-01-07",
			CreatedAt:   now,
			UpdatedAt:   now,
			UserID:      ownerID,
			SharedWith:  []string{},
			Tags:        []string{"deployment"},
		},
	}
}
