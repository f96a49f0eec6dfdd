package application

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/todoflow/todoflow/internal/domain"
)

type CreateTaskInput struct {
	Title       string
	Description string
	Status      domain.Status
	Priority    domain.Priority
	DueDate     string
	Tags        []string
	SharedWith  []string
}

// UpdateCommand enumerates the mutable fields of a task. Nil pointers leave
// the field untouched; id, createdAt, and userId cannot be expressed at all.
type UpdateCommand struct {
	Title       *string
	Description *string
	Status      *domain.Status
	Priority    *domain.Priority
	DueDate     *string
	Tags        *[]string
	SharedWith  *[]string
}

// LifecycleService creates, updates, and deletes tasks within a collection.
// Every method returns a new collection; the input is never mutated, so the
// presentation layer can keep its simple re-render model.
type LifecycleService struct {
	now   func() time.Time
	newID func() string
}

func NewLifecycleService() *LifecycleService {
	return &LifecycleService{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Create validates the input, stamps identity and timestamps, and prepends
// the new task. Newest-first is the creation-time convention; display order
// belongs to the query engine.
func (s *LifecycleService) Create(collection []domain.Task, input CreateTaskInput, ownerID string) ([]domain.Task, domain.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.Task{}, &domain.ValidationError{Field: "title", Reason: "must not be blank"}
	}

	status := input.Status
	if status == "" {
		status = domain.StatusTodo
	}
	if !status.Valid() {
		return nil, domain.Task{}, &domain.ValidationError{Field: "status", Reason: "unknown status " + string(input.Status)}
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.Valid() {
		return nil, domain.Task{}, &domain.ValidationError{Field: "priority", Reason: "unknown priority " + string(input.Priority)}
	}

	if input.DueDate != "" && !domain.ValidDueDate(input.DueDate) {
		return nil, domain.Task{}, &domain.ValidationError{Field: "dueDate", Reason: "must match YYYY-MM-DD"}
	}

	sharedWith, err := NormalizeEmails(input.SharedWith)
	if err != nil {
		return nil, domain.Task{}, err
	}

	now := s.now().UTC()
	task := domain.Task{
		ID:          s.newID(),
		Title:       title,
		Description: input.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     input.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
		UserID:      ownerID,
		SharedWith:  sharedWith,
		Tags:        NormalizeTags(input.Tags),
	}

	out := make([]domain.Task, 0, len(collection)+1)
	out = append(out, task)
	out = append(out, collection...)
	return out, task, nil
}

// Update merges the command into the addressed task and refreshes updatedAt.
// It fails with *domain.NotFoundError before applying anything when the id
// is unknown, and with a validation error before touching the collection
// when any field is rejected.
func (s *LifecycleService) Update(collection []domain.Task, taskID string, cmd UpdateCommand) ([]domain.Task, error) {
	idx := -1
	for i, t := range collection {
		if t.ID == taskID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, &domain.NotFoundError{TaskID: taskID}
	}

	task := collection[idx].Clone()

	if cmd.Title != nil {
		title := strings.TrimSpace(*cmd.Title)
		if title == "" {
			return nil, &domain.ValidationError{Field: "title", Reason: "must not be blank"}
		}
		task.Title = title
	}
	if cmd.Description != nil {
		task.Description = *cmd.Description
	}
	if cmd.Status != nil {
		if !cmd.Status.Valid() {
			return nil, &domain.ValidationError{Field: "status", Reason: "unknown status " + string(*cmd.Status)}
		}
		task.Status = *cmd.Status
	}
	if cmd.Priority != nil {
		if !cmd.Priority.Valid() {
			return nil, &domain.ValidationError{Field: "priority", Reason: "unknown priority " + string(*cmd.Priority)}
		}
		task.Priority = *cmd.Priority
	}
	if cmd.DueDate != nil {
		if *cmd.DueDate != "" && !domain.ValidDueDate(*cmd.DueDate) {
			return nil, &domain.ValidationError{Field: "dueDate", Reason: "must match YYYY-MM-DD"}
		}
		task.DueDate = *cmd.DueDate
	}
	if cmd.Tags != nil {
		task.Tags = NormalizeTags(*cmd.Tags)
	}
	if cmd.SharedWith != nil {
		sharedWith, err := NormalizeEmails(*cmd.SharedWith)
		if err != nil {
			return nil, err
		}
		task.SharedWith = sharedWith
	}

	task.UpdatedAt = s.now().UTC()

	out := make([]domain.Task, len(collection))
	copy(out, collection)
	out[idx] = task
	return out, nil
}

// Delete removes the task with the given id. Deleting an absent id is a
// no-op, not an error.
func (s *LifecycleService) Delete(collection []domain.Task, taskID string) []domain.Task {
	out := make([]domain.Task, 0, len(collection))
	for _, t := range collection {
		if t.ID != taskID {
			out = append(out, t)
		}
	}
	return out
}
