package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Rank orders statuses for sorting: todo < in-progress < completed.
func (s Status) Rank() int {
	switch s {
	case StatusTodo:
		return 1
	case StatusInProgress:
		return 2
	case StatusCompleted:
		return 3
	}
	return 0
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank orders priorities for sorting: high > medium > low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// DueDateLayout is the calendar-date form due dates are stored in. The
// fixed-width format makes lexical comparison date-correct.
const DueDateLayout = "2006-01-02"

var dueDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func ValidDueDate(raw string) bool {
	return dueDatePattern.MatchString(raw)
}

// Task is the unit of trackable work. The JSON field names and enum
// spellings match the persisted layout and must not change.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Priority    Priority  `json:"priority"`
	DueDate     string    `json:"dueDate,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	UserID      string    `json:"userId"`
	SharedWith  []string  `json:"sharedWith"`
	AssignedTo  string    `json:"assignedTo,omitempty"`
	Tags        []string  `json:"tags"`
}

// Validate checks the invariants that must hold for any stored task.
func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return &ValidationError{Field: "id", Reason: "must not be blank"}
	}
	if strings.TrimSpace(t.Title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be blank"}
	}
	if !t.Status.Valid() {
		return &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", string(t.Status))}
	}
	if !t.Priority.Valid() {
		return &ValidationError{Field: "priority", Reason: fmt.Sprintf("unknown priority %q", string(t.Priority))}
	}
	if t.DueDate != "" && !ValidDueDate(t.DueDate) {
		return &ValidationError{Field: "dueDate", Reason: "must match YYYY-MM-DD"}
	}
	if t.UpdatedAt.Before(t.CreatedAt) {
		return &ValidationError{Field: "updatedAt", Reason: "must not precede createdAt"}
	}
	if err := validateOrderedSet("tags", t.Tags); err != nil {
		return err
	}
	return validateOrderedSet("sharedWith", t.SharedWith)
}

func validateOrderedSet(field string, values []string) error {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" || v != strings.ToLower(strings.TrimSpace(v)) {
			return &ValidationError{Field: field, Reason: fmt.Sprintf("entry %q is not normalized", v)}
		}
		if _, ok := seen[v]; ok {
			return &ValidationError{Field: field, Reason: fmt.Sprintf("duplicate entry %q", v)}
		}
		seen[v] = struct{}{}
	}
	return nil
}

// Clone returns a copy that shares no slices with the receiver.
func (t Task) Clone() Task {
	out := t
	out.Tags = append([]string{}, t.Tags...)
	out.SharedWith = append([]string{}, t.SharedWith...)
	return out
}

// Today renders the current calendar date in the form due dates compare by.
// Dates are taken in UTC, matching the persisted layout.
func Today(now time.Time) string {
	return now.UTC().Format(DueDateLayout)
}

// Overdue reports whether the task's due date has passed without the task
// being completed.
func (t Task) Overdue(today string) bool {
	return t.DueDate != "" && t.DueDate < today && t.Status != StatusCompleted
}

// DueToday reports whether the task is due on the given date, regardless of
// its status.
func (t Task) DueToday(today string) bool {
	return t.DueDate != "" && t.DueDate == today
}

// SharePath is the external reference path for a task. Resolving it is the
// presentation layer's concern.
func (t Task) SharePath() string {
	return "/task/" + t.ID
}
