package domain

import "fmt"

// StatusFilter selects tasks by stored status or by one of the two virtual
// statuses derived from the due date. Modeled as an enum rather than an
// overloaded status string so the predicate stays exhaustive.
type StatusFilter int

const (
	StatusFilterAll StatusFilter = iota
	StatusFilterTodo
	StatusFilterInProgress
	StatusFilterCompleted
	StatusFilterOverdue
	StatusFilterDueToday
)

func ParseStatusFilter(raw string) (StatusFilter, error) {
	switch raw {
	case "all", "":
		return StatusFilterAll, nil
	case string(StatusTodo):
		return StatusFilterTodo, nil
	case string(StatusInProgress):
		return StatusFilterInProgress, nil
	case string(StatusCompleted):
		return StatusFilterCompleted, nil
	case "overdue":
		return StatusFilterOverdue, nil
	case "today":
		return StatusFilterDueToday, nil
	}
	return StatusFilterAll, fmt.Errorf("unknown status filter %q", raw)
}

func (f StatusFilter) String() string {
	switch f {
	case StatusFilterTodo:
		return string(StatusTodo)
	case StatusFilterInProgress:
		return string(StatusInProgress)
	case StatusFilterCompleted:
		return string(StatusCompleted)
	case StatusFilterOverdue:
		return "overdue"
	case StatusFilterDueToday:
		return "today"
	}
	return "all"
}

// Matches applies the filter to a task. today is the comparison date in
// DueDateLayout form.
func (f StatusFilter) Matches(t Task, today string) bool {
	switch f {
	case StatusFilterAll:
		return true
	case StatusFilterTodo:
		return t.Status == StatusTodo
	case StatusFilterInProgress:
		return t.Status == StatusInProgress
	case StatusFilterCompleted:
		return t.Status == StatusCompleted
	case StatusFilterOverdue:
		return t.Overdue(today)
	case StatusFilterDueToday:
		return t.DueToday(today)
	}
	return false
}

// PriorityFilter is either "all" (or empty) or an exact priority.
type PriorityFilter string

const PriorityFilterAll PriorityFilter = "all"

func (f PriorityFilter) Matches(t Task) bool {
	if f == "" || f == PriorityFilterAll {
		return true
	}
	return t.Priority == Priority(f)
}

type SortKey string

const (
	SortByCreatedAt SortKey = "createdAt"
	SortByTitle     SortKey = "title"
	SortByPriority  SortKey = "priority"
	SortByDueDate   SortKey = "dueDate"
	SortByStatus    SortKey = "status"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// FilterSpec describes a derived view. It is transient and never persisted.
type FilterSpec struct {
	Status    StatusFilter
	Priority  PriorityFilter
	Search    string
	SortBy    SortKey
	SortOrder SortOrder
}

// DefaultFilterSpec is the view the dashboard opens with: everything,
// newest first.
func DefaultFilterSpec() FilterSpec {
	return FilterSpec{
		Status:    StatusFilterAll,
		Priority:  PriorityFilterAll,
		SortBy:    SortByCreatedAt,
		SortOrder: SortDesc,
	}
}
