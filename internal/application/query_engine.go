package application

import (
	"sort"
	"strings"
	"time"

	"github.com/todoflow/todoflow/internal/domain"
)

// noDueDate sorts tasks without a due date after every dated task in
// ascending order.
const noDueDate = "9999-12-31"

// Stats aggregates the unfiltered collection for dashboard summaries.
type Stats struct {
	Total      int
	Completed  int
	InProgress int
	Overdue    int
}

// QueryEngine derives views from a collection. It never mutates its input,
// and for a fixed collection, spec, and date its output is deterministic.
type QueryEngine struct {
	now func() time.Time
}

func NewQueryEngine() *QueryEngine {
	return &QueryEngine{now: time.Now}
}

// Apply filters, searches, and sorts the collection into a fresh slice.
func (e *QueryEngine) Apply(collection []domain.Task, spec domain.FilterSpec) []domain.Task {
	today := domain.Today(e.now())

	out := make([]domain.Task, 0, len(collection))
	search := strings.ToLower(strings.TrimSpace(spec.Search))
	for _, t := range collection {
		if !spec.Status.Matches(t, today) {
			continue
		}
		if !spec.Priority.Matches(t) {
			continue
		}
		if search != "" && !matchesSearch(t, search) {
			continue
		}
		out = append(out, t)
	}

	// Stable sort: ties keep the filtered sequence's relative order.
	sort.SliceStable(out, func(i, j int) bool {
		c := compareTasks(out[i], out[j], spec.SortBy)
		if spec.SortOrder == domain.SortDesc {
			return c > 0
		}
		return c < 0
	})
	return out
}

// Stats computes the dashboard aggregates over the unfiltered collection,
// using the same overdue predicate as the status filter.
func (e *QueryEngine) Stats(collection []domain.Task) Stats {
	today := domain.Today(e.now())
	stats := Stats{Total: len(collection)}
	for _, t := range collection {
		switch t.Status {
		case domain.StatusCompleted:
			stats.Completed++
		case domain.StatusInProgress:
			stats.InProgress++
		}
		if t.Overdue(today) {
			stats.Overdue++
		}
	}
	return stats
}

// matchesSearch is a case-insensitive substring match against title,
// description, or any tag.
func matchesSearch(t domain.Task, search string) bool {
	if strings.Contains(strings.ToLower(t.Title), search) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Description), search) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}

func compareTasks(a, b domain.Task, key domain.SortKey) int {
	switch key {
	case domain.SortByTitle:
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	case domain.SortByPriority:
		return a.Priority.Rank() - b.Priority.Rank()
	case domain.SortByDueDate:
		return strings.Compare(dueDateOrLast(a), dueDateOrLast(b))
	case domain.SortByStatus:
		return a.Status.Rank() - b.Status.Rank()
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

func dueDateOrLast(t domain.Task) string {
	if t.DueDate == "" {
		return noDueDate
	}
	return t.DueDate
}
