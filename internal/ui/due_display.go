package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/todoflow/todoflow/internal/domain"
)

var (
	dueColorToday    = lipgloss.Color("220")
	dueColorOverdue  = lipgloss.Color("203")
	dueColorDefault  = lipgloss.Color("252")
	dueColorNoDueSet = lipgloss.Color("245")
)

// dueDisplay renders a task's due date relative to today. Completed
// tasks never show as overdue.
func (m Model) dueDisplay(task domain.Task) (string, lipgloss.Color) {
	if task.DueDate == "" {
		return "-", dueColorNoDueSet
	}

	today := domain.Today(time.Now())
	switch {
	case task.DueToday(today):
		return "Today", dueColorToday
	case task.Overdue(today):
		if days := daysOverdue(task.DueDate, today); days > 0 && days <= 7 {
			return fmt.Sprintf("%dd late", days), dueColorOverdue
		}
		return m.formatDueDate(task.DueDate), dueColorOverdue
	default:
		return m.formatDueDate(task.DueDate), dueColorDefault
	}
}

func daysOverdue(dueDate, today string) int {
	due, err := time.Parse(domain.DueDateLayout, dueDate)
	if err != nil {
		return 0
	}
	now, err := time.Parse(domain.DueDateLayout, today)
	if err != nil {
		return 0
	}
	return int(now.Sub(due).Hours() / 24)
}
