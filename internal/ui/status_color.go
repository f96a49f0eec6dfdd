package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/todoflow/todoflow/internal/domain"
)

func statusColor(s domain.Status) lipgloss.Color {
	switch s {
	case domain.StatusTodo:
		return lipgloss.Color("245")
	case domain.StatusInProgress:
		return lipgloss.Color("75")
	case domain.StatusCompleted:
		return lipgloss.Color("78")
	default:
		return lipgloss.Color("252")
	}
}

func statusLabel(s domain.Status) string {
	switch s {
	case domain.StatusTodo:
		return "To Do"
	case domain.StatusInProgress:
		return "In Progress"
	case domain.StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

func priorityColor(p domain.Priority) lipgloss.Color {
	switch p {
	case domain.PriorityHigh:
		return lipgloss.Color("203")
	case domain.PriorityMedium:
		return lipgloss.Color("220")
	case domain.PriorityLow:
		return lipgloss.Color("78")
	default:
		return lipgloss.Color("252")
	}
}
